package chi

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain/geo"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
	"github.com/kailas-cloud/neighborly/internal/logger"
)

// Query parameter names.
const (
	paramServiceType = "serviceType"
	paramLocation    = "location"
	paramStartDate   = "startDate"
	paramEndDate     = "endDate"
	paramKeyword     = "keyword"
	paramPlatform    = "platform"
	paramMinRating   = "minRating"
	paramMinPrice    = "minPrice"
	paramMaxPrice    = "maxPrice"
	paramSpecialties = "specialties"
	paramSort        = "sort"
	paramLat         = "lat"
	paramLng         = "lng"
)

// queryReader binds form-style query parameters. Malformed values never fail
// the request: they are logged at debug level and treated as absent.
type queryReader struct {
	values url.Values
	log    *zap.Logger
}

func newQueryReader(r *http.Request) queryReader {
	return queryReader{values: r.URL.Query(), log: logger.FromContext(r.Context())}
}

func (q queryReader) string(name string) string {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, q.values, &v); err != nil {
		// repeated single-value parameter: the first occurrence wins
		q.log.Debug("ambiguous query parameter", zap.String("param", name), zap.Error(err))
		return q.values.Get(name)
	}
	if v == nil {
		return ""
	}
	return *v
}

func (q queryReader) float(name string) *float64 {
	raw := strings.TrimSpace(q.string(name))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		q.log.Debug("ignoring malformed numeric filter", zap.String("param", name), zap.String("value", raw))
		return nil
	}
	return &f
}

// list accepts both repeated parameters and comma separated values.
func (q queryReader) list(name string) []string {
	var v *[]string
	if err := runtime.BindQueryParameter("form", true, false, name, q.values, &v); err != nil {
		q.log.Debug("ignoring malformed list parameter", zap.String("param", name), zap.Error(err))
		return nil
	}
	if v == nil {
		return nil
	}
	var out []string
	for _, item := range *v {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// point returns the reference point when both lat and lng are valid.
func (q queryReader) point() *geo.Point {
	lat, lng := q.float(paramLat), q.float(paramLng)
	if lat == nil || lng == nil {
		if lat != nil || lng != nil {
			q.log.Debug("ignoring incomplete reference point")
		}
		return nil
	}
	p, err := geo.NewPoint(*lat, *lng)
	if err != nil {
		q.log.Debug("ignoring invalid reference point", zap.Error(err))
		return nil
	}
	return &p
}

// searchParams reads the search and catalog filter parameters.
func searchParams(r *http.Request) request.Params {
	q := newQueryReader(r)
	return request.Params{
		ServiceType: q.string(paramServiceType),
		Location:    q.string(paramLocation),
		StartDate:   q.string(paramStartDate),
		EndDate:     q.string(paramEndDate),
		Keyword:     q.string(paramKeyword),
		Platform:    q.string(paramPlatform),
		MinRating:   q.float(paramMinRating),
		MinPrice:    q.float(paramMinPrice),
		MaxPrice:    q.float(paramMaxPrice),
		Specialties: q.list(paramSpecialties),
		Sort:        q.string(paramSort),
		Reference:   q.point(),
	}
}
