package geo

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/neighborly/internal/domain"
)

// EarthRadiusMiles is the mean radius of Earth used for Haversine distance.
const EarthRadiusMiles = 3959.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// NewPoint validates and creates a Point.
func NewPoint(lat, lng float64) (Point, error) {
	if !ValidateCoordinates(lat, lng) {
		return Point{}, fmt.Errorf("%w: (%v, %v)", domain.ErrInvalidCoordinates, lat, lng)
	}
	return Point{Lat: lat, Lng: lng}, nil
}

// Haversine returns the unrounded great-circle distance in miles between two
// points specified by latitude and longitude in degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// DistanceMiles returns the Haversine distance in miles rounded half-up to one decimal.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	return RoundTenth(Haversine(lat1, lng1, lat2, lng2))
}

// Between is DistanceMiles over two points.
func Between(a, b Point) float64 {
	return DistanceMiles(a.Lat, a.Lng, b.Lat, b.Lng)
}

// RoundTenth rounds v half-up to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// ValidateCoordinates checks that latitude is in [-90,90] and longitude in [-180,180].
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
