// Package chi exposes the search API over HTTP using the chi router.
package chi

import (
	"net/http"
	"strings"

	gochi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/neighborly/internal/domain"
	"github.com/kailas-cloud/neighborly/internal/domain/category"
	"github.com/kailas-cloud/neighborly/internal/domain/search/request"
	"github.com/kailas-cloud/neighborly/internal/logger"
	catalogUC "github.com/kailas-cloud/neighborly/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/neighborly/internal/usecase/health"
	searchUC "github.com/kailas-cloud/neighborly/internal/usecase/search"
)

// Server serves the HTTP API.
type Server struct {
	search        *searchUC.Service
	catalog       *catalogUC.Service
	health        *healthUC.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchUC.Service,
	catalog *catalogUC.Service,
	health *healthUC.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:        search,
		catalog:       catalog,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	req := request.New(searchParams(r))
	ctx := logger.With(r.Context(), zap.String("keyword", req.Keyword()), zap.String("sort", string(req.Sort())))
	ctx, usage := domain.NewContextWithUsage(ctx)
	set, err := s.search.Search(ctx, req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	setEmbeddingHeaders(w, usage)
	writeJSON(w, http.StatusOK, searchResponseFromSet(set))
}

// ListProviders handles GET /api/v1/providers.
// It applies the search filters literally: no keyword classification, no distance.
func (s *Server) ListProviders(w http.ResponseWriter, r *http.Request) {
	req := request.New(searchParams(r))
	providers, err := s.catalog.List(r.Context(), req.Spec(), req.Sort())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProviderListResponse{
		Providers: providersToDTO(providers),
		Total:     len(providers),
	})
}

// GetProvider handles GET /api/v1/providers/{id}.
func (s *Server) GetProvider(w http.ResponseWriter, r *http.Request) {
	id := gochi.URLParam(r, "id")
	p, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, providerToDTO(p))
}

// ListPlatforms handles GET /api/v1/platforms.
func (s *Server) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := s.catalog.Platforms(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PlatformListResponse{Platforms: summariesToDTO(platforms)})
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesToDTO(s.catalog.Categories()))
}

// Classify handles GET /api/v1/classify.
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(newQueryReader(r).string(paramKeyword))
	if keyword == "" {
		writeJSON(w, http.StatusOK, ClassifyResponse{Category: category.All.String()})
		return
	}

	ctx, usage := domain.NewContextWithUsage(r.Context())
	c, ok := s.search.Classify(ctx, keyword)

	setEmbeddingHeaders(w, usage)
	writeJSON(w, http.StatusOK, ClassifyResponse{
		Keyword:  keyword,
		Category: c.String(),
		Matched:  ok,
	})
}

// HealthCheck handles GET /health. A degraded classifier still answers 200.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthUC.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
