package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/neighborly/internal/logger"
)

func TestJSONRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	h := JSONRecoverer(zap.NewNop())(panicking)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/search", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rr.Code)
	}
	if errResp := decode[ErrorResponse](t, rr); errResp.Code != CodeInternalError {
		t.Errorf("code: got %s", errResp.Code)
	}
}

func TestWideEventMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var ctxLoggerSet bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLoggerSet = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusTeapot)
	})
	h := chiMiddleware.RequestID(WideEventMiddleware(zap.New(core))(inner))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/search?keyword=dog", http.NoBody))

	if !ctxLoggerSet {
		t.Error("expected request logger in context")
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one canonical log line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status field: got %v", fields["status"])
	}
	if fields["query"] != "keyword=dog" {
		t.Errorf("query field: got %v", fields["query"])
	}
	if fields["request_id"] == "" {
		t.Error("request_id field missing")
	}
}
