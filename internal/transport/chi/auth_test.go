package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuthMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		path   string
		header string
		want   int
	}{
		{"auth disabled", nil, "/api/v1/search", "", http.StatusOK},
		{"only empty keys", []string{"", ""}, "/api/v1/search", "", http.StatusOK},
		{"missing header", []string{"secret"}, "/api/v1/search", "", http.StatusUnauthorized},
		{"basic scheme", []string{"secret"}, "/api/v1/search", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"wrong key", []string{"secret"}, "/api/v1/search", "Bearer wrong-key", http.StatusUnauthorized},
		{"prefix of key", []string{"secret"}, "/api/v1/search", "Bearer secre", http.StatusUnauthorized},
		{"valid key", []string{"secret"}, "/api/v1/search", "Bearer secret", http.StatusOK},
		{"lower-case scheme", []string{"secret"}, "/api/v1/search", "bearer secret", http.StatusOK},
		{"scheme only", []string{"secret"}, "/api/v1/search", "Bearer", http.StatusUnauthorized},
		{"padded config key", []string{" secret "}, "/api/v1/search", "Bearer secret", http.StatusOK},
		{"second key", []string{"key1", "key2"}, "/api/v1/providers", "Bearer key2", http.StatusOK},
		{"health exempt", []string{"secret"}, "/health", "", http.StatusOK},
		{"metrics exempt", []string{"secret"}, "/metrics", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BearerAuthMiddleware(tt.keys)(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.want)
			}
			if tt.want != http.StatusUnauthorized {
				return
			}
			if rr.Header().Get("WWW-Authenticate") == "" {
				t.Error("expected WWW-Authenticate challenge")
			}
			var errResp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if errResp.Code != CodeUnauthorized {
				t.Errorf("error code: got %s, want %s", errResp.Code, CodeUnauthorized)
			}
		})
	}
}
