// internal/api/handlers/health_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		postgres     error
		redis        error
		wantStatus   int
		wantOverall  string
		wantPostgres string
		wantRedis    string
	}{
		{
			name:         "all healthy",
			wantStatus:   http.StatusOK,
			wantOverall:  "ok",
			wantPostgres: "ok",
			wantRedis:    "ok",
		},
		{
			name:         "postgres down fails the check",
			postgres:     errors.New("connection refused"),
			wantStatus:   http.StatusServiceUnavailable,
			wantOverall:  "unavailable",
			wantPostgres: "down",
			wantRedis:    "ok",
		},
		{
			name:         "redis down only degrades",
			redis:        errors.New("connection refused"),
			wantStatus:   http.StatusOK,
			wantOverall:  "ok",
			wantPostgres: "ok",
			wantRedis:    "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &HealthHandler{
				Postgres: &stubPinger{err: tt.postgres},
				Redis:    &stubPinger{err: tt.redis},
			}

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantOverall, resp.Status)
			assert.Equal(t, tt.wantPostgres, resp.Checks["postgres"])
			assert.Equal(t, tt.wantRedis, resp.Checks["redis"])
		})
	}
}
