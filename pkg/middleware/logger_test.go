package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		level   string
		message string
	}{
		{"Success", http.StatusOK, "INFO", "request completed"},
		{"Client Error", http.StatusConflict, "WARN", "request rejected"},
		{"Server Error", http.StatusInternalServerError, "ERROR", "server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(NewStructuredLogger(logger))
			r.Get("/loans/{loanId}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte("ok"))
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/loans/loan-1", nil))
			require.Equal(t, tc.status, rr.Code)

			var entry struct {
				Level   string `json:"level"`
				Msg     string `json:"msg"`
				Request struct {
					ID     string `json:"id"`
					Method string `json:"method"`
					Path   string `json:"path"`
				} `json:"request"`
				Response struct {
					Status int `json:"status"`
					Bytes  int `json:"bytes"`
				} `json:"response"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, tc.message, entry.Msg)
			assert.NotEmpty(t, entry.Request.ID)
			assert.Equal(t, "/loans/loan-1", entry.Request.Path)
			assert.Equal(t, tc.status, entry.Response.Status)
			assert.Equal(t, 2, entry.Response.Bytes)
		})
	}
}
