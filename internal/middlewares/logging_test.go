package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.NewNop().Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			// Each request gets a non-empty X-Request-ID header
			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.True(t, strings.TrimSpace(reqID) != "")
		})
	}
}
