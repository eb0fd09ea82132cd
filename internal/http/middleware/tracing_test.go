package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.opencensus.io/trace"
)

func TestTracingMiddleware(t *testing.T) {
	trace.ApplyConfig(trace.Config{DefaultSampler: trace.AlwaysSample()})
	defer trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(1e-4)})

	var hadSpan bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadSpan = trace.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusInternalServerError)
	})
	handler := chimiddleware.RequestID(TracingMiddleware(inner))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/data/orders", nil))

	assert.True(t, hadSpan)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
