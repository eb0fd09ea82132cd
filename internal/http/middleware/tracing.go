package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// TracingMiddleware starts an OpenCensus span per request and records the response status
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.FromContext(r.Context())
		if span == nil {
			next.ServeHTTP(w, r)
			return
		}

		span.AddAttributes(
			trace.StringAttribute("http.host", r.Host),
			trace.StringAttribute("http.method", r.Method),
			trace.StringAttribute("http.path", r.URL.Path),
		)
		if requestID := chimiddleware.GetReqID(r.Context()); requestID != "" {
			span.AddAttributes(trace.StringAttribute("http.request_id", requestID))
		}

		next.ServeHTTP(&statusRecorder{ResponseWriter: w, span: span}, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}

// statusRecorder marks the request span failed on 5xx responses
type statusRecorder struct {
	http.ResponseWriter
	span *trace.Span
}

func (s *statusRecorder) WriteHeader(code int) {
	s.span.AddAttributes(trace.Int64Attribute("http.status_code", int64(code)))
	if code >= http.StatusInternalServerError {
		s.span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: http.StatusText(code)})
	}
	s.ResponseWriter.WriteHeader(code)
}
