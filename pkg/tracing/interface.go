package tracing

import (
	"context"

	"go.opencensus.io/trace"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_tracer.go -package=mocks github.com/recordhub/recordhub/pkg/tracing Tracer

// Tracer is what the services use to open spans
type Tracer interface {
	StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span)
	// EndSpan ends span and marks it failed when err is non-nil
	EndSpan(span *trace.Span, err error)
	AddAttribute(ctx context.Context, key string, value interface{})
	MarkSpanError(ctx context.Context, err error)
}

type DefaultTracer struct{}

func NewTracer() Tracer {
	return &DefaultTracer{}
}

func (t *DefaultTracer) StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return StartServiceSpan(ctx, serviceName, methodName)
}

func (t *DefaultTracer) EndSpan(span *trace.Span, err error) {
	EndSpan(span, err)
}

func (t *DefaultTracer) AddAttribute(ctx context.Context, key string, value interface{}) {
	AddAttribute(ctx, key, value)
}

func (t *DefaultTracer) MarkSpanError(ctx context.Context, err error) {
	MarkSpanError(ctx, err)
}

var globalTracer Tracer = NewTracer()

// GetTracer returns the process wide tracer
func GetTracer() Tracer {
	return globalTracer
}

// SetTracer replaces the process wide tracer, mainly for tests
func SetTracer(tracer Tracer) {
	globalTracer = tracer
}
