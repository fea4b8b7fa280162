// Package mocks provides a tracer for tests that records nothing.
package mocks

import (
	"barber/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}
