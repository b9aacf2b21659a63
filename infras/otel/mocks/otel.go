// Package mocks provides a tracer that records nothing, for tests that do not assert on spans.
package mocks

import (
	"context"
	"estate/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func NewOtel() otel.Otel {
	return noopOtel{}
}

type noopScope struct{}

func (noopScope) End()                         {}
func (noopScope) TraceError(error)             {}
func (noopScope) TraceIfError(error)           {}
func (noopScope) AddEvent(string)              {}
func (noopScope) SetAttribute(string, any)     {}
func (noopScope) SetAttributes(map[string]any) {}
