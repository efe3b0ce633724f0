package mocks

import "staysync/infras/otel"

// noopScope discards everything, tests only need the call shape of a scope.
type noopScope struct{}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopScope) End() {}

func (noopScope) TraceError(error) {}

func (noopScope) TraceIfError(error) {}

func (noopScope) AddEvent(string, map[string]any) {}

func (noopScope) SetAttribute(string, any) {}

func (noopScope) SetAttributes(map[string]any) {}
