// Package middleware provides net/http middleware for hew's preview
// server: Prometheus request metrics and OpenTelemetry tracing.
// Both are plain func(http.Handler) http.Handler wrappers and compose
// with any chi or stdlib mux.
package middleware
