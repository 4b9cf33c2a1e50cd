// Package preview serves a rendered site directory during development:
// static files with a live-reload script injected into HTML responses,
// a WebSocket reload endpoint, health and Prometheus metrics endpoints,
// and a polling watcher that broadcasts reloads on file changes.
package preview
