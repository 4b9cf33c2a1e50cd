// Package dev provides the development-time plumbing for the preview
// server: a polling file watcher and a WebSocket hub that pushes reload
// messages to connected browsers.
package dev
