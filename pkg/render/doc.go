// Package render serializes dom trees to HTML.
//
// The Renderer walks a finished tree and writes markup: element
// properties, tree attributes, class list, inline style, and dataset
// merge into one deterministic attribute set, text escapes, void
// elements self-terminate. Page wraps a body tree with the usual
// document chrome (doctype, head, meta, stylesheets).
//
// Rendering never mutates the tree; event listeners are a runtime-only
// concern and do not serialize.
package render
