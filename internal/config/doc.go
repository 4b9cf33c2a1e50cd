// Package config loads hew.json, the project configuration for the hew
// CLI: where the rendered site lives, how the preview server binds, and
// where publishing uploads to. Missing files fall back to defaults so
// the CLI works in an unconfigured directory.
package config
