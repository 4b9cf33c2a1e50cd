package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	hewerrors "github.com/hewgo/hew/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SiteDir != DefaultSiteDir {
		t.Errorf("SiteDir = %q, want %q", cfg.SiteDir, DefaultSiteDir)
	}
	if cfg.Serve.Host != DefaultHost || cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve = %+v, want defaults", cfg.Serve)
	}
	if cfg.Serve.LiveReload == nil || !*cfg.Serve.LiveReload {
		t.Error("LiveReload should default to enabled")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.SiteDir != DefaultSiteDir {
			t.Errorf("SiteDir = %q, want %q", cfg.SiteDir, DefaultSiteDir)
		}
		if cfg.Path() != "" {
			t.Errorf("Path = %q, want empty for defaults", cfg.Path())
		}
	})

	t.Run("reads values and fills defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, `{
			"name": "mysite",
			"site": "public",
			"serve": {"port": 8080},
			"publish": {"bucket": "my-bucket", "prefix": "www"}
		}`)

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Name != "mysite" || cfg.SiteDir != "public" {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Serve.Port != 8080 {
			t.Errorf("Port = %d, want 8080", cfg.Serve.Port)
		}
		if cfg.Serve.Host != DefaultHost {
			t.Errorf("Host = %q, want default", cfg.Serve.Host)
		}
		if cfg.Publish.Bucket != "my-bucket" {
			t.Errorf("Bucket = %q, want my-bucket", cfg.Publish.Bucket)
		}
		if cfg.Path() != path {
			t.Errorf("Path = %q, want %q", cfg.Path(), path)
		}
	})

	t.Run("searches parent directories", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, `{"name": "fromparent"}`)
		nested := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(nested)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Name != "fromparent" {
			t.Errorf("Name = %q, want fromparent", cfg.Name)
		}
	})

	t.Run("invalid json reports E002", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, `{"name": }`)

		_, err := Load(dir)
		if err == nil {
			t.Fatal("expected error for invalid JSON")
		}
		var he *hewerrors.HewError
		if !errors.As(err, &he) || he.Code != "E002" {
			t.Errorf("error = %v, want HewError E002", err)
		}
	})
}

func TestLoadFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var he *hewerrors.HewError
	if !errors.As(err, &he) || he.Code != "E001" {
		t.Errorf("error = %v, want HewError E001", err)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.SiteDir = filepath.Join(dir, "missing")
	err := cfg.Validate()
	var he *hewerrors.HewError
	if !errors.As(err, &he) || he.Code != "E003" {
		t.Errorf("error = %v, want HewError E003", err)
	}

	cfg.SiteDir = dir
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate on existing dir: %v", err)
	}
}
