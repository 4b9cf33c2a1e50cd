package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hewgo/hew/pkg/el"
)

func TestRenderPage(t *testing.T) {
	r := NewRenderer(Config{})

	t.Run("complete document", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.RenderPage(&buf, PageData{
			Title: "Home",
			Body:  el.Main(el.H1("Welcome")),
			Meta: []MetaTag{
				{Name: "description", Content: "a page"},
			},
			StyleSheets: []string{"/app.css"},
			Scripts: []ScriptTag{
				{Src: "/app.js", Defer: true},
			},
		})
		if err != nil {
			t.Fatalf("RenderPage: %v", err)
		}

		html := buf.String()
		for _, want := range []string{
			"<!DOCTYPE html>",
			`<html lang="en">`,
			"<title>Home</title>",
			`<meta content="a page" name="description">`,
			`<link href="/app.css" rel="stylesheet">`,
			"<h1>Welcome</h1>",
			`<script defer src="/app.js"></script>`,
		} {
			if !strings.Contains(html, want) {
				t.Errorf("output missing %q\n%s", want, html)
			}
		}
	})

	t.Run("doctype comes first", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.RenderPage(&buf, PageData{}); err != nil {
			t.Fatalf("RenderPage: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "<!DOCTYPE html>") {
			t.Errorf("output does not start with doctype: %q", buf.String())
		}
	})

	t.Run("custom lang", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.RenderPage(&buf, PageData{Lang: "de"}); err != nil {
			t.Fatalf("RenderPage: %v", err)
		}
		if !strings.Contains(buf.String(), `<html lang="de">`) {
			t.Errorf("lang not applied: %q", buf.String())
		}
	})

	t.Run("nil body renders empty body element", func(t *testing.T) {
		var buf bytes.Buffer
		if err := r.RenderPage(&buf, PageData{}); err != nil {
			t.Fatalf("RenderPage: %v", err)
		}
		if !strings.Contains(buf.String(), "<body></body>") {
			t.Errorf("body not empty: %q", buf.String())
		}
	})

	t.Run("inline script and style", func(t *testing.T) {
		var buf bytes.Buffer
		err := r.RenderPage(&buf, PageData{
			Styles:  []string{"body { margin: 0 }"},
			Scripts: []ScriptTag{{Inline: "console.log(1)"}},
		})
		if err != nil {
			t.Fatalf("RenderPage: %v", err)
		}
		html := buf.String()
		if !strings.Contains(html, "<style>body { margin: 0 }</style>") {
			t.Errorf("inline style missing: %q", html)
		}
		if !strings.Contains(html, "<script>console.log(1)</script>") {
			t.Errorf("inline script missing: %q", html)
		}
	})
}
