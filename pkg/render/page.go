package render

import (
	"io"

	"github.com/hewgo/hew/pkg/dom"
	"github.com/hewgo/hew/pkg/el"
)

// PageData contains everything needed to render a complete HTML page.
type PageData struct {
	// Body is the root element for the page content.
	Body *dom.Element

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page head.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// StyleSheets contains paths rendered as stylesheet links.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Scripts contains script tags appended to the body.
	Scripts []ScriptTag

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string
	Content   string
	Property  string
	HTTPEquiv string
	Charset   string
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel  string
	Href string
	Type string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Defer  bool
	Async  bool
	Inline string
}

// RenderPage writes a complete HTML document for data. The document
// chrome is itself built with the element DSL and serialized by r.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	lang := data.Lang
	if lang == "" {
		lang = "en"
	}

	head := el.Head(
		el.Meta(el.Charset("utf-8")),
		el.Meta(el.Props{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
		el.If(data.Title != "", el.Title(data.Title)),
		el.Range(data.Meta, func(m MetaTag, _ int) any {
			return el.Meta(metaProps(m))
		}),
		el.Range(data.Links, func(l LinkTag, _ int) any {
			props := el.Props{"rel": l.Rel, "href": l.Href}
			if l.Type != "" {
				props["type"] = l.Type
			}
			return el.Link(props)
		}),
		el.Range(data.StyleSheets, func(href string, _ int) any {
			return el.Link(el.Rel("stylesheet"), el.Href(href))
		}),
		el.Range(data.Styles, func(css string, _ int) any {
			return el.Style(css)
		}),
	)

	body := el.Body(
		el.If(data.Body != nil, data.Body),
		el.Range(data.Scripts, func(s ScriptTag, _ int) any {
			return el.Script(scriptProps(s), el.If(s.Inline != "", s.Inline))
		}),
	)

	page := el.Html(el.Lang(lang), head, body)

	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.RenderToWriter(w, page)
}

func metaProps(m MetaTag) el.Props {
	props := el.Props{}
	if m.Charset != "" {
		props["charset"] = m.Charset
	}
	if m.Name != "" {
		props["name"] = m.Name
	}
	if m.Property != "" {
		props["property"] = m.Property
	}
	if m.HTTPEquiv != "" {
		props["http-equiv"] = m.HTTPEquiv
	}
	if m.Content != "" {
		props["content"] = m.Content
	}
	return props
}

func scriptProps(s ScriptTag) el.Props {
	props := el.Props{}
	if s.Src != "" {
		props["src"] = s.Src
	}
	if s.Defer {
		props["defer"] = true
	}
	if s.Async {
		props["async"] = true
	}
	return props
}
