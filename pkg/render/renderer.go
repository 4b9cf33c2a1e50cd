package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/hewgo/hew/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config Config
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tree to an HTML string.
func (r *Renderer) RenderToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node dom.Node) error {
	return r.renderNode(w, node, 0)
}

// String renders node with a default renderer, swallowing the writer
// error a bytes.Buffer cannot produce.
func String(node dom.Node) string {
	s, _ := NewRenderer(Config{}).RenderToString(node)
	return s
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node dom.Node, depth int) error {
	if dom.IsNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *dom.Element:
		return r.renderElement(w, n, depth)
	case *dom.Text:
		_, err := io.WriteString(w, escapeHTML(n.Data()))
		return err
	case *dom.Comment:
		_, err := fmt.Fprintf(w, "<!--%s-->", escapeComment(n.Data()))
		return err
	default:
		return fmt.Errorf("render: unknown node kind %s", node.Kind())
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Element, depth int) error {
	tag := node.TagName()

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if dom.IsVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	hasBlockChildren := node.ChildCount() > 0 && r.config.Pretty
	if hasBlockChildren {
		w.Write([]byte{'\n'})
	}

	for _, child := range node.Children() {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
		if r.config.Pretty && child.Kind() != dom.KindElement {
			w.Write([]byte{'\n'})
		}
	}

	if hasBlockChildren {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderAttributes writes the element's effective attributes in sorted
// order for deterministic output.
func (r *Renderer) renderAttributes(w io.Writer, node *dom.Element) error {
	attrs := EffectiveAttrs(node)
	if len(attrs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]
		if booleanAttrs[key] && value == "" {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value)); err != nil {
			return err
		}
	}

	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
