package dom

import (
	"errors"
	"testing"
)

func TestCreateElement(t *testing.T) {
	doc := &Document{}

	t.Run("valid tags", func(t *testing.T) {
		for _, tag := range []string{"div", "h1", "my-widget", "SPAN"} {
			if _, err := doc.CreateElement(tag); err != nil {
				t.Errorf("CreateElement(%q): %v", tag, err)
			}
		}
	})

	t.Run("invalid tags", func(t *testing.T) {
		for _, tag := range []string{"", "1div", "di v", "div!", "-div"} {
			_, err := doc.CreateElement(tag)
			if err == nil {
				t.Errorf("CreateElement(%q): expected error", tag)
				continue
			}
			if !errors.Is(err, ErrInvalidTagName) {
				t.Errorf("CreateElement(%q): error does not wrap ErrInvalidTagName: %v", tag, err)
			}
		}
	})

	t.Run("strict mode", func(t *testing.T) {
		strict := &Document{Strict: true}

		if _, err := strict.CreateElement("div"); err != nil {
			t.Errorf("known element rejected: %v", err)
		}
		if _, err := strict.CreateElement("my-widget"); err != nil {
			t.Errorf("custom element rejected: %v", err)
		}
		if _, err := strict.CreateElement("unknownthing"); err == nil {
			t.Error("unknown element accepted in strict mode")
		}
	})
}

func TestCreateNodes(t *testing.T) {
	doc := Default()

	text := doc.CreateText("hello")
	if text.Kind() != KindText || text.Data() != "hello" {
		t.Errorf("CreateText: kind=%v data=%q", text.Kind(), text.Data())
	}

	comment := doc.CreateComment("note")
	if comment.Kind() != KindComment || comment.Data() != "note" {
		t.Errorf("CreateComment: kind=%v data=%q", comment.Kind(), comment.Data())
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") || !IsVoidElement("img") {
		t.Error("br and img should be void")
	}
	if IsVoidElement("div") {
		t.Error("div should not be void")
	}
}
