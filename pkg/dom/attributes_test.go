package dom

import (
	"reflect"
	"testing"
)

func TestClassList(t *testing.T) {
	t.Run("add dedupes and keeps order", func(t *testing.T) {
		var c ClassList
		c.Add("a", "b", "a", "")
		if got := c.Values(); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("Values = %v, want [a b]", got)
		}
	})

	t.Run("remove", func(t *testing.T) {
		var c ClassList
		c.Add("a", "b", "c")
		c.Remove("b", "missing")
		if got := c.String(); got != "a c" {
			t.Errorf("String = %q, want %q", got, "a c")
		}
	})

	t.Run("toggle", func(t *testing.T) {
		var c ClassList
		if !c.Toggle("x") {
			t.Error("Toggle should report present after adding")
		}
		if c.Toggle("x") {
			t.Error("Toggle should report absent after removing")
		}
		if c.Len() != 0 {
			t.Errorf("Len = %d, want 0", c.Len())
		}
	})
}

func TestStyle(t *testing.T) {
	t.Run("insertion order preserved", func(t *testing.T) {
		var s Style
		s.SetProperty("color", "red")
		s.SetProperty("margin", "0")
		s.SetProperty("color", "blue")

		if got := s.String(); got != "color: blue; margin: 0" {
			t.Errorf("String = %q, want %q", got, "color: blue; margin: 0")
		}
	})

	t.Run("remove returns previous value", func(t *testing.T) {
		var s Style
		s.SetProperty("color", "red")
		if prev := s.RemoveProperty("color"); prev != "red" {
			t.Errorf("RemoveProperty = %q, want red", prev)
		}
		if prev := s.RemoveProperty("color"); prev != "" {
			t.Errorf("RemoveProperty on unset = %q, want empty", prev)
		}
		if s.Len() != 0 {
			t.Errorf("Len = %d, want 0", s.Len())
		}
	})
}

func TestDataset(t *testing.T) {
	var d Dataset
	d.Set("count", 42)
	d.Set("name", "hew")

	if v, ok := d.Get("count"); !ok || v != "42" {
		t.Errorf("Get(count) = %q, %v; want 42, true", v, ok)
	}

	d.Delete("count")
	if _, ok := d.Get("count"); ok {
		t.Error("entry still present after Delete")
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}
