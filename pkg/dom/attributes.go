package dom

import (
	"fmt"
	"strings"
)

// ClassList is an ordered, duplicate-free list of class names.
// The zero value is an empty list ready for use.
type ClassList struct {
	entries []string
}

// Add appends each class that is not already present. Empty strings are
// ignored.
func (c *ClassList) Add(classes ...string) {
	for _, class := range classes {
		if class == "" || c.Contains(class) {
			continue
		}
		c.entries = append(c.entries, class)
	}
}

// Remove deletes each named class if present.
func (c *ClassList) Remove(classes ...string) {
	for _, class := range classes {
		for i, have := range c.entries {
			if have == class {
				c.entries = append(c.entries[:i], c.entries[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether the class is present.
func (c *ClassList) Contains(class string) bool {
	for _, have := range c.entries {
		if have == class {
			return true
		}
	}
	return false
}

// Toggle adds the class if absent and removes it if present. It reports
// whether the class is present afterwards.
func (c *ClassList) Toggle(class string) bool {
	if c.Contains(class) {
		c.Remove(class)
		return false
	}
	c.Add(class)
	return true
}

// Len returns the number of classes.
func (c *ClassList) Len() int { return len(c.entries) }

// Values returns the classes in insertion order. The returned slice is a
// copy.
func (c *ClassList) Values() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}

// String joins the classes with spaces, the class attribute form.
func (c *ClassList) String() string {
	return strings.Join(c.entries, " ")
}

// Style is an insertion-ordered map of style rule name to value.
// The zero value is an empty style ready for use.
type Style struct {
	names  []string
	values map[string]string
}

// SetProperty sets a style rule, preserving the position of a rule that
// is already set.
func (s *Style) SetProperty(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

// GetProperty returns a rule's value, or "" if unset.
func (s *Style) GetProperty(name string) string {
	return s.values[name]
}

// RemoveProperty deletes a rule and returns its previous value.
func (s *Style) RemoveProperty(name string) string {
	prev, ok := s.values[name]
	if !ok {
		return ""
	}
	delete(s.values, name)
	for i, have := range s.names {
		if have == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return prev
}

// Len returns the number of rules set.
func (s *Style) Len() int { return len(s.names) }

// Names returns the rule names in insertion order. The returned slice is
// a copy.
func (s *Style) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// String renders the style in "name: value; ..." attribute form.
func (s *Style) String() string {
	var b strings.Builder
	for i, name := range s.names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.values[name])
	}
	return b.String()
}

// Dataset is the element's custom-data map, the data-* attribute space.
// Values are coerced to strings on assignment, as the DOM does.
// The zero value is an empty dataset ready for use.
type Dataset struct {
	values map[string]string
}

// Set assigns an entry, coercing the value to its string form.
func (d *Dataset) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	d.values[key] = fmt.Sprint(value)
}

// Get returns an entry and whether it is set.
func (d *Dataset) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes an entry.
func (d *Dataset) Delete(key string) {
	delete(d.values, key)
}

// Len returns the number of entries.
func (d *Dataset) Len() int { return len(d.values) }

// Keys returns the entry keys, unordered.
func (d *Dataset) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	return keys
}
