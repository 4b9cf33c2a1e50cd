package dom

import (
	"errors"
	"fmt"
)

// ErrInvalidTagName is returned by Document.CreateElement when the tag
// name is not a valid element identifier.
var ErrInvalidTagName = errors.New("invalid tag name")

// Document creates nodes. It owns tag-name validation; callers that need
// different validation rules construct their own Document.
type Document struct {
	// Strict additionally rejects tag names that are not known HTML
	// elements or valid custom-element names (containing a hyphen).
	Strict bool
}

// defaultDocument is used by the package-level constructors.
var defaultDocument = &Document{}

// Default returns the document used by the package-level constructors.
func Default() *Document { return defaultDocument }

// CreateElement creates a detached element with the given tag name.
// The tag is used as given; hosts are case-preserving here, and any
// case-folding convention belongs to the serializer. An invalid tag name
// yields an error wrapping ErrInvalidTagName.
func (d *Document) CreateElement(tag string) (*Element, error) {
	if err := d.validateTag(tag); err != nil {
		return nil, err
	}
	return newElement(tag), nil
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *Text { return NewText(data) }

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Comment { return NewComment(data) }

func (d *Document) validateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTagName)
	}
	if !isLetter(rune(tag[0])) {
		return fmt.Errorf("%w: %q", ErrInvalidTagName, tag)
	}
	for _, r := range tag[1:] {
		if !isLetter(r) && !isDigit(r) && r != '-' {
			return fmt.Errorf("%w: %q", ErrInvalidTagName, tag)
		}
	}
	if d.Strict && !htmlTags[tag] && !isCustomTag(tag) {
		return fmt.Errorf("%w: %q is not a known element", ErrInvalidTagName, tag)
	}
	return nil
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isCustomTag reports whether the tag follows the custom-element naming
// convention of containing a hyphen.
func isCustomTag(tag string) bool {
	for _, r := range tag {
		if r == '-' {
			return true
		}
	}
	return false
}
