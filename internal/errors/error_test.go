package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("registered code", func(t *testing.T) {
		e := New("E001")
		if e.Code != "E001" || e.Category != CategoryConfig {
			t.Errorf("e = %+v", e)
		}
		if e.Message == "" || e.DocURL == "" {
			t.Error("registered template fields not filled")
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		e := New("E999")
		if e.Code != "E999" || e.Message != "Unknown error" {
			t.Errorf("e = %+v", e)
		}
	})
}

func TestErrorString(t *testing.T) {
	e := New("E202")
	if got := e.Error(); got != "E202: No publish bucket configured" {
		t.Errorf("Error() = %q", got)
	}

	plain := Newf(CategoryCLI, "bad flag %q", "--nope")
	if got := plain.Error(); got != `bad flag "--nope"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	e := New("E201").Wrap(cause)

	if !stderrors.Is(e, cause) {
		t.Error("errors.Is does not find the wrapped cause")
	}
	var he *HewError
	if !stderrors.As(error(e), &he) || he.Code != "E201" {
		t.Error("errors.As does not recover the HewError")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E201") != nil {
		t.Error("FromError(nil) should be nil")
	}

	he := New("E003")
	if FromError(he, "E201") != he {
		t.Error("FromError should pass a HewError through unchanged")
	}

	wrapped := FromError(stderrors.New("x"), "E201")
	if wrapped.Code != "E201" || wrapped.Wrapped == nil {
		t.Errorf("wrapped = %+v", wrapped)
	}
}

func TestFormat(t *testing.T) {
	e := New("E002").
		Wrap(stderrors.New("unexpected token")).
		WithSuggestion("check for trailing commas")

	out := Format(e)
	for _, want := range []string{
		"Error E002 (config)",
		"Configuration file is invalid",
		"Caused by: unexpected token",
		"Hint: check for trailing commas",
		"Docs: https://hewgo.dev/docs/errors/E002",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}
}
