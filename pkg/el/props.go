package el

import (
	"fmt"

	"github.com/hewgo/hew/pkg/dom"
)

// applyProps assigns every entry of a property bag onto the element.
// Keys are processed independently; within one bag the iteration order
// is the map's, which only matters for keys with cumulative semantics
// and never across distinct keys.
func applyProps(node *dom.Element, props Props) {
	for key, value := range props {
		applyProp(node, key, value)
	}
}

// applyProp assigns one property. Most keys become a same-named
// property on the element; the keys below are special-cased to land on
// the right part of the host node.
func applyProp(node *dom.Element, key string, value any) {
	switch key {
	case "class":
		applyClass(node, value)
	case "for":
		node.SetProp("htmlFor", value)
	case "tabindex":
		node.SetProp("tabIndex", value)
	case "style":
		for name, v := range asStringMap(value) {
			node.StyleMap().SetProperty(name, stringify(v))
		}
	case "dataset":
		for name, v := range asStringMap(value) {
			node.DataSet().Set(name, v)
		}
	case "role":
		node.SetAttr("role", stringify(value))
	case "aria":
		for name, v := range asStringMap(value) {
			node.SetAttr("aria-"+name, stringify(v))
		}
	default:
		node.SetProp(key, value)
	}
}

// applyClass implements the asymmetric class contract: a sequence adds
// each entry to the class list cumulatively, nil is a no-op, and any
// other value replaces the whole class attribute with its string form.
func applyClass(node *dom.Element, value any) {
	switch v := value.(type) {
	case nil:
	case []string:
		node.Classes().Add(v...)
	case []any:
		for _, c := range v {
			node.Classes().Add(stringify(c))
		}
	default:
		node.SetClassName(stringify(v))
	}
}

// asStringMap normalizes the mapping shapes accepted by style, dataset,
// and aria. A non-mapping value yields a nil map, so the caller iterates
// zero times and the bad value is dropped without failing.
func asStringMap(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case map[string]string:
		out := make(map[string]any, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	case Props:
		return v
	default:
		return nil
	}
}

// stringify coerces a value to its string representation.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
