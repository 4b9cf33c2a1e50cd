package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hewgo/hew/pkg/dom"
)

// booleanAttrs are attributes that serialize as bare names when true
// and disappear when false.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// propAttrNames maps property names back to their markup attribute
// names, the inverse of the construction-time aliases.
var propAttrNames = map[string]string{
	"htmlFor":  "for",
	"tabIndex": "tabindex",
}

// EffectiveAttrs returns the string attributes that serialize for the
// given element: its property map (minus non-representable values),
// class list, inline style, dataset entries as data-*, and tree
// attributes. Tree attributes win over a same-named property; the class
// list wins over a "class" property when non-empty.
func EffectiveAttrs(e *dom.Element) map[string]string {
	attrs := make(map[string]string)

	for _, name := range e.PropNames() {
		value, _ := e.Prop(name)
		if value == nil {
			continue
		}
		attrName := name
		if mapped, ok := propAttrNames[name]; ok {
			attrName = mapped
		}
		if s, ok := attrValueToString(attrName, value); ok {
			attrs[attrName] = s
		}
	}

	if cl := e.Classes(); cl.Len() > 0 {
		attrs["class"] = cl.String()
	}
	if st := e.StyleMap(); st.Len() > 0 {
		attrs["style"] = st.String()
	}
	for _, key := range e.DataSet().Keys() {
		value, _ := e.DataSet().Get(key)
		attrs["data-"+hyphenate(key)] = value
	}
	for _, name := range e.AttrNames() {
		value, _ := e.Attr(name)
		attrs[name] = value
	}

	return attrs
}

// attrValueToString converts a property value to its attribute string.
// The second result is false for values that do not serialize: false
// booleans on boolean attributes, functions, and other non-data shapes.
func attrValueToString(name string, value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if booleanAttrs[name] {
			if v {
				return "", true
			}
			return "", false
		}
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		if reflect.ValueOf(value).Kind() == reflect.Func {
			return "", false
		}
		return fmt.Sprint(value), true
	}
}

// hyphenate converts a camelCase dataset key to its data-* spelling:
// "userId" becomes "user-id".
func hyphenate(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
