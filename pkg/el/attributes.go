package el

// Property-bag sugar. Each helper returns a one-entry Props so it can
// sit alongside hand-written bags in a constructor call; bags merge
// last-write-wins in argument order.

func prop(key string, value any) Props { return Props{key: value} }

// Identity

// ID sets the id property.
func ID(id string) Props { return prop("id", id) }

// Class adds each class to the element's class list, cumulatively.
func Class(classes ...string) Props { return prop("class", classes) }

// ClassName replaces the whole class attribute with the given string.
func ClassName(s string) Props { return prop("class", s) }

// StyleRules assigns style rules individually onto the element's style
// map.
func StyleRules(rules map[string]string) Props { return prop("style", rules) }

// Data merges entries into the element's custom-data map.
func Data(entries map[string]any) Props { return prop("dataset", entries) }

// Accessibility

// Role sets the role tree attribute.
func Role(role string) Props { return prop("role", role) }

// Aria sets aria-* tree attributes from the given entries.
func Aria(entries map[string]any) Props { return prop("aria", entries) }

// TabIndex sets the tab-order property via the tabindex alias.
func TabIndex(index int) Props { return prop("tabindex", index) }

// For sets the label-target property via the for alias.
func For(id string) Props { return prop("for", id) }

// Common attributes

func TitleAttr(title string) Props    { return prop("title", title) }
func Lang(lang string) Props          { return prop("lang", lang) }
func Hidden() Props                   { return prop("hidden", true) }
func Href(url string) Props           { return prop("href", url) }
func Target(target string) Props      { return prop("target", target) }
func Rel(rel string) Props            { return prop("rel", rel) }
func Src(url string) Props            { return prop("src", url) }
func Alt(text string) Props           { return prop("alt", text) }
func Width(w int) Props               { return prop("width", w) }
func Height(h int) Props              { return prop("height", h) }
func Name(name string) Props          { return prop("name", name) }
func Value(value string) Props        { return prop("value", value) }
func Type(t string) Props             { return prop("type", t) }
func Placeholder(text string) Props   { return prop("placeholder", text) }
func Disabled() Props                 { return prop("disabled", true) }
func Readonly() Props                 { return prop("readonly", true) }
func Required() Props                 { return prop("required", true) }
func Checked() Props                  { return prop("checked", true) }
func Selected() Props                 { return prop("selected", true) }
func Multiple() Props                 { return prop("multiple", true) }
func Autofocus() Props                { return prop("autofocus", true) }
func Action(url string) Props         { return prop("action", url) }
func Method(method string) Props      { return prop("method", method) }
func Charset(charset string) Props    { return prop("charset", charset) }
func Content(content string) Props    { return prop("content", content) }
func Colspan(n int) Props             { return prop("colspan", n) }
func Rowspan(n int) Props             { return prop("rowspan", n) }
func Loading(mode string) Props       { return prop("loading", mode) }
func Autocomplete(value string) Props { return prop("autocomplete", value) }
func Open() Props                     { return prop("open", true) }
func Defer_() Props                   { return prop("defer", true) }
func Async() Props                    { return prop("async", true) }
