package el

import "github.com/hewgo/hew/pkg/dom"

// Document structure elements

func Html(args ...any) *dom.Element  { return New("html", args...) }
func Head(args ...any) *dom.Element  { return New("head", args...) }
func Body(args ...any) *dom.Element  { return New("body", args...) }
func Title(args ...any) *dom.Element { return New("title", args...) }
func Meta(args ...any) *dom.Element  { return New("meta", args...) }
func Link(args ...any) *dom.Element  { return New("link", args...) }
func Base(args ...any) *dom.Element  { return New("base", args...) }

// Content sectioning elements

func Header(args ...any) *dom.Element  { return New("header", args...) }
func Footer(args ...any) *dom.Element  { return New("footer", args...) }
func Main(args ...any) *dom.Element    { return New("main", args...) }
func Nav(args ...any) *dom.Element     { return New("nav", args...) }
func Section(args ...any) *dom.Element { return New("section", args...) }
func Article(args ...any) *dom.Element { return New("article", args...) }
func Aside(args ...any) *dom.Element   { return New("aside", args...) }
func Address(args ...any) *dom.Element { return New("address", args...) }
func H1(args ...any) *dom.Element      { return New("h1", args...) }
func H2(args ...any) *dom.Element      { return New("h2", args...) }
func H3(args ...any) *dom.Element      { return New("h3", args...) }
func H4(args ...any) *dom.Element      { return New("h4", args...) }
func H5(args ...any) *dom.Element      { return New("h5", args...) }
func H6(args ...any) *dom.Element      { return New("h6", args...) }
func Hgroup(args ...any) *dom.Element  { return New("hgroup", args...) }

// Text content elements

func Div(args ...any) *dom.Element        { return New("div", args...) }
func P(args ...any) *dom.Element          { return New("p", args...) }
func Span(args ...any) *dom.Element       { return New("span", args...) }
func Pre(args ...any) *dom.Element        { return New("pre", args...) }
func Blockquote(args ...any) *dom.Element { return New("blockquote", args...) }
func Ul(args ...any) *dom.Element         { return New("ul", args...) }
func Ol(args ...any) *dom.Element         { return New("ol", args...) }
func Li(args ...any) *dom.Element         { return New("li", args...) }
func Dl(args ...any) *dom.Element         { return New("dl", args...) }
func Dt(args ...any) *dom.Element         { return New("dt", args...) }
func Dd(args ...any) *dom.Element         { return New("dd", args...) }
func Hr(args ...any) *dom.Element         { return New("hr", args...) }
func Figure(args ...any) *dom.Element     { return New("figure", args...) }
func Figcaption(args ...any) *dom.Element { return New("figcaption", args...) }

// Inline text semantics

func A(args ...any) *dom.Element      { return New("a", args...) }
func Strong(args ...any) *dom.Element { return New("strong", args...) }
func Em(args ...any) *dom.Element     { return New("em", args...) }
func B(args ...any) *dom.Element      { return New("b", args...) }
func I(args ...any) *dom.Element      { return New("i", args...) }
func U(args ...any) *dom.Element      { return New("u", args...) }
func S(args ...any) *dom.Element      { return New("s", args...) }
func Small(args ...any) *dom.Element  { return New("small", args...) }
func Mark(args ...any) *dom.Element   { return New("mark", args...) }
func Sub(args ...any) *dom.Element    { return New("sub", args...) }
func Sup(args ...any) *dom.Element    { return New("sup", args...) }
func Code(args ...any) *dom.Element   { return New("code", args...) }
func Kbd(args ...any) *dom.Element    { return New("kbd", args...) }
func Samp(args ...any) *dom.Element   { return New("samp", args...) }
func Var(args ...any) *dom.Element    { return New("var", args...) }
func Abbr(args ...any) *dom.Element   { return New("abbr", args...) }
func Time_(args ...any) *dom.Element  { return New("time", args...) }
func Cite(args ...any) *dom.Element   { return New("cite", args...) }
func Q(args ...any) *dom.Element      { return New("q", args...) }
func Dfn(args ...any) *dom.Element    { return New("dfn", args...) }
func Ruby(args ...any) *dom.Element   { return New("ruby", args...) }
func Rt(args ...any) *dom.Element     { return New("rt", args...) }
func Rp(args ...any) *dom.Element     { return New("rp", args...) }
func Bdi(args ...any) *dom.Element    { return New("bdi", args...) }
func Bdo(args ...any) *dom.Element    { return New("bdo", args...) }

// DataElement creates a <data> HTML element. For data-* attributes, use
// the dataset property key instead.
func DataElement(args ...any) *dom.Element { return New("data", args...) }
func Br(args ...any) *dom.Element          { return New("br", args...) }
func Wbr(args ...any) *dom.Element         { return New("wbr", args...) }

// Form elements

func Form(args ...any) *dom.Element     { return New("form", args...) }
func Input(args ...any) *dom.Element    { return New("input", args...) }
func Textarea(args ...any) *dom.Element { return New("textarea", args...) }
func Select(args ...any) *dom.Element   { return New("select", args...) }
func Option(args ...any) *dom.Element   { return New("option", args...) }
func Optgroup(args ...any) *dom.Element { return New("optgroup", args...) }
func Button(args ...any) *dom.Element   { return New("button", args...) }
func Label(args ...any) *dom.Element    { return New("label", args...) }
func Fieldset(args ...any) *dom.Element { return New("fieldset", args...) }
func Legend(args ...any) *dom.Element   { return New("legend", args...) }
func Datalist(args ...any) *dom.Element { return New("datalist", args...) }
func Output(args ...any) *dom.Element   { return New("output", args...) }
func Progress(args ...any) *dom.Element { return New("progress", args...) }
func Meter(args ...any) *dom.Element    { return New("meter", args...) }

// Table elements

func Table(args ...any) *dom.Element    { return New("table", args...) }
func Thead(args ...any) *dom.Element    { return New("thead", args...) }
func Tbody(args ...any) *dom.Element    { return New("tbody", args...) }
func Tfoot(args ...any) *dom.Element    { return New("tfoot", args...) }
func Tr(args ...any) *dom.Element       { return New("tr", args...) }
func Th(args ...any) *dom.Element       { return New("th", args...) }
func Td(args ...any) *dom.Element       { return New("td", args...) }
func Caption(args ...any) *dom.Element  { return New("caption", args...) }
func Colgroup(args ...any) *dom.Element { return New("colgroup", args...) }
func Col(args ...any) *dom.Element      { return New("col", args...) }

// Media elements

func Img(args ...any) *dom.Element     { return New("img", args...) }
func Picture(args ...any) *dom.Element { return New("picture", args...) }
func Source(args ...any) *dom.Element  { return New("source", args...) }
func Video(args ...any) *dom.Element   { return New("video", args...) }
func Audio(args ...any) *dom.Element   { return New("audio", args...) }
func Track(args ...any) *dom.Element   { return New("track", args...) }
func Iframe(args ...any) *dom.Element  { return New("iframe", args...) }
func Embed(args ...any) *dom.Element   { return New("embed", args...) }
func Object(args ...any) *dom.Element  { return New("object", args...) }
func Param(args ...any) *dom.Element   { return New("param", args...) }
func Canvas(args ...any) *dom.Element  { return New("canvas", args...) }
func Svg(args ...any) *dom.Element     { return New("svg", args...) }
func Math(args ...any) *dom.Element    { return New("math", args...) }
func Map_(args ...any) *dom.Element    { return New("map", args...) }
func Area(args ...any) *dom.Element    { return New("area", args...) }

// Interactive elements

func Details(args ...any) *dom.Element { return New("details", args...) }
func Summary(args ...any) *dom.Element { return New("summary", args...) }
func Dialog(args ...any) *dom.Element  { return New("dialog", args...) }
func Menu(args ...any) *dom.Element    { return New("menu", args...) }

// Scripting elements

func Script(args ...any) *dom.Element   { return New("script", args...) }
func Noscript(args ...any) *dom.Element { return New("noscript", args...) }
func Template(args ...any) *dom.Element { return New("template", args...) }
func Slot(args ...any) *dom.Element     { return New("slot", args...) }
func Style(args ...any) *dom.Element    { return New("style", args...) }
