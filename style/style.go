// Package style builds the CSS that overrides page fonts with the selected
// family while leaving icon fonts alone.
package style

import (
	"fmt"
	"strings"
)

// FallbackStack follows the selected family in every font-family list.
const FallbackStack = `system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif`

// ElementID is the id of the injected <style> element. A page that already
// has it must not get a second copy.
const ElementID = "fontpref-style"

// elements receive the font with the fallback stack.
var elements = []string{
	"html", "body", "div", "span", "applet", "object", "iframe",
	"h1", "h2", "h3", "h4", "h5", "h6", "p", "blockquote", "pre",
	"a", "abbr", "acronym", "address", "big", "cite", "code", "del",
	"dfn", "em", "img", "ins", "kbd", "q", "s", "samp", "small", "strike",
	"strong", "sub", "sup", "tt", "var", "b", "u", "center",
	"dl", "dt", "dd", "ol", "ul", "li", "fieldset", "form", "label",
	"legend", "table", "caption", "tbody", "tfoot", "thead", "tr", "th", "td",
	"article", "aside", "canvas", "details", "embed", "figure", "figcaption",
	"footer", "header", "hgroup", "menu", "nav", "output", "ruby", "section",
	"summary", "time", "mark", "audio", "video", "input", "textarea", "button",
}

// noteView selectors target editors that set their own fonts inline.
var noteView = []string{
	"#note-view", "#note-view *", "div#note-view", "div#note-view *",
	`[class*="note-view"]`, `[class*="note-view"] *`,
}

// IconSelectors match icon and emoji fonts, which keep their own family.
var IconSelectors = []string{
	"i", ".fa", ".fas", ".far", ".fab",
	`[class*="icon"]`, `[class*="Icon"]`,
	`[class*="material-icons"]`, `[class*="glyphicon"]`, `[class*="fontawesome"]`,
	`[class*="iconfont"]`, `[class*="icon-font"]`, `[class*="emoji"]`,
}

// QuoteFamily wraps a family name in double quotes when it contains a space.
func QuoteFamily(family string) string {
	if strings.Contains(family, " ") {
		return `"` + family + `"`
	}
	return family
}

// Declaration returns the font-family declaration for family with the
// fallback stack.
func Declaration(family string) string {
	return fmt.Sprintf("font-family: %s, %s !important;", QuoteFamily(family), FallbackStack)
}

// Stylesheet returns the page stylesheet for family.
func Stylesheet(family string) string {
	decl := Declaration(family)

	var b strings.Builder

	writeRule(&b, strings.Join(elements, ", "), decl)
	writeRule(&b, strings.Join(noteView, ", "), decl)

	// Everything except icons falls back to the inherited family.
	var not strings.Builder
	not.WriteString("*")
	for _, sel := range IconSelectors {
		fmt.Fprintf(&not, ":not(%s)", sel)
	}
	writeRule(&b, not.String(), fmt.Sprintf("font-family: %s, inherit !important;", QuoteFamily(family)))

	return b.String()
}

// ShadowRootRule returns the rule appended to each open shadow root.
func ShadowRootRule(family string) string {
	return "* { " + Declaration(family) + " }"
}

// InlineValue is the font-family value set on note-view elements directly.
func InlineValue(family string) string {
	return QuoteFamily(family) + ", " + FallbackStack
}

func writeRule(b *strings.Builder, selector, decl string) {
	b.WriteString(selector)
	b.WriteString(" {\n  ")
	b.WriteString(decl)
	b.WriteString("\n}\n")
}
