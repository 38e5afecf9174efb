package style

import (
	"strings"
	"testing"
)

func TestQuoteFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"Inter", "Inter"},
		{"Maple Mono NF CN", `"Maple Mono NF CN"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := QuoteFamily(tt.family); got != tt.want {
			t.Errorf("QuoteFamily(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet("Fira Code")

	want := []string{
		`font-family: "Fira Code", system-ui, -apple-system`,
		"html, body, div, span",
		"textarea, button {",
		`#note-view, #note-view *`,
		`*:not(i):not(.fa)`,
		`:not([class*="emoji"]) {`,
		`font-family: "Fira Code", inherit !important;`,
	}
	for _, w := range want {
		if !strings.Contains(css, w) {
			t.Errorf("Stylesheet missing %q:\n%s", w, css)
		}
	}

	if strings.Count(css, "{") != 3 || strings.Count(css, "}") != 3 {
		t.Errorf("expected 3 rules, got:\n%s", css)
	}
}

func TestStylesheet_UnquotedFamily(t *testing.T) {
	css := Stylesheet("Inter")
	if !strings.Contains(css, "font-family: Inter, system-ui") {
		t.Errorf("unexpected stylesheet:\n%s", css)
	}
	if strings.Contains(css, `"Inter"`) {
		t.Error("single-word family should not be quoted")
	}
}

func TestShadowRootRule(t *testing.T) {
	got := ShadowRootRule("Maple Mono")
	want := `* { font-family: "Maple Mono", ` + FallbackStack + ` !important; }`
	if got != want {
		t.Errorf("ShadowRootRule() = %q, want %q", got, want)
	}
}

func TestInlineValue(t *testing.T) {
	if got := InlineValue("Inter"); got != "Inter, "+FallbackStack {
		t.Errorf("InlineValue() = %q", got)
	}
}
