// Package i18n loads interface message catalogs and picks the interface
// language from a browser locale.
//
// Catalogs use the browser extension layout, one JSON file per language:
//
//	_locales/<lang>/messages.json
//	{"save_success": {"message": "✓ Settings saved!"}}
//
// A language without a catalog falls back to English.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"golang.org/x/text/language"

	"github.com/tsawler/fontpref/logging"
)

// DefaultLanguage is used when nothing better is available.
const DefaultLanguage = "en"

// LocalesDir is the catalog root inside a catalog file system.
const LocalesDir = "_locales"

// Supported lists the interface languages.
var Supported = []string{"zh", "zh-HK", "en", "ja", "ko", "vi", "de", "fr", "ru", "th", "es", "it"}

//go:embed all:_locales
var builtin embed.FS

// IsSupported reports whether lang is one of Supported.
func IsSupported(lang string) bool {
	return slices.Contains(Supported, lang)
}

type message struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

// Catalog holds the messages of one language.
type Catalog struct {
	lang     string
	messages map[string]message
}

// Load reads the catalog for lang from fsys. If it cannot be read, the
// English catalog is loaded instead; only a failure to load English is
// returned as an error.
func Load(fsys fs.FS, lang string) (*Catalog, error) {
	c, err := load(fsys, lang)
	if err == nil {
		return c, nil
	}
	if lang == DefaultLanguage {
		return nil, err
	}

	logging.Logger().Debug("falling back to default language", "language", lang, "error", err)
	return load(fsys, DefaultLanguage)
}

// Builtin loads a catalog from the messages compiled into the package.
func Builtin(lang string) (*Catalog, error) {
	return Load(builtin, lang)
}

func load(fsys fs.FS, lang string) (*Catalog, error) {
	name := path.Join(LocalesDir, lang, "messages.json")

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}

	var messages map[string]message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("i18n: decode %s: %w", name, err)
	}

	return &Catalog{lang: lang, messages: messages}, nil
}

// Language returns the language the catalog was loaded for.
func (c *Catalog) Language() string {
	return c.lang
}

// Message returns the message for key, or "" if the catalog has none.
func (c *Catalog) Message(key string) string {
	if c == nil {
		return ""
	}
	return c.messages[key].Message
}

// DetectLanguage maps a browser locale such as "en-US" or "zh-TW" to a
// supported interface language. Chinese in Hong Kong, Taiwan and Macau uses
// the traditional catalog "zh-HK"; other Chinese locales use "zh".
// Unsupported or unparseable locales give DefaultLanguage.
func DetectLanguage(browserLang string) string {
	tag, err := language.Parse(browserLang)
	if err != nil {
		return DefaultLanguage
	}

	base, _ := tag.Base()
	if base.String() == "zh" {
		switch region, _ := tag.Region(); region.String() {
		case "HK", "TW", "MO":
			return "zh-HK"
		}
		return "zh"
	}

	if IsSupported(base.String()) {
		return base.String()
	}
	return DefaultLanguage
}
