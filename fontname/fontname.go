// Package fontname resolves the display family name of a user-supplied font
// file. The name comes from the font's 'name' table when it can be read and
// from the file name otherwise.
package fontname

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tsawler/fontpref/format"
	"github.com/tsawler/fontpref/logging"
	"github.com/tsawler/fontpref/sfnt"
)

// ErrUnsupportedExtension is returned for files that are not .ttf, .otf,
// .woff or .woff2.
var ErrUnsupportedExtension = errors.New("fontname: unsupported font file extension")

// Source tells where a resolved name came from.
type Source int

const (
	// SourceFont means the name was read from the font's name table.
	SourceFont Source = iota
	// SourceFilename means the name was derived from the file name.
	SourceFilename
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceFont:
		return "font"
	case SourceFilename:
		return "filename"
	default:
		return "unknown"
	}
}

// Result is a resolved family name.
type Result struct {
	Name   string
	Source Source

	// Cause is the parse error that triggered the filename fallback.
	// It is nil when Source is SourceFont.
	Cause error
}

// Resolve returns the family name for a font file whose complete contents
// are in data. Parse failures are not returned as errors: they produce a
// Result derived from filename, with the failure kept in Cause. The only
// error is ErrUnsupportedExtension.
func Resolve(filename string, data []byte) (Result, error) {
	if !format.IsAccepted(filename) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(filename))
	}

	name, err := familyName(data)
	if err == nil {
		return Result{Name: name, Source: SourceFont}, nil
	}

	fallback := FromFilename(filename)
	logging.Logger().Debug("family name taken from filename",
		"file", filename,
		"name", fallback,
		"error", err,
	)

	return Result{Name: fallback, Source: SourceFilename, Cause: err}, nil
}

// ResolveFile reads the whole file at path and resolves its family name.
// Read errors are returned as is and do not fall back to the file name.
func ResolveFile(path string) (Result, error) {
	if !format.IsAccepted(path) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}

	//nolint:gosec // Font path is chosen by the user.
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read font file: %w", err)
	}

	return Resolve(filepath.Base(path), data)
}

func familyName(data []byte) (string, error) {
	// Compressed wrappers and collections never hold a readable table
	// directory at offset 0.
	switch f := format.DetectFromMagic(data); f {
	case format.WOFF, format.WOFF2, format.Collection:
		return "", fmt.Errorf("%w: %s data is not a bare sfnt", sfnt.ErrMalformedFont, f)
	}

	name, err := sfnt.FamilyName(data)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("%w: empty family name", sfnt.ErrNotFound)
	}
	return name, nil
}

var (
	extensionPattern = regexp.MustCompile(`\.[^/.]+$`)
	capitalPattern   = regexp.MustCompile(`([A-Z])`)
	wordPattern      = regexp.MustCompile(`\w\S*`)
)

// FromFilename derives a display name from a font file name: the extension
// is dropped, dashes and underscores become spaces, a space is inserted
// before each capital letter, whitespace is collapsed and every word starts
// with an upper-case letter.
//
//	FromFilename("JetBrainsMono-Bold.ttf") // "Jet Brains Mono Bold"
//	FromFilename("maple_mono_nf.otf")      // "Maple Mono Nf"
func FromFilename(filename string) string {
	name := extensionPattern.ReplaceAllString(filepath.Base(filename), "")

	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = capitalPattern.ReplaceAllString(name, " $1")
	name = strings.Join(strings.Fields(name), " ")

	return wordPattern.ReplaceAllStringFunc(name, func(word string) string {
		return strings.ToUpper(word[:1]) + word[1:]
	})
}
