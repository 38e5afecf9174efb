// Package fontpref provides a fluent API for reading family names and other
// metadata from user-supplied font files.
//
// Basic usage:
//
//	res, err := fontpref.Open("JetBrainsMono-Bold.ttf").Family()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(res.Name, res.Source) // "JetBrains Mono" font
//
// Without the file name fallback:
//
//	res, err := fontpref.Open("font.ttf").WithoutFallback().Family()
//
// The lower-level sfnt, fontname, prefs and whitelist packages are also
// available.
package fontpref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	xsfnt "golang.org/x/image/font/sfnt"

	"github.com/tsawler/fontpref/fontname"
	"github.com/tsawler/fontpref/format"
	"github.com/tsawler/fontpref/sfnt"
)

// Inspector provides a fluent interface for reading font metadata.
// Each configuration method returns a new Inspector, so a configured
// Inspector is safe to share.
type Inspector struct {
	filename string
	data     []byte
	options  InspectOptions
}

// Open returns an Inspector for the font file at filename. The file is read
// when a terminal operation runs.
//
// Example:
//
//	res, err := fontpref.Open("Inter.ttf").Family()
func Open(filename string) *Inspector {
	return &Inspector{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Inspector for font data that is already in memory.
// filename is used for extension checks and the fallback name.
func FromBytes(filename string, data []byte) *Inspector {
	return &Inspector{
		filename: filename,
		data:     data,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	name := fontpref.Must(fontpref.Open("Inter.ttf").Family()).Name
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

func (i *Inspector) clone() *Inspector {
	return &Inspector{
		filename: i.filename,
		data:     i.data,
		options:  i.options.clone(),
	}
}

// WithoutFallback makes Family return the parse error instead of a name
// derived from the file name.
func (i *Inspector) WithoutFallback() *Inspector {
	n := i.clone()
	n.options.fallback = false
	return n
}

// load returns the complete font data. Parsing never starts on a partial
// buffer.
func (i *Inspector) load() ([]byte, error) {
	if i.data != nil {
		return i.data, nil
	}
	if i.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	//nolint:gosec // Font path is chosen by the user.
	data, err := os.ReadFile(i.filename)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	return data, nil
}

// Family resolves the font's family name.
func (i *Inspector) Family() (fontname.Result, error) {
	data, err := i.load()
	if err != nil {
		return fontname.Result{}, err
	}

	if i.options.fallback {
		return fontname.Resolve(filepath.Base(i.filename), data)
	}

	if !format.IsAccepted(i.filename) {
		return fontname.Result{}, fmt.Errorf("%w: %q", fontname.ErrUnsupportedExtension, filepath.Ext(i.filename))
	}

	name, err := sfnt.FamilyName(data)
	if err != nil {
		return fontname.Result{}, err
	}
	return fontname.Result{Name: name, Source: fontname.SourceFont}, nil
}

// Names returns every decoded record of the font's name table.
func (i *Inspector) Names() ([]sfnt.NameRecord, error) {
	data, err := i.load()
	if err != nil {
		return nil, err
	}
	return sfnt.Names(data)
}

// Details describes a font beyond its family name.
type Details struct {
	Family         string
	Subfamily      string
	FullName       string
	PostScriptName string
	NumGlyphs      int
	Format         format.Format
}

// Details reads the family name with the sfnt package and the remaining
// fields with golang.org/x/image/font/sfnt. Missing optional names are left
// empty.
func (i *Inspector) Details() (Details, error) {
	data, err := i.load()
	if err != nil {
		return Details{}, err
	}

	d := Details{Format: format.DetectFromMagic(data)}

	d.Family, err = sfnt.FamilyName(data)
	if err != nil {
		return Details{}, err
	}

	f, err := xsfnt.Parse(data)
	if err != nil {
		return Details{}, fmt.Errorf("parse font: %w", err)
	}
	d.NumGlyphs = f.NumGlyphs()

	var buf xsfnt.Buffer
	for _, n := range []struct {
		id  xsfnt.NameID
		dst *string
	}{
		{xsfnt.NameIDSubfamily, &d.Subfamily},
		{xsfnt.NameIDFull, &d.FullName},
		{xsfnt.NameIDPostScript, &d.PostScriptName},
	} {
		s, err := f.Name(&buf, n.id)
		if err != nil && !errors.Is(err, xsfnt.ErrNotFound) {
			return Details{}, fmt.Errorf("read name %d: %w", n.id, err)
		}
		*n.dst = s
	}

	return d, nil
}
