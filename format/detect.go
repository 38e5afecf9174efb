// Package format provides font file format detection for fontpref.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a font file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// TrueType indicates an SFNT font with TrueType outlines (.ttf).
	TrueType
	// OpenType indicates an SFNT font with CFF outlines (.otf).
	OpenType
	// WOFF indicates a WOFF 1.0 web font wrapper.
	WOFF
	// WOFF2 indicates a WOFF 2.0 web font wrapper.
	WOFF2
	// Collection indicates a TrueType collection (.ttc).
	Collection
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TrueType:
		return "TrueType"
	case OpenType:
		return "OpenType"
	case WOFF:
		return "WOFF"
	case WOFF2:
		return "WOFF2"
	case Collection:
		return "Collection"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case TrueType:
		return ".ttf"
	case OpenType:
		return ".otf"
	case WOFF:
		return ".woff"
	case WOFF2:
		return ".woff2"
	case Collection:
		return ".ttc"
	default:
		return ""
	}
}

// Parseable reports whether the format is a bare SFNT that the name table
// reader can handle. WOFF and WOFF2 are compressed wrappers and collections
// need a font index, so they are not.
func (f Format) Parseable() bool {
	return f == TrueType || f == OpenType
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ttf":
		return TrueType
	case ".otf":
		return OpenType
	case ".woff":
		return WOFF
	case ".woff2":
		return WOFF2
	case ".ttc":
		return Collection
	default:
		return Unknown
	}
}

// IsAccepted reports whether a file may be offered as a custom font. Only
// .ttf, .otf, .woff and .woff2 files are accepted.
func IsAccepted(filename string) bool {
	switch Detect(filename) {
	case TrueType, OpenType, WOFF, WOFF2:
		return true
	default:
		return false
	}
}

// Magic numbers at offset 0 of each format.
var (
	magicTrueType   = []byte{0x00, 0x01, 0x00, 0x00}
	magicAppleTrue  = []byte("true")
	magicOpenType   = []byte("OTTO")
	magicWOFF       = []byte("wOFF")
	magicWOFF2      = []byte("wOF2")
	magicCollection = []byte("ttcf")
)

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	magic := data[:4]
	switch {
	case bytes.Equal(magic, magicTrueType), bytes.Equal(magic, magicAppleTrue):
		return TrueType
	case bytes.Equal(magic, magicOpenType):
		return OpenType
	case bytes.Equal(magic, magicWOFF):
		return WOFF
	case bytes.Equal(magic, magicWOFF2):
		return WOFF2
	case bytes.Equal(magic, magicCollection):
		return Collection
	default:
		return Unknown
	}
}

// DetectFromReader reads the first bytes of r and detects the format from
// its magic number.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
