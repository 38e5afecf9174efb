package fontname

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/fontpref/sfnt"
)

// macFont builds a font with one Macintosh English family record.
func macFont(family string) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.BigEndian, uint32(0x00010000))
	_ = binary.Write(&buf, binary.BigEndian, [4]uint16{1, 16, 0, 0})
	buf.WriteString("name")
	_ = binary.Write(&buf, binary.BigEndian, [3]uint32{0, 28, uint32(18 + len(family))})
	_ = binary.Write(&buf, binary.BigEndian, [3]uint16{0, 1, 18})
	_ = binary.Write(&buf, binary.BigEndian, [6]uint16{1, 0, 0, 1, uint16(len(family)), 0})
	buf.WriteString(family)
	return buf.Bytes()
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"JetBrains_Mono-Bold.ttf", "Jet Brains Mono Bold"},
		{"JetBrainsMono-Bold.ttf", "Jet Brains Mono Bold"},
		{"maple-mono-nf-cn.ttf", "Maple Mono Nf Cn"},
		{"maple_mono_nf.otf", "Maple Mono Nf"},
		{"OpenSans.woff2", "Open Sans"},
		{"inter.woff", "Inter"},
		{"ABC.ttf", "A B C"},
		{"my  font__name.ttf", "My Font Name"},
		{"fira.code.ttf", "Fira.code"},
		{"/home/me/fonts/iosevka-term.ttf", "Iosevka Term"},
		{"noextension", "Noextension"},
	}

	for _, tt := range tests {
		if got := FromFilename(tt.filename); got != tt.want {
			t.Errorf("FromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestResolve_FromFont(t *testing.T) {
	res, err := Resolve("whatever.ttf", macFont("Maple Mono NF CN"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Source != SourceFont {
		t.Errorf("Expected source font, got %v", res.Source)
	}
	if res.Name != "Maple Mono NF CN" {
		t.Errorf("Expected 'Maple Mono NF CN', got %q", res.Name)
	}
	if res.Cause != nil {
		t.Errorf("Expected nil cause, got %v", res.Cause)
	}
}

func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		data  []byte
		cause error
	}{
		{"garbage", "Fira-Code.ttf", []byte("not a font"), sfnt.ErrMalformedFont},
		{"woff wrapper", "Fira-Code.woff", append([]byte("wOFF"), make([]byte, 40)...), sfnt.ErrMalformedFont},
		{"woff2 wrapper", "Fira-Code.woff2", append([]byte("wOF2"), make([]byte, 40)...), sfnt.ErrMalformedFont},
		{"empty family", "Fira-Code.otf", macFont(""), sfnt.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(tt.file, tt.data)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if res.Source != SourceFilename {
				t.Errorf("Expected source filename, got %v", res.Source)
			}
			if res.Name != "Fira Code" {
				t.Errorf("Expected 'Fira Code', got %q", res.Name)
			}
			if !errors.Is(res.Cause, tt.cause) {
				t.Errorf("Expected cause %v, got %v", tt.cause, res.Cause)
			}
		})
	}
}

func TestResolve_UnsupportedExtension(t *testing.T) {
	_, err := Resolve("font.pdf", macFont("Arial"))
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Errorf("Expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom-font.ttf")
	if err := os.WriteFile(path, macFont("Custom"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := ResolveFile(path)
	if err != nil {
		t.Fatalf("ResolveFile failed: %v", err)
	}
	if res.Name != "Custom" || res.Source != SourceFont {
		t.Errorf("Unexpected result: %+v", res)
	}

	if _, err := ResolveFile(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSource_String(t *testing.T) {
	if SourceFont.String() != "font" || SourceFilename.String() != "filename" || Source(9).String() != "unknown" {
		t.Error("unexpected Source strings")
	}
}
