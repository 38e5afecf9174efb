package sfnt

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Name IDs, platforms and languages used when choosing a family name.
const (
	NameIDFamily = 1

	PlatformUnicode   = 0
	PlatformMacintosh = 1
	PlatformWindows   = 3

	LanguageMacEnglish       = 0
	LanguageWindowsUSEnglish = 1033
)

const (
	nameHeaderSize = 6  // format, count, stringOffset
	nameRecordSize = 12 // six uint16 fields
)

// NameRecord is a decoded entry of the 'name' table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
}

// nameRecord is the raw form of a record. offset is relative to the string
// storage area.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     uint16
}

func (r nameRecord) isWindowsUSEnglish() bool {
	return r.platformID == PlatformWindows && r.languageID == LanguageWindowsUSEnglish
}

func (r nameRecord) isMacEnglish() bool {
	return r.platformID == PlatformMacintosh && r.languageID == LanguageMacEnglish
}

// nameTable locates the records and string storage of a 'name' table inside
// the whole font buffer. All positions are absolute.
type nameTable struct {
	v       view
	records uint64
	storage uint64
	count   int
}

func openNameTable(v view) (nameTable, error) {
	entry, err := findTable(v, "name")
	if err != nil {
		return nameTable{}, err
	}

	base := uint64(entry.Offset)

	// Format at base is not used.
	count, err := v.uint16At(base + 2)
	if err != nil {
		return nameTable{}, err
	}
	storageOffset, err := v.uint16At(base + 4)
	if err != nil {
		return nameTable{}, err
	}

	return nameTable{
		v:       v,
		records: base + nameHeaderSize,
		storage: base + uint64(storageOffset),
		count:   int(count),
	}, nil
}

func (t nameTable) record(i int) (nameRecord, error) {
	b, err := t.v.bytesAt(t.records+uint64(i)*nameRecordSize, nameRecordSize)
	if err != nil {
		return nameRecord{}, err
	}

	field := func(n int) uint16 { return uint16(b[2*n])<<8 | uint16(b[2*n+1]) }

	return nameRecord{
		platformID: field(0),
		encodingID: field(1),
		languageID: field(2),
		nameID:     field(3),
		length:     field(4),
		offset:     field(5),
	}, nil
}

func (t nameTable) decode(r nameRecord) (string, error) {
	raw, err := t.v.bytesAt(t.storage+uint64(r.offset), uint64(r.length))
	if err != nil {
		return "", err
	}
	return encodingFor(r.platformID).decode(raw)
}

// stringEncoding is the closed set of string encodings the reader knows.
type stringEncoding int

const (
	windowsUTF16BE stringEncoding = iota
	macSingleByte
)

var (
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

	// ISO 8859-1 maps each byte to the code point of the same value. That is
	// right for ASCII only; Mac Roman above 0x7F is not remapped.
	singleByte encoding.Encoding = charmap.ISO8859_1
)

func encodingFor(platformID uint16) stringEncoding {
	if platformID == PlatformWindows {
		return windowsUTF16BE
	}
	return macSingleByte
}

func (e stringEncoding) decode(raw []byte) (string, error) {
	var (
		out []byte
		err error
	)

	switch e {
	case windowsUTF16BE:
		// A trailing odd byte cannot form a code unit.
		out, err = utf16BE.NewDecoder().Bytes(raw[:len(raw)&^1])
	case macSingleByte:
		out, err = singleByte.NewDecoder().Bytes(raw)
	}
	if err != nil {
		return "", malformed("decode name string: %v", err)
	}

	return string(out), nil
}

// familyMatch is the best family name seen so far during a record scan.
type familyMatch struct {
	name  string
	found bool
}

// step folds one record into the match. Only family records are considered:
// the first one is kept until a Windows US English or Macintosh English record
// replaces it. stop is true once a Windows US English record has been taken.
// Strings are only decoded for records that are taken.
func (m familyMatch) step(r nameRecord, decode func(nameRecord) (string, error)) (next familyMatch, stop bool, err error) {
	if r.nameID != NameIDFamily {
		return m, false, nil
	}

	if m.found && !r.isWindowsUSEnglish() && !r.isMacEnglish() {
		return m, false, nil
	}

	name, err := decode(r)
	if err != nil {
		return m, false, err
	}

	return familyMatch{name: name, found: true}, r.isWindowsUSEnglish(), nil
}
