package sfnt

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFont is returned when the buffer has no 'name' table or a
	// read would fall outside the buffer.
	ErrMalformedFont = errors.New("sfnt: malformed font")

	// ErrNotFound is returned when a structurally valid font has no Font
	// Family (name ID 1) record.
	ErrNotFound = errors.New("sfnt: family name not found")
)

// Offset table layout
const (
	offsetTableSize = 12 // sfntVersion, numTables, searchRange, entrySelector, rangeShift
	numTablesOffset = 4
	tableEntrySize  = 16 // tag, checksum, offset, length
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedFont, fmt.Sprintf(format, args...))
}

// tableEntry is one record of the table directory. The checksum is not kept.
type tableEntry struct {
	Tag    string
	Offset uint32
	Length uint32
}

// findTable scans the table directory in order and returns the first entry
// whose tag matches. The sfnt version at offset 0 is not validated.
func findTable(v view, tag string) (tableEntry, error) {
	if len(v) < offsetTableSize {
		return tableEntry{}, malformed("buffer of %d bytes is shorter than the offset table", len(v))
	}

	numTables, err := v.uint16At(numTablesOffset)
	if err != nil {
		return tableEntry{}, err
	}

	for i := uint64(0); i < uint64(numTables); i++ {
		base := offsetTableSize + i*tableEntrySize

		rawTag, err := v.bytesAt(base, 4)
		if err != nil {
			return tableEntry{}, err
		}
		if string(rawTag) != tag {
			continue
		}

		// Skip checksum at base+4
		offset, err := v.uint32At(base + 8)
		if err != nil {
			return tableEntry{}, err
		}
		length, err := v.uint32At(base + 12)
		if err != nil {
			return tableEntry{}, err
		}

		return tableEntry{Tag: tag, Offset: offset, Length: length}, nil
	}

	return tableEntry{}, malformed("no %s table", tag)
}

// FamilyName extracts the Font Family name (name ID 1) from a TrueType or
// OpenType font held in buf. The buffer must contain the complete file.
//
// It returns an error wrapping ErrMalformedFont when the font has no 'name'
// table or is truncated, and ErrNotFound when no family record exists.
func FamilyName(buf []byte) (string, error) {
	nt, err := openNameTable(view(buf))
	if err != nil {
		return "", err
	}

	var match familyMatch
	for i := 0; i < nt.count; i++ {
		rec, err := nt.record(i)
		if err != nil {
			return "", err
		}

		var stop bool
		match, stop, err = match.step(rec, nt.decode)
		if err != nil {
			return "", err
		}
		if stop {
			break
		}
	}

	if !match.found {
		return "", ErrNotFound
	}
	return match.name, nil
}

// Names decodes every record of the font's 'name' table, in table order.
// Strings use the same platform-keyed decoding as FamilyName.
func Names(buf []byte) ([]NameRecord, error) {
	nt, err := openNameTable(view(buf))
	if err != nil {
		return nil, err
	}

	names := make([]NameRecord, 0, nt.count)
	for i := 0; i < nt.count; i++ {
		rec, err := nt.record(i)
		if err != nil {
			return nil, err
		}
		value, err := nt.decode(rec)
		if err != nil {
			return nil, err
		}
		names = append(names, NameRecord{
			PlatformID: rec.platformID,
			EncodingID: rec.encodingID,
			LanguageID: rec.languageID,
			NameID:     rec.nameID,
			Value:      value,
		})
	}

	return names, nil
}
