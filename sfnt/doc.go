// Package sfnt reads font metadata directly from TrueType and OpenType files.
//
// The package understands just enough of the SFNT container to locate the
// 'name' table through the table directory and decode its records. It does not
// need a platform font API and never retains the caller's buffer.
//
// # Family Names
//
// [FamilyName] returns the Font Family name (name ID 1):
//
//	family, err := sfnt.FamilyName(data)
//	switch {
//	case errors.Is(err, sfnt.ErrNotFound):
//	    // valid font without a family record
//	case errors.Is(err, sfnt.ErrMalformedFont):
//	    // no name table, or the file is truncated
//	}
//
// When several family records exist, Windows US English (platform 3, language
// 1033) is preferred, then Macintosh English (platform 1, language 0), then the
// first family record in the table.
//
// # Encodings
//
// Windows records are decoded as UTF-16BE. Records on every other platform are
// decoded one byte per character, which is exact for ASCII. Non-ASCII Macintosh
// Roman bytes are not remapped and come back as their Latin-1 code points.
//
// # Scope
//
// WOFF and WOFF2 wrappers are compressed and are not parsed. Table checksums
// are ignored.
package sfnt
