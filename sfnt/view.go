package sfnt

import "encoding/binary"

// view is a read-only window over a font buffer. Every accessor checks the
// requested range against the buffer length before reading.
type view []byte

func (v view) bytesAt(off, n uint64) ([]byte, error) {
	if off > uint64(len(v)) || n > uint64(len(v))-off {
		return nil, malformed("read of %d bytes at offset %d exceeds buffer length %d", n, off, len(v))
	}
	return v[off : off+n], nil
}

func (v view) uint16At(off uint64) (uint16, error) {
	b, err := v.bytesAt(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (v view) uint32At(off uint64) (uint32, error) {
	b, err := v.bytesAt(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
