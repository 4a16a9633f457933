package nsmbw

import (
	"encoding/binary"
)

// A record's layout is written once, as a walk over its fields that hands
// each field and its offset to a fieldVisitor. Decoding and encoding are
// the two visitors, so they cannot disagree about where a field lives.
type fieldVisitor interface {
	u8(off int, v *uint8)
	u16(off int, v *uint16)
	u32(off int, v *uint32)
	flag(off int, v *bool)
	enum(off int, v discriminated)
}

// fieldReader reads from a record window whose length was checked up front.
type fieldReader struct {
	buf []byte
}

func (r fieldReader) u8(off int, v *uint8)          { *v = r.buf[off] }
func (r fieldReader) u16(off int, v *uint16)        { *v = binary.BigEndian.Uint16(r.buf[off:]) }
func (r fieldReader) u32(off int, v *uint32)        { *v = binary.BigEndian.Uint32(r.buf[off:]) }
func (r fieldReader) flag(off int, v *bool)         { *v = r.buf[off] != 0 }
func (r fieldReader) enum(off int, v discriminated) { v.setDiscriminant(r.buf[off]) }

// fieldWriter fills a zeroed record buffer. Bytes no field claims stay zero.
type fieldWriter struct {
	buf []byte
}

func (w fieldWriter) u8(off int, v *uint8)          { w.buf[off] = *v }
func (w fieldWriter) u16(off int, v *uint16)        { binary.BigEndian.PutUint16(w.buf[off:], *v) }
func (w fieldWriter) u32(off int, v *uint32)        { binary.BigEndian.PutUint32(w.buf[off:], *v) }
func (w fieldWriter) flag(off int, v *bool)         { w.buf[off] = boolb(*v) }
func (w fieldWriter) enum(off int, v discriminated) { w.buf[off] = v.discriminant() }

func boolb(in bool) byte {
	if in {
		return 1
	}
	return 0
}
