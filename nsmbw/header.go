package nsmbw

import (
	"fmt"
)

func (h *Header) fields(f fieldVisitor) {
	f.enum(hRegion, &h.Region)
	f.u8(hLastSelected, &h.LastSelectedIndex)
	h.FreeModePlayCount.cells(hFreeModePlays, 2, f.u16)
	h.CoinBattlePlayCount.cells(hCoinBattlePlays, 2, f.u16)
	f.u16(hUnlockedWorlds, &h.ExtraModesUnlockedWorlds)
}

// DecodeHeader reads the header from the start of b. The magic is not
// checked here, see Decode.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %#x bytes, got %#x", ErrTruncated, HeaderSize, len(b))
	}
	var h Header
	h.fields(fieldReader{buf: b[:HeaderSize]})
	return h, nil
}

// Encode returns the HeaderSize bytes of h, checksum included.
func (h Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf, magic)
	buf[hVersion] = HeaderVersion
	h.fields(fieldWriter{buf: buf})
	sealHeader(buf)
	return buf
}
