package nsmbw

import (
	"encoding/binary"
	"hash/crc32"
)

// Checksum is the CRC-32 (IEEE) the game stores after the header and after
// every slot. Callers pass exactly the covered range.
func Checksum(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

func sealHeader(buf []byte) {
	binary.BigEndian.PutUint32(buf[hChecksum:], Checksum(buf[hChecksumStart:hChecksum]))
}

func sealSlot(buf []byte) {
	binary.BigEndian.PutUint32(buf[sChecksum:], Checksum(buf[:sChecksum]))
}

// ChecksumReport compares the checksum stored in one record with the one
// computed from its contents.
type ChecksumReport struct {
	Record   string // "header" or "slot N"
	Offset   int    // file offset of the stored checksum
	Stored   uint32
	Computed uint32
}

func (r ChecksumReport) OK() bool {
	return r.Stored == r.Computed
}

// Verify recomputes the header and slot checksums of a save file. A
// mismatch is reported, not returned as an error; the game itself rejects
// such a file, but Decode still accepts it.
func Verify(data []byte) ([]ChecksumReport, error) {
	if err := checkFile(data); err != nil {
		return nil, err
	}

	reports := []ChecksumReport{{
		Record:   "header",
		Offset:   hChecksum,
		Stored:   binary.BigEndian.Uint32(data[hChecksum:]),
		Computed: Checksum(data[hChecksumStart:hChecksum]),
	}}
	for i := range SlotCount {
		rec := data[slotOffset(i) : slotOffset(i)+SlotSize]
		reports = append(reports, ChecksumReport{
			Record:   slotName(i),
			Offset:   slotOffset(i) + sChecksum,
			Stored:   binary.BigEndian.Uint32(rec[sChecksum:]),
			Computed: Checksum(rec[:sChecksum]),
		})
	}
	return reports, nil
}
