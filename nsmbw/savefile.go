// Package nsmbw reads and writes New Super Mario Bros. Wii save files:
// one header followed by six fixed size slots, each sealed with a big
// endian CRC-32.
package nsmbw

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrFormat means the data is not a save file: wrong magic or too short.
	ErrFormat = errors.New("not a recognized save file")
	// ErrTruncated means a record does not fit in the buffer.
	ErrTruncated = errors.New("save data truncated")
)

func checkFile(data []byte) error {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return fmt.Errorf("%w: bad magic", ErrFormat)
	}
	if len(data) < FileSize {
		return fmt.Errorf("%w: %w: %d bytes, need %d", ErrFormat, ErrTruncated, len(data), FileSize)
	}
	return nil
}

// Blank is the state used when no file is loaded.
func Blank() *SaveFile {
	s := &SaveFile{}
	for i := range s.Slots {
		s.Slots[i] = BlankSlot()
	}
	return s
}

// Decode parses a whole save file. Field values are taken as they are:
// only the magic and the length are checked, and unknown enum bytes fall
// back to their defaults.
func Decode(data []byte) (*SaveFile, error) {
	if err := checkFile(data); err != nil {
		return nil, err
	}

	h, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	s := &SaveFile{Header: h}
	for i := range s.Slots {
		s.Slots[i], err = DecodeSlot(data, i)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Encode returns the FileSize bytes of s with fresh checksums. Bytes not
// backed by a field are written as zero.
func (s *SaveFile) Encode() []byte {
	out := make([]byte, 0, FileSize)
	out = append(out, s.Header.Encode()...)
	for _, slot := range s.Slots {
		out = append(out, slot.Encode()...)
	}
	return out
}

func Load(f InFile) (*SaveFile, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *SaveFile) Save(f OutFile) error {
	b := s.Encode()
	n, err := f.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("wrote %d bytes of the save file, expected %d", n, len(b))
	}
	return nil
}
