package arit

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// magic identifies a compressed file.
var magic = [4]byte{'A', 'R', 'I', 'T'}

// ErrInvalidFormat is returned when a compressed file does not start with
// the expected magic bytes or its header is structurally impossible.
var ErrInvalidFormat = fmt.Errorf("invalid compressed file format")

// ErrUnexpectedEOF is returned when a compressed file is truncated before
// its header or frequency table is complete.
var ErrUnexpectedEOF = fmt.Errorf("unexpected end of compressed file")

// writeHeader serializes the file header: the magic bytes, the original
// size as a big-endian uint64, the symbol count as a big-endian uint32,
// and one (value, big-endian uint64 count) pair per symbol in table order.
func writeHeader(w io.Writer, originalSize uint64, t *Table) error {
	if _, err := w.Write(magic[:]); err != nil {
		return errors.Wrap(err, "")
	}
	if err := binary.Write(w, binary.BigEndian, originalSize); err != nil {
		return errors.Wrap(err, "")
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(t.symbols))); err != nil {
		return errors.Wrap(err, "")
	}
	for _, s := range t.symbols {
		if _, err := w.Write([]byte{s.value}); err != nil {
			return errors.Wrap(err, "")
		}
		if err := binary.Write(w, binary.BigEndian, s.count); err != nil {
			return errors.Wrap(err, "")
		}
	}
	return nil
}

// readHeader parses the header written by writeHeader and rebuilds the
// frequency table from the persisted counts.
func readHeader(r io.Reader) (originalSize uint64, t *Table, err error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return 0, nil, ErrInvalidFormat
	}
	if m != magic {
		return 0, nil, ErrInvalidFormat
	}

	if err := binary.Read(r, binary.BigEndian, &originalSize); err != nil {
		return 0, nil, ErrUnexpectedEOF
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, nil, ErrUnexpectedEOF
	}

	var counts []symbolCount
	for i := uint32(0); i < n; i++ {
		var buf [9]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, nil, ErrUnexpectedEOF
		}
		counts = append(counts, symbolCount{
			value: buf[0],
			count: binary.BigEndian.Uint64(buf[1:]),
		})
	}
	return originalSize, newTableFromCounts(counts), nil
}
