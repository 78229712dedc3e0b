// Package arit provides a lossless compression/decompression utility based
// on arithmetic coding with a static whole-file frequency model.
// A first pass over the input builds an order-0 frequency table, which is
// serialized alongside the coded bitstream so that the decoder can rebuild
// the exact same model.
//
// Below is an example of compressing and restoring a file:
//
//	go run compress/main.go report.txt report.arit
//	go run decompress/main.go report.arit report.out
//	diff report.txt report.out
package arit

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rodrigoabreu22/TAI-Project-1/coder"
)

// Statistics summarizes the result of a single compression.
type Statistics struct {
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64 // compressed size divided by original size
	SpaceSaved       int64
}

// String formats the statistics as a human readable report.
func (s Statistics) String() string {
	return fmt.Sprintf(`=== Compression Statistics ===
Original size:     %d bytes
Compressed size:   %d bytes
Compression ratio: %.4f%%
Space saved:       %d bytes (%.2f%%)`,
		s.OriginalSize,
		s.CompressedSize,
		s.CompressionRatio*100,
		s.SpaceSaved,
		(1-s.CompressionRatio)*100)
}

// Compress reads the whole file at inputPath, compresses it, and writes the
// result to outputPath.
// The output holds the header, the frequency table, and the coded bitstream;
// the returned Statistics account for all three.
func Compress(inputPath, outputPath string) (Statistics, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Statistics{}, errors.Wrap(err, "cannot open input file")
	}

	table := NewTable(data)

	w := &coder.BitWriter{}
	coder.Encode(w, data, table)

	buf := bytes.NewBuffer(nil)
	if err := writeHeader(buf, uint64(len(data)), table); err != nil {
		return Statistics{}, err
	}
	if _, err := buf.Write(w.Bytes()); err != nil {
		return Statistics{}, errors.Wrap(err, "")
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return Statistics{}, errors.Wrap(err, "cannot create output file")
	}

	stats := Statistics{
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(buf.Len()),
		SpaceSaved:     int64(len(data)) - int64(buf.Len()),
	}
	if len(data) > 0 {
		stats.CompressionRatio = float64(stats.CompressedSize) / float64(stats.OriginalSize)
	}
	return stats, nil
}

// Decompress reads the compressed file at inputPath and writes the restored
// bytes to outputPath.
// Given a well-formed compressed file, the output is byte-identical to the
// file originally given to Compress.
func Decompress(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrap(err, "cannot open input file")
	}

	r := bytes.NewReader(data)
	originalSize, table, err := readHeader(r)
	if err != nil {
		return err
	}
	// A nonempty original cannot have an empty table.
	if originalSize > 0 && table.Total() == 0 {
		return ErrInvalidFormat
	}
	bitstream := data[len(data)-r.Len():]

	decoded := coder.Decode(coder.NewBitReader(bitstream), table, originalSize)

	if err := os.WriteFile(outputPath, decoded, 0644); err != nil {
		return errors.Wrap(err, "cannot create output file")
	}
	return nil
}
