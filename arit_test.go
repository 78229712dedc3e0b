package arit

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":      {},
		"singleByte": {'x'},
		"oneSymbol":  bytes.Repeat([]byte{'a'}, 1000),
		"text":       []byte("In a hole in the ground there lived a hobbit."),
	}

	full := make([]byte, 256)
	for i := range full {
		full[i] = byte(i)
	}
	cases["fullAlphabet"] = full

	skew := bytes.Repeat([]byte{'.'}, 9990)
	skew = append(skew, []byte("0123456789")...)
	cases["skewed"] = skew

	rnd := rand.New(rand.NewSource(42))
	random := make([]byte, 1<<18)
	rnd.Read(random)
	cases["randomBinary"] = random

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, data)
		})
	}
}

func roundTrip(t *testing.T, data []byte) Statistics {
	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	compressed := filepath.Join(dir, "compressed")
	restored := filepath.Join(dir, "restored")

	if err := os.WriteFile(input, data, 0644); err != nil {
		t.Fatalf("%v", err)
	}

	stats, err := Compress(input, compressed)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if err := Decompress(compressed, restored); err != nil {
		t.Fatalf("%+v", err)
	}

	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(data, got) {
		t.Fatalf("restored %d bytes, want %d", len(got), len(data))
	}
	return stats
}

func TestStatistics(t *testing.T) {
	data := []byte("statistics must account for every byte actually written")
	stats := roundTrip(t, data)

	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	compressed := filepath.Join(dir, "compressed")
	if err := os.WriteFile(input, data, 0644); err != nil {
		t.Fatalf("%v", err)
	}
	if _, err := Compress(input, compressed); err != nil {
		t.Fatalf("%+v", err)
	}
	fi, err := os.Stat(compressed)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if stats.OriginalSize != int64(len(data)) {
		t.Errorf("original size %d != %d", stats.OriginalSize, len(data))
	}
	if stats.CompressedSize != fi.Size() {
		t.Errorf("compressed size %d != file size %d", stats.CompressedSize, fi.Size())
	}
	if stats.SpaceSaved != stats.OriginalSize-stats.CompressedSize {
		t.Errorf("space saved %d", stats.SpaceSaved)
	}
	want := float64(stats.CompressedSize) / float64(stats.OriginalSize)
	if stats.CompressionRatio != want {
		t.Errorf("ratio %f != %f", stats.CompressionRatio, want)
	}
}

func TestHeaderFidelity(t *testing.T) {
	data := []byte("abracadabra")

	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	compressed := filepath.Join(dir, "compressed")
	if err := os.WriteFile(input, data, 0644); err != nil {
		t.Fatalf("%v", err)
	}
	if _, err := Compress(input, compressed); err != nil {
		t.Fatalf("%+v", err)
	}

	raw, err := os.ReadFile(compressed)
	if err != nil {
		t.Fatalf("%v", err)
	}

	if !bytes.Equal(raw[:4], []byte("ARIT")) {
		t.Fatalf("magic %q", raw[:4])
	}
	if got := binary.BigEndian.Uint64(raw[4:12]); got != uint64(len(data)) {
		t.Errorf("original size field %d != %d", got, len(data))
	}
	// abracadabra has 5 distinct byte values: a b c d r.
	if got := binary.BigEndian.Uint32(raw[12:16]); got != 5 {
		t.Errorf("symbol count field %d != 5", got)
	}
	// Table entries appear in ascending byte value order with their counts.
	wantTable := []struct {
		value byte
		count uint64
	}{{'a', 5}, {'b', 2}, {'c', 1}, {'d', 1}, {'r', 2}}
	for i, w := range wantTable {
		entry := raw[16+i*9 : 16+(i+1)*9]
		if entry[0] != w.value {
			t.Errorf("entry %d: value %q != %q", i, entry[0], w.value)
		}
		if got := binary.BigEndian.Uint64(entry[1:]); got != w.count {
			t.Errorf("entry %d: count %d != %d", i, got, w.count)
		}
	}
}

func TestDeterminism(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	data := make([]byte, 1<<14)
	rnd.Read(data)

	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	if err := os.WriteFile(input, data, 0644); err != nil {
		t.Fatalf("%v", err)
	}

	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	if _, err := Compress(input, first); err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := Compress(input, second); err != nil {
		t.Fatalf("%+v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("%v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("compressing the same input twice produced different files")
	}
}

func TestDecompressRejectsCorruptFiles(t *testing.T) {
	data := []byte("some perfectly ordinary input data")

	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	compressed := filepath.Join(dir, "compressed")
	if err := os.WriteFile(input, data, 0644); err != nil {
		t.Fatalf("%v", err)
	}
	if _, err := Compress(input, compressed); err != nil {
		t.Fatalf("%+v", err)
	}
	raw, err := os.ReadFile(compressed)
	if err != nil {
		t.Fatalf("%v", err)
	}

	out := filepath.Join(dir, "out")
	write := func(t *testing.T, b []byte) string {
		corrupt := filepath.Join(t.TempDir(), "corrupt")
		if err := os.WriteFile(corrupt, b, 0644); err != nil {
			t.Fatalf("%v", err)
		}
		return corrupt
	}

	t.Run("badMagic", func(t *testing.T) {
		bad := append([]byte("TIRA"), raw[4:]...)
		if err := Decompress(write(t, bad), out); err != ErrInvalidFormat {
			t.Fatalf("%v", err)
		}
	})

	t.Run("truncatedHeader", func(t *testing.T) {
		if err := Decompress(write(t, raw[:9]), out); err != ErrUnexpectedEOF {
			t.Fatalf("%v", err)
		}
	})

	t.Run("truncatedTable", func(t *testing.T) {
		// Cut in the middle of the frequency table.
		if err := Decompress(write(t, raw[:16+5]), out); err != ErrUnexpectedEOF {
			t.Fatalf("%v", err)
		}
	})

	t.Run("emptyFile", func(t *testing.T) {
		if err := Decompress(write(t, nil), out); err != ErrInvalidFormat {
			t.Fatalf("%v", err)
		}
	})

	t.Run("missingTable", func(t *testing.T) {
		// A nonzero original size with a zero-entry table is impossible.
		bad := make([]byte, 16)
		copy(bad, "ARIT")
		binary.BigEndian.PutUint64(bad[4:], 100)
		if err := Decompress(write(t, bad), out); err != ErrInvalidFormat {
			t.Fatalf("%v", err)
		}
	})
}
