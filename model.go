package arit

// A symbol is one distinct byte value together with its cumulative
// frequency range [low, high) over [0, total).
type symbol struct {
	value byte
	low   uint64
	high  uint64
	count uint64
}

// A symbolCount is one (value, count) pair of a persisted frequency table.
type symbolCount struct {
	value byte
	count uint64
}

// A Table is a static order-0 frequency model over a byte alphabet.
// It is built once per compress or decompress call and never mutated.
// Table implements the coder.Model interface.
type Table struct {
	symbols []symbol
	total   uint64
}

// NewTable builds a frequency table from data.
// Symbols are assigned contiguous cumulative ranges in ascending byte value
// order, so that the encoder and the decoder derive identical ranges.
func NewTable(data []byte) *Table {
	var freq [256]uint64
	for _, b := range data {
		freq[b]++
	}

	t := &Table{total: uint64(len(data))}
	var cumulative uint64
	for v := 0; v < 256; v++ {
		if freq[v] == 0 {
			continue
		}
		t.symbols = append(t.symbols, symbol{
			value: byte(v),
			low:   cumulative,
			high:  cumulative + freq[v],
			count: freq[v],
		})
		cumulative += freq[v]
	}
	return t
}

// newTableFromCounts rebuilds a table from persisted (value, count) pairs.
// The pairs are trusted to be in the order the encoder wrote them;
// re-sorting would desynchronize the cumulative ranges.
func newTableFromCounts(counts []symbolCount) *Table {
	t := &Table{}
	var cumulative uint64
	for _, c := range counts {
		t.symbols = append(t.symbols, symbol{
			value: c.value,
			low:   cumulative,
			high:  cumulative + c.count,
			count: c.count,
		})
		cumulative += c.count
	}
	t.total = cumulative
	return t
}

// Total returns the sum of all symbol counts, which equals the length of
// the data the table was built from.
func (t *Table) Total() uint64 {
	return t.total
}

// Interval returns the cumulative frequency range [low, high) of sym.
// The linear scan is fine for an alphabet bounded at 256 symbols.
func (t *Table) Interval(sym byte) (low, high uint64, ok bool) {
	for _, s := range t.symbols {
		if s.value == sym {
			return s.low, s.high, true
		}
	}
	return 0, 0, false
}

// Find returns the symbol whose cumulative frequency range contains cum.
// The ranges partition [0, Total()), so any cum in that interval matches.
func (t *Table) Find(cum uint64) (sym byte, low, high uint64) {
	for _, s := range t.symbols {
		if cum >= s.low && cum < s.high {
			return s.value, s.low, s.high
		}
	}
	return 0, 0, 0
}
