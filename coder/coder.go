// Package coder implements the arithmetic coding algorithm described in
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
//
// The coder is driven by a static Model mapping each symbol to a cumulative
// frequency range over [0, Total()). The model is built once from the whole
// input and never updated during coding.
package coder

const (
	codeValueBits = 32
	topValue      = (uint64(1) << codeValueBits) - 1
	firstQtr      = topValue/4 + 1
	half          = 2 * firstQtr
	thirdQtr      = 3 * firstQtr
)

// A Model is a static frequency model on a sequence of bytes.
// The cumulative frequency ranges of its symbols partition [0, Total())
// contiguously, with each range's width equal to the symbol's count.
type Model interface {
	// Total returns the sum of all symbol counts.
	Total() uint64

	// Interval returns the cumulative frequency range [low, high) of sym.
	// ok is false when sym is not in the model.
	Interval(sym byte) (low, high uint64, ok bool)

	// Find returns the symbol whose cumulative frequency range contains cum,
	// along with that range. cum must be in [0, Total()).
	Find(cum uint64) (sym byte, low, high uint64)
}

// An arithmeticEncoder carries the state required by an encoder.
type arithmeticEncoder struct {
	low   uint64
	high  uint64
	fbits uint64
}

func newAE() *arithmeticEncoder {
	ae := &arithmeticEncoder{}
	ae.high = topValue
	return ae
}

func bitPlusFollow(dst *BitWriter, ae *arithmeticEncoder, bit int) {
	negbit := 0
	if bit == 0 {
		negbit = 1
	}

	dst.WriteBit(bit)
	for ae.fbits > 0 {
		dst.WriteBit(negbit)
		ae.fbits -= 1
	}
}

// Encode performs arithmetic coding on src given a static frequency model,
// writing the coded bits to dst.
// Symbols absent from the model are skipped; this cannot happen when the
// model was built from src itself.
// Encode flushes dst, so the written bitstream ends on a byte boundary.
func Encode(dst *BitWriter, src []byte, model Model) {
	ae := newAE()
	total := model.Total()
	for _, sym := range src {
		slow, shigh, ok := model.Interval(sym)
		if !ok {
			continue
		}

		arange := (ae.high - ae.low) + 1

		// narrow range
		ae.high = ae.low + arange*shigh/total - 1
		ae.low = ae.low + arange*slow/total

		for {
			if ae.high < half {
				bitPlusFollow(dst, ae, 0)
			} else if ae.low >= half {
				bitPlusFollow(dst, ae, 1)
				ae.low -= half
				ae.high -= half
			} else if ae.low >= firstQtr && ae.high < thirdQtr {
				ae.fbits += 1
				ae.low -= firstQtr
				ae.high -= firstQtr
			} else {
				break
			}

			ae.low = 2 * ae.low
			ae.high = 2*ae.high + 1
		}
	}

	// One final bit pins the interval to a quarter the decoder can identify.
	ae.fbits += 1
	if ae.low < firstQtr {
		bitPlusFollow(dst, ae, 0)
	} else {
		bitPlusFollow(dst, ae, 1)
	}
	dst.Flush()
}

type arithmeticDecoder struct {
	low   uint64
	high  uint64
	value uint64
}

func newAD(src *BitReader) *arithmeticDecoder {
	ad := &arithmeticDecoder{}
	ad.high = topValue
	for i := 1; i <= codeValueBits; i++ {
		ad.value = 2*ad.value + uint64(src.ReadBit())
	}
	return ad
}

// Decode reconstructs originalSize symbols from the bitstream in src.
// Decode expects that model is the exact same frequency model used in Encode.
// Reading past the end of src yields zero bits, which tolerates the padding
// Encode appends to reach a byte boundary.
func Decode(src *BitReader, model Model, originalSize uint64) []byte {
	out := make([]byte, 0, originalSize)
	ad := newAD(src)
	total := model.Total()

	for i := uint64(0); i < originalSize; i++ {
		arange := (ad.high - ad.low) + 1
		cum := ((ad.value-ad.low+1)*total - 1) / arange
		sym, slow, shigh := model.Find(cum)
		out = append(out, sym)

		// narrow range
		ad.high = ad.low + arange*shigh/total - 1
		ad.low = ad.low + arange*slow/total

		// rescale interval
		for {
			if ad.high < half {
				// do nothing
			} else if ad.low >= half {
				ad.value -= half
				ad.low -= half
				ad.high -= half
			} else if ad.low >= firstQtr && ad.high < thirdQtr {
				ad.value -= firstQtr
				ad.low -= firstQtr
				ad.high -= firstQtr
			} else {
				break
			}

			ad.low = 2 * ad.low
			ad.high = 2*ad.high + 1
			ad.value = 2*ad.value + uint64(src.ReadBit())
		}
	}
	return out
}
