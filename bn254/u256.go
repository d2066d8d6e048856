package bn254

import "math/bits"

// Uint256 is a fixed-width 256-bit unsigned integer stored as four 64-bit
// limbs, least-significant limb first (Uint256{lo, ..., hi}). It underlies
// every Fq element; arithmetic here is plain integer arithmetic with no
// notion of a modulus — the field layer built on top supplies that.
type Uint256 [4]uint64

// Uint512 is the widened product of two Uint256 values, used only inside
// Montgomery reduction.
type Uint512 [8]uint64

// IsZero reports whether x is the zero integer.
func (x Uint256) IsZero() bool {
	return x[0] == 0 && x[1] == 0 && x[2] == 0 && x[3] == 0
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x Uint256) Cmp(y Uint256) int {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns x+y and the carry out of the top limb.
func (x Uint256) Add(y Uint256) (Uint256, uint64) {
	var z Uint256
	var c uint64
	z[0], c = bits.Add64(x[0], y[0], 0)
	z[1], c = bits.Add64(x[1], y[1], c)
	z[2], c = bits.Add64(x[2], y[2], c)
	z[3], c = bits.Add64(x[3], y[3], c)
	return z, c
}

// Sub returns x-y and the borrow out of the top limb (1 if x < y).
func (x Uint256) Sub(y Uint256) (Uint256, uint64) {
	var z Uint256
	var b uint64
	z[0], b = bits.Sub64(x[0], y[0], 0)
	z[1], b = bits.Sub64(x[1], y[1], b)
	z[2], b = bits.Sub64(x[2], y[2], b)
	z[3], b = bits.Sub64(x[3], y[3], b)
	return z, b
}

// Bit returns the value (0 or 1) of the i-th bit, i in [0, 256).
func (x Uint256) Bit(i int) uint64 {
	return (x[i/64] >> uint(i%64)) & 1
}

// BitLen returns the number of bits required to represent x, 0 for x == 0.
func (x Uint256) BitLen() int {
	for i := 3; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}

// SetBytes decodes a big-endian byte slice (left-padded or truncated from
// the left to 32 bytes, matching the precompile's fixed-width convention)
// into x.
func (x *Uint256) SetBytes(b []byte) {
	var buf [32]byte
	if len(b) >= 32 {
		copy(buf[:], b[len(b)-32:])
	} else {
		copy(buf[32-len(b):], b)
	}
	x[0] = beUint64(buf[24:32])
	x[1] = beUint64(buf[16:24])
	x[2] = beUint64(buf[8:16])
	x[3] = beUint64(buf[0:8])
}

// Bytes encodes x as 32 big-endian bytes.
func (x Uint256) Bytes() [32]byte {
	var out [32]byte
	putBeUint64(out[24:32], x[0])
	putBeUint64(out[16:24], x[1])
	putBeUint64(out[8:16], x[2])
	putBeUint64(out[0:8], x[3])
	return out
}

func beUint64(b []byte) uint64 {
	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

func putBeUint64(b []byte, v uint64) {
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

// MulWide returns the full 512-bit product x*y via schoolbook multiplication.
func MulWide(x, y Uint256) Uint512 {
	var t Uint512
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		// Ripple the final carry of this row through the remaining high limbs.
		k := i + 4
		for carry != 0 && k < 8 {
			var c uint64
			t[k], c = bits.Add64(t[k], carry, 0)
			carry = c
			k++
		}
	}
	return t
}

// Lo returns the low 256 bits of t.
func (t Uint512) Lo() Uint256 {
	return Uint256{t[0], t[1], t[2], t[3]}
}

// Hi returns the high 256 bits of t.
func (t Uint512) Hi() Uint256 {
	return Uint256{t[4], t[5], t[6], t[7]}
}

// AddHi adds a Uint256 into the high half of t (words 4..7), returning the
// carry out of word 7. Montgomery reduction (redc) does not use it; it
// adds the full 512-bit m*p with Add512.
func (t Uint512) AddHi(y Uint256) (Uint512, uint64) {
	var c uint64
	t[4], c = bits.Add64(t[4], y[0], 0)
	t[5], c = bits.Add64(t[5], y[1], c)
	t[6], c = bits.Add64(t[6], y[2], c)
	t[7], c = bits.Add64(t[7], y[3], c)
	return t, c
}

// Add512 adds two Uint512 values, returning the carry out of word 7.
func Add512(a, b Uint512) (Uint512, uint64) {
	var z Uint512
	var c uint64
	for i := 0; i < 8; i++ {
		z[i], c = bits.Add64(a[i], b[i], c)
	}
	return z, c
}
