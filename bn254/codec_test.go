package bn254

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestFpCodecRoundTrip(t *testing.T) {
	want := Encode(Uint256{123456789, 0, 0, 0})
	got, err := DecodeFp(EncodeFp(want))
	if err != nil {
		t.Fatalf("DecodeFp: %v", err)
	}
	if !got.Equal(want) {
		t.Error("DecodeFp(EncodeFp(x)) != x")
	}
}

func TestFpCodecRejectsOutOfRange(t *testing.T) {
	b := fieldModulus.Bytes() // exactly p, which is >= modulus
	if _, err := DecodeFp(b[:]); err != ErrCoordinateOutOfRange {
		t.Errorf("expected ErrCoordinateOutOfRange, got %v", err)
	}
}

func TestG1CodecRoundTrip(t *testing.T) {
	p := G1Generator().Double()
	enc := EncodeG1(p)
	if len(enc) != 64 {
		t.Fatalf("expected 64-byte encoding, got %d", len(enc))
	}
	got, err := DecodeG1(enc)
	if err != nil {
		t.Fatalf("DecodeG1: %v", err)
	}
	if !got.Equal(p) {
		t.Error("DecodeG1(EncodeG1(P)) != P")
	}
}

func TestG1CodecInfinityIsAllZero(t *testing.T) {
	enc := EncodeG1(G1Infinity())
	for i, bt := range enc {
		if bt != 0 {
			t.Fatalf("expected all-zero infinity encoding, byte %d = %#x", i, bt)
		}
	}
	got, err := DecodeG1(enc)
	if err != nil {
		t.Fatalf("DecodeG1: %v", err)
	}
	if !got.IsInfinity() {
		t.Error("expected decoded all-zero input to be infinity")
	}
}

func TestG1CodecRejectsOffCurvePoint(t *testing.T) {
	b := make([]byte, 64)
	b[31] = 1 // x=1
	b[63] = 1 // y=1, which is not on y^2=x^3+3
	if _, err := DecodeG1(b); err != ErrPointNotOnCurve {
		t.Errorf("expected ErrPointNotOnCurve, got %v", err)
	}
}

// TestFpCodecMatchesIndependentUint256 cross-checks EncodeFp's big-endian
// byte layout against github.com/holiman/uint256, an independently
// implemented fixed-width integer type, to catch endianness or padding
// bugs a self-referential round-trip test would miss.
func TestFpCodecMatchesIndependentUint256(t *testing.T) {
	vals := []uint64{0, 1, 42, 0xdeadbeef}
	for _, v := range vals {
		fp := Encode(Uint256{v, 0, 0, 0})
		got := EncodeFp(fp)

		want := uint256.NewInt(v).Bytes32()
		if len(got) != 32 {
			t.Fatalf("EncodeFp produced %d bytes, want 32", len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("byte %d mismatch for value %d: got %#x want %#x", i, v, got[i], want[i])
			}
		}
	}
}

func TestG1CodecRejectsWrongLength(t *testing.T) {
	if _, err := DecodeG1(make([]byte, 63)); err == nil {
		t.Error("expected error for short input")
	}
}

func TestG2CodecRoundTrip(t *testing.T) {
	p := G2Generator().Double()
	enc := EncodeG2(p)
	if len(enc) != 128 {
		t.Fatalf("expected 128-byte encoding, got %d", len(enc))
	}
	got, err := DecodeG2(enc)
	if err != nil {
		t.Fatalf("DecodeG2: %v", err)
	}
	if !got.Equal(p) {
		t.Error("DecodeG2(EncodeG2(P)) != P")
	}
}

func TestG2CodecInfinityIsAllZero(t *testing.T) {
	enc := EncodeG2(G2Infinity())
	got, err := DecodeG2(enc)
	if err != nil {
		t.Fatalf("DecodeG2: %v", err)
	}
	if !got.IsInfinity() {
		t.Error("expected decoded all-zero input to be infinity")
	}
}

func TestG2CodecRejectsWrongLength(t *testing.T) {
	if _, err := DecodeG2(make([]byte, 127)); err == nil {
		t.Error("expected error for short input")
	}
}
