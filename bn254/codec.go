package bn254

// Wire encodings for the EIP-196/197 precompile inputs and outputs: fixed
// 32-byte big-endian field elements, 64-byte G1 points, and 128-byte G2
// points with the imaginary coefficient first (matching the EIP-197
// ordering: x_im, x_re, y_im, y_re).

// DecodeFp parses a 32-byte big-endian field coordinate. Returns
// ErrCoordinateOutOfRange if the value is >= the field modulus.
func DecodeFp(b []byte) (Fp, error) {
	var u Uint256
	u.SetBytes(b)
	if u.Cmp(fieldModulus) >= 0 {
		return Fp{}, ErrCoordinateOutOfRange
	}
	return Encode(u), nil
}

// EncodeFp serializes a field element as 32 bytes big-endian.
func EncodeFp(a Fp) []byte {
	b := a.Decode().Bytes()
	return b[:]
}

// DecodeG1 parses a 64-byte (x, y) affine G1 point. The all-zero encoding
// decodes to the point at infinity, matching the EIP-196 convention.
func DecodeG1(b []byte) (G1Point, error) {
	if len(b) != 64 {
		return G1Point{}, ErrCoordinateOutOfRange
	}
	x, err := DecodeFp(b[0:32])
	if err != nil {
		return G1Point{}, err
	}
	y, err := DecodeFp(b[32:64])
	if err != nil {
		return G1Point{}, err
	}
	if x.IsZero() && y.IsZero() {
		return G1Infinity(), nil
	}
	p := G1FromAffine(x, y)
	if !p.IsOnCurve() {
		return G1Point{}, ErrPointNotOnCurve
	}
	return p, nil
}

// EncodeG1 serializes a G1 point as 64 bytes (x, y) big-endian, or 64
// zero bytes for the point at infinity.
func EncodeG1(p G1Point) []byte {
	out := make([]byte, 64)
	if p.IsInfinity() {
		return out
	}
	x, y := p.ToAffine()
	copy(out[0:32], EncodeFp(x))
	copy(out[32:64], EncodeFp(y))
	return out
}

// DecodeG2 parses a 128-byte G2 point, coordinate order
// (x_im, x_re, y_im, y_re). The all-zero encoding decodes to infinity.
// Does not check subgroup membership; callers that need that guarantee
// (the pairing precompile does) must call IsInSubgroup separately.
func DecodeG2(b []byte) (G2Point, error) {
	if len(b) != 128 {
		return G2Point{}, ErrCoordinateOutOfRange
	}
	xIm, err := DecodeFp(b[0:32])
	if err != nil {
		return G2Point{}, err
	}
	xRe, err := DecodeFp(b[32:64])
	if err != nil {
		return G2Point{}, err
	}
	yIm, err := DecodeFp(b[64:96])
	if err != nil {
		return G2Point{}, err
	}
	yRe, err := DecodeFp(b[96:128])
	if err != nil {
		return G2Point{}, err
	}
	x := newFp2(xRe, xIm)
	y := newFp2(yRe, yIm)
	if x.IsZero() && y.IsZero() {
		return G2Infinity(), nil
	}
	p := G2FromAffine(x, y)
	if !p.IsOnCurve() {
		return G2Point{}, ErrPointNotOnCurve
	}
	return p, nil
}

// EncodeG2 serializes a G2 point as 128 bytes, coordinate order
// (x_im, x_re, y_im, y_re).
func EncodeG2(p G2Point) []byte {
	out := make([]byte, 128)
	if p.IsInfinity() {
		return out
	}
	x, y := p.ToAffine()
	copy(out[0:32], EncodeFp(x.c1))
	copy(out[32:64], EncodeFp(x.c0))
	copy(out[64:96], EncodeFp(y.c1))
	copy(out[96:128], EncodeFp(y.c0))
	return out
}
