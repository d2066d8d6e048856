package bn254

import "errors"

// Sentinel errors returned by the decoding and pairing entry points. Every
// other failure mode in this package (inverting zero, taking the affine
// form of the point at infinity) is a precondition violation on the
// caller's part and panics instead, since those inputs never arise from
// untrusted wire data once ErrCoordinateOutOfRange/ErrPointNotOnCurve have
// already been checked.
var (
	// ErrCoordinateOutOfRange is returned when a decoded field coordinate
	// is >= the field modulus, and by DecodeG1/DecodeG2 when the encoding
	// is not exactly 64/128 bytes long.
	ErrCoordinateOutOfRange = errors.New("bn254: coordinate out of range")

	// ErrPointNotOnCurve is returned when decoded affine coordinates do
	// not satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("bn254: point not on curve")

	// ErrPointNotInSubgroup is returned when a G2 point lies on the twist
	// but outside the order-r subgroup the pairing requires.
	ErrPointNotInSubgroup = errors.New("bn254: point not in subgroup")

	// ErrMismatchedPairCount is returned when a pairing check is given
	// unequal numbers of G1 and G2 points.
	ErrMismatchedPairCount = errors.New("bn254: mismatched G1/G2 pair count")
)
