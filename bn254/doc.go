// Package bn254 implements the alt_bn128 (BN254) pairing-friendly elliptic
// curve: the base field Fq, its tower extensions Fq2/Fq6/Fq12, the groups G1
// (over Fq) and G2 (over Fq2, via the sextic twist), and the optimal ate
// pairing e: G1 x G2 -> Fq12.
//
// Field elements are held in Montgomery form throughout; conversion to and
// from the ordinary residue happens only at Encode/Decode, which sit at the
// package boundary. The package has no I/O, no goroutines, and no shared
// mutable state: every operation is a pure function of its arguments.
package bn254
