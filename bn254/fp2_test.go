package bn254

import "testing"

func mustFp(n uint64) Fp { return Encode(Uint256{n, 0, 0, 0}) }

func TestFp2InverseAndCommutativity(t *testing.T) {
	a := Fp2{mustFp(3), mustFp(5)}
	b := Fp2{mustFp(9), mustFp(2)}

	if !a.Mul(b).Equal(b.Mul(a)) {
		t.Error("fp2 multiplication not commutative")
	}

	inv := a.Inv()
	if !a.Mul(inv).Equal(fp2One) {
		t.Error("a * inv(a) != 1 in Fq2")
	}
}

func TestFp2SquareMatchesMul(t *testing.T) {
	a := Fp2{mustFp(17), mustFp(23)}
	if !a.Square().Equal(a.Mul(a)) {
		t.Error("Square() disagrees with Mul(a,a)")
	}
}

func TestFp2AddNeg(t *testing.T) {
	a := Fp2{mustFp(123), mustFp(456)}
	if !a.Add(a.Neg()).Equal(fp2Zero) {
		t.Error("a + (-a) != 0 in Fq2")
	}
}

func TestFp2MulByNonResidueMatchesExplicitMul(t *testing.T) {
	a := Fp2{mustFp(31), mustFp(41)}
	xi := Fp2{Fp{xiC0}, fpOne}
	if !a.MulByNonResidue().Equal(a.Mul(xi)) {
		t.Error("MulByNonResidue disagrees with multiplying by (9+i)")
	}
}
