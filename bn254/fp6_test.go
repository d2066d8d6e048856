package bn254

import "testing"

func mustFp2(c0, c1 uint64) Fp2 { return Fp2{mustFp(c0), mustFp(c1)} }

func TestFp6InverseAndCommutativity(t *testing.T) {
	a := Fp6{mustFp2(1, 2), mustFp2(3, 4), mustFp2(5, 6)}
	b := Fp6{mustFp2(7, 1), mustFp2(2, 9), mustFp2(4, 3)}

	if !a.Mul(b).Equal(b.Mul(a)) {
		t.Error("fp6 multiplication not commutative")
	}

	inv := a.Inv()
	if !a.Mul(inv).Equal(fp6One) {
		t.Error("a * inv(a) != 1 in Fq6")
	}
}

func TestFp6SquareMatchesMul(t *testing.T) {
	a := Fp6{mustFp2(11, 22), mustFp2(33, 44), mustFp2(55, 66)}
	if !a.Square().Equal(a.Mul(a)) {
		t.Error("Square() disagrees with Mul(a,a)")
	}
}

func TestFp6MulByVMatchesExplicitMul(t *testing.T) {
	a := Fp6{mustFp2(1, 0), mustFp2(0, 0), mustFp2(0, 0)}
	v := Fp6{c1: fp2One}
	if !a.MulByV().Equal(a.Mul(v)) {
		t.Error("MulByV disagrees with multiplying by v")
	}
}

func TestFp6DistributesOverAdd(t *testing.T) {
	a := Fp6{mustFp2(2, 1), mustFp2(3, 1), mustFp2(5, 1)}
	b := Fp6{mustFp2(7, 2), mustFp2(11, 2), mustFp2(13, 2)}
	c := Fp6{mustFp2(17, 3), mustFp2(19, 3), mustFp2(23, 3)}

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Error("a*(b+c) != a*b + a*c in Fq6")
	}
}
