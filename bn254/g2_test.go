package bn254

import "testing"

func TestG2BasicGroupLaws(t *testing.T) {
	g := G2Generator()
	o := G2Infinity()

	if !g.IsOnCurve() {
		t.Fatal("G2 generator not on twist curve")
	}
	if !g.Add(o).Equal(g) {
		t.Error("P + O != P in G2")
	}
	if !g.Add(g.Neg()).Equal(o) {
		t.Error("P + (-P) != O in G2")
	}
	if !g.ScalarMul(Uint256{}).Equal(o) {
		t.Error("0*P != O in G2")
	}
	if !g.ScalarMul(Uint256{1, 0, 0, 0}).Equal(g) {
		t.Error("1*P != P in G2")
	}
}

// TestG2IsOnCurveWithNonUnitZ mirrors TestG1IsOnCurveWithNonUnitZ: guards
// against regressing to Y^2*Z = X^3 + b'*Z^3 instead of Y^2 = X^3 + b'*Z^6.
func TestG2IsOnCurveWithNonUnitZ(t *testing.T) {
	d := G2Generator().Double()
	if d.z.Equal(fp2One) {
		t.Fatal("test point unexpectedly has Z=1, doesn't exercise the homogenization")
	}
	if !d.IsOnCurve() {
		t.Error("doubled G2 generator (Z != 1) reported off-curve")
	}
}

func TestG2ScalarMulByOrderIsInfinity(t *testing.T) {
	g := G2Generator()
	if !g.ScalarMul(subgroupOrder).IsInfinity() {
		t.Error("r*P != O in G2")
	}
}

func TestG2GeneratorInSubgroup(t *testing.T) {
	if !G2Generator().IsInSubgroup() {
		t.Error("G2 generator failed subgroup check")
	}
}

func TestG2DoubleMatchesAdd(t *testing.T) {
	g := G2Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Error("G2 Double() disagrees with Add(P,P)")
	}
}

func TestG2AddCommutative(t *testing.T) {
	p := G2Generator().Double()
	q := G2Generator().Double().Add(G2Generator())
	if !p.Add(q).Equal(q.Add(p)) {
		t.Error("G2 addition not commutative")
	}
}

func TestG2ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := G2Generator()
	k := Uint256{7, 0, 0, 0}

	sum := G2Infinity()
	for i := uint64(0); i < 7; i++ {
		sum = sum.Add(g)
	}

	if !g.ScalarMul(k).Equal(sum) {
		t.Error("G2 ScalarMul(7) != seven repeated Adds")
	}
}

func TestG2ScalarMulDistributesOverAddition(t *testing.T) {
	g := G2Generator()
	a := Uint256{4, 0, 0, 0}
	b := Uint256{13, 0, 0, 0}
	ab, _ := a.Add(b)

	lhs := g.ScalarMul(ab)
	rhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	if !lhs.Equal(rhs) {
		t.Error("(a+b)*P != a*P + b*P in G2")
	}
}

func TestG2OffCurvePointFailsSubgroupCheck(t *testing.T) {
	bad := G2Point{x: fp2One, y: fp2One, z: fp2One}
	if bad.IsInSubgroup() {
		t.Error("expected off-curve point to fail subgroup check")
	}
}
