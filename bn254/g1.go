package bn254

// G1Point is a point on E: y^2 = x^3 + b over Fq, held in Jacobian
// coordinates (X, Y, Z) representing the affine point (X/Z^2, Y/Z^3). The
// point at infinity is any triple with Z = 0; ToAffine/IsOnCurve normalize
// around that convention rather than special-casing a sentinel value.
type G1Point struct {
	x, y, z Fp
}

// G1Generator is the canonical BN254 G1 base point (1, 2).
func G1Generator() G1Point {
	return G1Point{x: fpOne, y: Fp{montTwo}, z: fpOne}
}

// G1Infinity is the identity element of G1.
func G1Infinity() G1Point {
	return G1Point{x: fpOne, y: fpOne, z: fpZero}
}

func (p G1Point) IsInfinity() bool {
	return p.z.IsZero()
}

// G1FromAffine builds a Jacobian point from affine coordinates (z=1).
// Does not check that (x, y) lies on the curve; callers needing that
// guarantee should call IsOnCurve separately.
func G1FromAffine(x, y Fp) G1Point {
	return G1Point{x: x, y: y, z: fpOne}
}

// ToAffine returns the affine (x, y) coordinates. Panics if called on the
// point at infinity; callers must check IsInfinity first.
func (p G1Point) ToAffine() (Fp, Fp) {
	if p.IsInfinity() {
		panic("bn254: ToAffine on point at infinity")
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// IsOnCurve reports whether p satisfies Y^2 = X^3 + b*Z^6, the Jacobian
// homogenization of y^2=x^3+b under (x,y) = (X/Z^2, Y/Z^3).
func (p G1Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	y2 := p.y.Square()
	z2 := p.z.Square()
	z6 := z2.Square().Mul(z2)
	x3 := p.x.Square().Mul(p.x)
	rhs := x3.Add(Fp{curveB}.Mul(z6))
	return y2.Equal(rhs)
}

// Neg returns -p, i.e. (x, -y, z).
func (p G1Point) Neg() G1Point {
	if p.IsInfinity() {
		return p
	}
	return G1Point{p.x, p.y.Neg(), p.z}
}

func (p G1Point) Equal(q G1Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	// Cross-multiply to avoid inversion: (X1*Z2^2, Y1*Z2^3) == (X2*Z1^2, Y2*Z1^3).
	z1z1 := p.z.Square()
	z2z2 := q.z.Square()
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(z2z2).Mul(q.z)
	s2 := q.y.Mul(z1z1).Mul(p.z)
	return u1.Equal(u2) && s1.Equal(s2)
}

// Double computes 2*p using the standard Jacobian doubling formulas
// specialized to a=0 (the BN curve has no quadratic term):
//
//	A = X^2, B = Y^2, C = B^2
//	D = 2*((X+B)^2 - A - C)
//	E = 3*A, F = E^2
//	X' = F - 2*D
//	Y' = E*(D-X') - 8*C
//	Z' = 2*Y*Z
func (p G1Point) Double() G1Point {
	if p.IsInfinity() || p.y.IsZero() {
		return G1Infinity()
	}
	a := p.x.Square()
	b := p.y.Square()
	c := b.Square()
	xb := p.x.Add(b)
	d := xb.Square().Sub(a).Sub(c)
	d = d.Add(d)
	e := a.Add(a).Add(a)
	f := e.Square()
	x3 := f.Sub(d).Sub(d)
	c8 := c.Add(c)
	c8 = c8.Add(c8)
	c8 = c8.Add(c8)
	y3 := e.Mul(d.Sub(x3)).Sub(c8)
	z3 := p.y.Mul(p.z)
	z3 = z3.Add(z3)
	return G1Point{x3, y3, z3}
}

// Add computes p+q using the standard Jacobian mixed/general addition
// formula, falling back to Double when the two points coincide.
func (p G1Point) Add(q G1Point) G1Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	z1z1 := p.z.Square()
	z2z2 := q.z.Square()
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(z2z2).Mul(q.z)
	s2 := q.y.Mul(z1z1).Mul(p.z)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return G1Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v).Sub(v)
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.z.Add(q.z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	return G1Point{x3, y3, z3}
}

// ScalarMul computes k*p via MSB-first double-and-add.
func (p G1Point) ScalarMul(k Uint256) G1Point {
	r := G1Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}
