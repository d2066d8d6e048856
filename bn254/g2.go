package bn254

// G2Point is a point on the sextic twist E': y^2 = x^3 + b' over Fq2, held
// in Jacobian coordinates. Pairing inputs use G2 coordinates on the twist
// directly; the untwisting isomorphism is folded into the Miller loop's
// line-function evaluation rather than applied to the point itself.
type G2Point struct {
	x, y, z Fp2
}

func g2TwistB() Fp2 {
	return Fp2{Fp{g2TwistBC0}, Fp{g2TwistBC1}}
}

// G2Generator is the canonical BN254 G2 twist generator.
func G2Generator() G2Point {
	return G2Point{
		x: Fp2{Fp{g2GenXC0}, Fp{g2GenXC1}},
		y: Fp2{Fp{g2GenYC0}, Fp{g2GenYC1}},
		z: fp2One,
	}
}

func G2Infinity() G2Point {
	return G2Point{x: fp2One, y: fp2One, z: fp2Zero}
}

func (p G2Point) IsInfinity() bool {
	return p.z.IsZero()
}

func G2FromAffine(x, y Fp2) G2Point {
	return G2Point{x: x, y: y, z: fp2One}
}

func (p G2Point) ToAffine() (Fp2, Fp2) {
	if p.IsInfinity() {
		panic("bn254: ToAffine on point at infinity")
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Mul(zInv)
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// IsOnCurve checks the homogenized twist equation Y^2 = X^3 + b'*Z^6, the
// Jacobian form of y^2=x^3+b' under (x,y) = (X/Z^2, Y/Z^3).
func (p G2Point) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	y2 := p.y.Mul(p.y)
	z2 := p.z.Mul(p.z)
	z6 := z2.Mul(z2).Mul(z2)
	x3 := p.x.Mul(p.x).Mul(p.x)
	rhs := x3.Add(g2TwistB().Mul(z6))
	return y2.Equal(rhs)
}

func (p G2Point) Neg() G2Point {
	if p.IsInfinity() {
		return p
	}
	return G2Point{p.x, p.y.Neg(), p.z}
}

func (p G2Point) Equal(q G2Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	z1z1 := p.z.Mul(p.z)
	z2z2 := q.z.Mul(q.z)
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(z2z2).Mul(q.z)
	s2 := q.y.Mul(z1z1).Mul(p.z)
	return u1.Equal(u2) && s1.Equal(s2)
}

// Double lifts the G1 Jacobian doubling formula (a=0 specialization) to
// Fq2, following the same template as G1Point.Double.
func (p G2Point) Double() G2Point {
	if p.IsInfinity() || p.y.IsZero() {
		return G2Infinity()
	}
	a := p.x.Mul(p.x)
	b := p.y.Mul(p.y)
	c := b.Mul(b)
	xb := p.x.Add(b)
	d := xb.Mul(xb).Sub(a).Sub(c)
	d = d.Add(d)
	e := a.Add(a).Add(a)
	f := e.Mul(e)
	x3 := f.Sub(d).Sub(d)
	c8 := c.Add(c)
	c8 = c8.Add(c8)
	c8 = c8.Add(c8)
	y3 := e.Mul(d.Sub(x3)).Sub(c8)
	z3 := p.y.Mul(p.z)
	z3 = z3.Add(z3)
	return G2Point{x3, y3, z3}
}

// Add lifts the G1 Jacobian general addition formula to Fq2. The original
// reference implementation left this (and ScalarMul) unwritten; this
// completes them following the G1 template raised one field-extension
// level, exactly as the G1/G2 group laws are related throughout this
// package.
func (p G2Point) Add(q G2Point) G2Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	z1z1 := p.z.Mul(p.z)
	z2z2 := q.z.Mul(q.z)
	u1 := p.x.Mul(z2z2)
	u2 := q.x.Mul(z1z1)
	s1 := p.y.Mul(z2z2).Mul(q.z)
	s2 := q.y.Mul(z1z1).Mul(p.z)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return G2Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Mul(h.Add(h))
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Mul(r).Sub(j).Sub(v).Sub(v)
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.z.Add(q.z).Mul(p.z.Add(q.z)).Sub(z1z1).Sub(z2z2).Mul(h)

	return G2Point{x3, y3, z3}
}

// ScalarMul computes k*p via MSB-first double-and-add, the same template
// as G1Point.ScalarMul.
func (p G2Point) ScalarMul(k Uint256) G2Point {
	r := G2Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if k.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// IsInSubgroup reports whether p has order r (the cofactor on G2 is not
// 1, so being on the twist curve does not by itself imply membership in
// the pairing-relevant order-r subgroup). The original reference
// implementation left this check as a stub; it is completed here by the
// direct scalar-multiplication test r*p == infinity.
func (p G2Point) IsInSubgroup() bool {
	if !p.IsOnCurve() {
		return false
	}
	return p.ScalarMul(subgroupOrder).IsInfinity()
}
