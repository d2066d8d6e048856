package bn254

// Fq6 = Fq2[v]/(v^3 - xi), xi = 9 + i. An element c0 + c1*v + c2*v^2 is held
// as the triple (c0, c1, c2).
type Fp6 struct {
	c0, c1, c2 Fp2
}

var fp6Zero = Fp6{}
var fp6One = Fp6{c0: fp2One}

func (a Fp6) IsZero() bool { return a.c0.IsZero() && a.c1.IsZero() && a.c2.IsZero() }

func (a Fp6) Equal(b Fp6) bool {
	return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) && a.c2.Equal(b.c2)
}

func (a Fp6) Add(b Fp6) Fp6 {
	return Fp6{a.c0.Add(b.c0), a.c1.Add(b.c1), a.c2.Add(b.c2)}
}

func (a Fp6) Sub(b Fp6) Fp6 {
	return Fp6{a.c0.Sub(b.c0), a.c1.Sub(b.c1), a.c2.Sub(b.c2)}
}

func (a Fp6) Neg() Fp6 {
	return Fp6{a.c0.Neg(), a.c1.Neg(), a.c2.Neg()}
}

// MulByV multiplies by v: (c0+c1*v+c2*v^2)*v = c2*xi + c0*v + c1*v^2.
func (a Fp6) MulByV() Fp6 {
	return Fp6{a.c2.MulByNonResidue(), a.c0, a.c1}
}

// MulByFp2 scales a by an Fq2 scalar, componentwise. Equivalent to a full
// Fp6 multiplication by (k, 0, 0) but without the zeroed cross terms.
func (a Fp6) MulByFp2(k Fp2) Fp6 {
	return Fp6{a.c0.Mul(k), a.c1.Mul(k), a.c2.Mul(k)}
}

// Mul uses three-term Karatsuba over Fq2.
func (a Fp6) Mul(b Fp6) Fp6 {
	v0 := a.c0.Mul(b.c0)
	v1 := a.c1.Mul(b.c1)
	v2 := a.c2.Mul(b.c2)

	// c0 = v0 + xi*((c1+c2)(d1+d2) - v1 - v2)
	t0 := a.c1.Add(a.c2).Mul(b.c1.Add(b.c2)).Sub(v1).Sub(v2)
	r0 := v0.Add(t0.MulByNonResidue())

	// c1 = (c0+c1)(d0+d1) - v0 - v1 + xi*v2
	t1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(v0).Sub(v1)
	r1 := t1.Add(v2.MulByNonResidue())

	// c2 = (c0+c2)(d0+d2) - v0 - v2 + v1
	t2 := a.c0.Add(a.c2).Mul(b.c0.Add(b.c2)).Sub(v0).Sub(v2)
	r2 := t2.Add(v1)

	return Fp6{r0, r1, r2}
}

// Square uses the Chung-Hasan SQR2 formula.
func (a Fp6) Square() Fp6 {
	s0 := a.c0.Square()
	ab := a.c0.Mul(a.c1)
	s1 := ab.Add(ab)
	s2 := a.c0.Sub(a.c1).Add(a.c2).Square()
	bc := a.c1.Mul(a.c2)
	s3 := bc.Add(bc)
	s4 := a.c2.Square()

	r0 := s0.Add(s3.MulByNonResidue())
	r1 := s1.Add(s4.MulByNonResidue())
	r2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return Fp6{r0, r1, r2}
}

// Inv uses the standard closed form for a cubic extension:
//
//	t0=c0^2, t1=c1^2, t2=c2^2, t3=c0*c1, t4=c0*c2, t5=c1*c2
//	c = xi*t5
//	A = t0 - c, B = xi*t2 - t3, C = t1 - t4
//	F = xi*c1*C + c0*A + xi*c2*B
//	inverse = (A*F^-1, B*F^-1, C*F^-1)
func (a Fp6) Inv() Fp6 {
	t0 := a.c0.Square()
	t1 := a.c1.Square()
	t2 := a.c2.Square()
	t3 := a.c0.Mul(a.c1)
	t4 := a.c0.Mul(a.c2)
	t5 := a.c1.Mul(a.c2)

	c := t5.MulByNonResidue()
	A := t0.Sub(c)
	B := t2.MulByNonResidue().Sub(t3)
	C := t1.Sub(t4)

	F := a.c1.Mul(C).MulByNonResidue().Add(a.c0.Mul(A)).Add(a.c2.Mul(B).MulByNonResidue())
	fInv := F.Inv()

	return Fp6{A.Mul(fInv), B.Mul(fInv), C.Mul(fInv)}
}
