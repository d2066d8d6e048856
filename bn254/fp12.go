package bn254

// Fq12 = Fq6[w]/(w^2 - v). An element c0 + c1*w is held as the pair
// (c0, c1), each an Fq6 element. This is the pairing's target group.
type Fp12 struct {
	c0, c1 Fp6
}

var fp12One = Fp12{c0: fp6One}

func (a Fp12) IsOne() bool {
	return a.c0.Equal(fp6One) && a.c1.IsZero()
}

func (a Fp12) Equal(b Fp12) bool {
	return a.c0.Equal(b.c0) && a.c1.Equal(b.c1)
}

// Mul: (a0+a1*w)(b0+b1*w) = (a0*b0 + a1*b1*v) + (a0*b1+a1*b0)*w, since
// w^2 = v and multiplying an Fq6 value by v rotates its coefficients
// (MulByV) rather than doing a full Fq6 multiplication by a constant.
func (a Fp12) Mul(b Fp12) Fp12 {
	t1 := a.c0.Mul(b.c0)
	t2 := a.c1.Mul(b.c1)
	c0 := t1.Add(t2.MulByV())
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(t1).Sub(t2)
	return Fp12{c0, c1}
}

func (a Fp12) Square() Fp12 {
	ab := a.c0.Mul(a.c1)
	t := a.c0.Add(a.c1)
	u := a.c0.Add(a.c1.MulByV())
	c0 := t.Mul(u).Sub(ab).Sub(ab.MulByV())
	c1 := ab.Add(ab)
	return Fp12{c0, c1}
}

// Inv: (a+b*w)^-1 = (a-b*w)/(a^2 - v*b^2).
func (a Fp12) Inv() Fp12 {
	t := a.c0.Square().Sub(a.c1.Square().MulByV())
	tInv := t.Inv()
	return Fp12{a.c0.Mul(tInv), a.c1.Neg().Mul(tInv)}
}

// Conjugate returns c0 - c1*w, the Fq6-degree-2 conjugate. For an element
// that has already passed through the easy part of final exponentiation
// (norm 1 over Fq6), this equals the inverse.
func (a Fp12) Conjugate() Fp12 {
	return Fp12{a.c0, a.c1.Neg()}
}

// Pow raises a to the power k via MSB-first square-and-multiply.
func (a Fp12) Pow(k Uint256) Fp12 {
	r := fp12One
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Square()
		if k.Bit(i) == 1 {
			r = r.Mul(a)
		}
	}
	return r
}

// frobenius1 computes f^p using the tower-structure shortcut: conjugate
// each Fq2 coefficient (since conjugation is the Frobenius on Fq2) and
// scale by the precomputed gamma constants for the w-power each
// coefficient carries.
func (a Fp12) frobenius1() Fp12 {
	return Fp12{
		c0: Fp6{
			c0: a.c0.c0.Conjugate(),
			c1: a.c0.c1.Conjugate().Mul(newFp2(Fp{frobC1_2C0}, Fp{frobC1_2C1})),
			c2: a.c0.c2.Conjugate().Mul(newFp2(Fp{frobC1_4C0}, Fp{frobC1_4C1})),
		},
		c1: Fp6{
			c0: a.c1.c0.Conjugate().Mul(newFp2(Fp{frobC1_1C0}, Fp{frobC1_1C1})),
			c1: a.c1.c1.Conjugate().Mul(newFp2(Fp{frobC1_3C0}, Fp{frobC1_3C1})),
			c2: a.c1.c2.Conjugate().Mul(newFp2(Fp{frobC1_5C0}, Fp{frobC1_5C1})),
		},
	}
}

// frobenius2 computes f^(p^2). Conjugation squared is identity on Fq2, so
// only scaling by the p^2 gamma constants remains.
func (a Fp12) frobenius2() Fp12 {
	return Fp12{
		c0: Fp6{
			c0: a.c0.c0,
			c1: a.c0.c1.Mul(newFp2(Fp{frobC2_2C0}, Fp{frobC2_2C1})),
			c2: a.c0.c2.Mul(newFp2(Fp{frobC2_4C0}, Fp{frobC2_4C1})),
		},
		c1: Fp6{
			c0: a.c1.c0.Mul(newFp2(Fp{frobC2_1C0}, Fp{frobC2_1C1})),
			c1: a.c1.c1.Mul(newFp2(Fp{frobC2_3C0}, Fp{frobC2_3C1})),
			c2: a.c1.c2.Mul(newFp2(Fp{frobC2_5C0}, Fp{frobC2_5C1})),
		},
	}
}

// frobenius3 computes f^(p^3).
func (a Fp12) frobenius3() Fp12 {
	return Fp12{
		c0: Fp6{
			c0: a.c0.c0.Conjugate(),
			c1: a.c0.c1.Conjugate().Mul(newFp2(Fp{frobC3_2C0}, Fp{frobC3_2C1})),
			c2: a.c0.c2.Conjugate().Mul(newFp2(Fp{frobC3_4C0}, Fp{frobC3_4C1})),
		},
		c1: Fp6{
			c0: a.c1.c0.Conjugate().Mul(newFp2(Fp{frobC3_1C0}, Fp{frobC3_1C1})),
			c1: a.c1.c1.Conjugate().Mul(newFp2(Fp{frobC3_3C0}, Fp{frobC3_3C1})),
			c2: a.c1.c2.Conjugate().Mul(newFp2(Fp{frobC3_5C0}, Fp{frobC3_5C1})),
		},
	}
}

// finalExp (pairing.go) raises f to (p^12-1)/r, landing the Miller loop
// output in the order-r subgroup of Fq12*. See pairing.go for the easy-part
// / hard-part split; this file supplies only the raw field operations
// (Mul, Square, Inv, Conjugate, the Frobenius powers) that split consumes.
