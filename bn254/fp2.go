package bn254

// Fq2 = Fq[i]/(i^2 - beta), beta = -1. An element c0 + c1*i is held as the
// pair (c0, c1).
type Fp2 struct {
	c0, c1 Fp
}

var fp2Zero = Fp2{}
var fp2One = Fp2{c0: fpOne}

func newFp2(c0, c1 Fp) Fp2 { return Fp2{c0, c1} }

func (a Fp2) IsZero() bool { return a.c0.IsZero() && a.c1.IsZero() }

func (a Fp2) Equal(b Fp2) bool { return a.c0.Equal(b.c0) && a.c1.Equal(b.c1) }

func (a Fp2) Add(b Fp2) Fp2 {
	return Fp2{a.c0.Add(b.c0), a.c1.Add(b.c1)}
}

func (a Fp2) Sub(b Fp2) Fp2 {
	return Fp2{a.c0.Sub(b.c0), a.c1.Sub(b.c1)}
}

func (a Fp2) Neg() Fp2 {
	return Fp2{a.c0.Neg(), a.c1.Neg()}
}

// Conjugate returns c0 - c1*i.
func (a Fp2) Conjugate() Fp2 {
	return Fp2{a.c0, a.c1.Neg()}
}

// Mul computes Karatsuba multiplication with beta = -1:
//
//	aa = c0*d0, bb = c1*d1
//	r0 = aa - bb          (since beta = -1: r0 = aa + bb*beta)
//	r1 = (c0+c1)(d0+d1) - aa - bb
func (a Fp2) Mul(b Fp2) Fp2 {
	aa := a.c0.Mul(b.c0)
	bb := a.c1.Mul(b.c1)
	r0 := aa.Sub(bb)
	r1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(aa).Sub(bb)
	return Fp2{r0, r1}
}

// MulByFp scales a by an Fq element, componentwise.
func (a Fp2) MulByFp(k Fp) Fp2 {
	return Fp2{a.c0.Mul(k), a.c1.Mul(k)}
}

// MulByNonResidue multiplies by xi = 9 + i, the Fq6 sextic non-residue.
// (c0+c1*i)(9+i) = (9*c0 - c1) + (c0 + 9*c1)*i
func (a Fp2) MulByNonResidue() Fp2 {
	nine := Fp{xiC0}
	r0 := a.c0.Mul(nine).Sub(a.c1)
	r1 := a.c0.Add(a.c1.Mul(nine))
	return Fp2{r0, r1}
}

// Square computes: a = c0*c1; r0 = (c1*beta+c0)(c0+c1) - a - a*beta; r1 = a+a.
// With beta = -1: r0 = (c0-c1)(c0+c1) - a + a = (c0-c1)(c0+c1); simplifies to
// the difference-of-squares form, but we keep the general formula shape from
// the spec so the beta dependency stays explicit and swappable.
func (a Fp2) Square() Fp2 {
	mul := a.c0.Mul(a.c1)
	t := a.c1.Neg().Add(a.c0) // c1*beta + c0, beta=-1
	u := a.c0.Add(a.c1)
	r0 := t.Mul(u).Sub(mul).Add(mul) // - a*beta = - (mul * -1) = + mul
	r1 := mul.Add(mul)
	return Fp2{r0, r1}
}

// Inv returns a^-1. t = (c0^2 - c1^2*beta)^-1 = (c0^2 + c1^2)^-1 since
// beta = -1; result = (c0*t, -c1*t).
func (a Fp2) Inv() Fp2 {
	t := a.c0.Square().Add(a.c1.Square()).Inv()
	return Fp2{a.c0.Mul(t), a.c1.Neg().Mul(t)}
}
