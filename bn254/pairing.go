package bn254

// Optimal ate pairing e: G1 x G2 -> Gt over the BN254 tower
// Fq12 = Fq6[w]/(w^2-v), Fq6 = Fq2[v]/(v^3-xi), Fq2 = Fq[i]/(i^2+1), xi=9+i.
//
// G1 points are affine (px, py) over Fq; G2 points are carried through the
// Miller loop in Jacobian coordinates over Fq2 with an extra cached t = z^2,
// following the projective line-function formulas from "Faster Computation
// of the Tate Pairing" (the same structure the cloudflare/bn256 library
// this package's ambient stack descends from uses).

// sixuPlus2NAF is 6u+2 in non-adjacent form, LSB first.
var sixuPlus2NAF = []int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 1,
	1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, 1, 1,
}

// twistJac is a G2 point in Jacobian coordinates over Fq2, with the z^2
// value cached alongside z since the line-function formulas use it
// repeatedly.
type twistJac struct {
	x, y, z, t Fp2
}

func newTwistJac(x, y, z Fp2) twistJac {
	return twistJac{x: x, y: y, z: z, t: z.Mul(z)}
}

// Pair computes the optimal ate pairing e(p, q). Returns the Fq12
// identity if either input is the point at infinity (the standard
// pairing convention e(O, Q) = e(P, O) = 1).
func Pair(p G1Point, q G2Point) Fp12 {
	if p.IsInfinity() || q.IsInfinity() {
		return fp12One
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()
	f := millerLoop(px, py, qx, qy)
	return finalExp(f)
}

// MultiPairingCheck reports whether prod_i e(g1[i], g2[i]) == 1 in Gt,
// the form the EIP-197 pairing precompile needs. Returns false (rather
// than returning an error) if the slices have mismatched lengths; callers
// that need to distinguish that case from a genuine pairing-check failure
// should call MultiPairing directly.
func MultiPairingCheck(g1 []G1Point, g2 []G2Point) bool {
	ok, _ := MultiPairing(g1, g2)
	return ok
}

// MultiPairing reports whether prod_i e(g1[i], g2[i]) == 1 in Gt, returning
// ErrMismatchedPairCount if the slices have unequal length.
func MultiPairing(g1 []G1Point, g2 []G2Point) (bool, error) {
	if len(g1) != len(g2) {
		return false, ErrMismatchedPairCount
	}
	f := fp12One
	for i := range g1 {
		if g1[i].IsInfinity() || g2[i].IsInfinity() {
			continue
		}
		px, py := g1[i].ToAffine()
		qx, qy := g2[i].ToAffine()
		f = f.Mul(millerLoop(px, py, qx, qy))
	}
	return finalExp(f).IsOne(), nil
}

// lineFunctionDouble computes the tangent line at r, advances r to 2r, and
// returns the line-evaluation coefficients for the sparse Fq12
// multiplication mulLine performs. Specialized to a=0 curves.
func lineFunctionDouble(r twistJac, px, py Fp) (a, b, c Fp2, rOut twistJac) {
	A := r.x.Square()
	B := r.y.Square()
	C := B.Square()

	D := r.x.Add(B)
	D = D.Square()
	D = D.Sub(A).Sub(C)
	D = D.Add(D)

	E := A.Add(A).Add(A)
	G := E.Square()

	rOut.x = G.Sub(D).Sub(D)

	rOut.z = r.y.Add(r.z)
	rOut.z = rOut.z.Square().Sub(B).Sub(r.t)

	rOut.y = D.Sub(rOut.x).Mul(E)
	t := C.Add(C)
	t = t.Add(t)
	t = t.Add(t)
	rOut.y = rOut.y.Sub(t)

	rOut.t = rOut.z.Square()

	t = E.Mul(r.t)
	t = t.Add(t)
	b = t.Neg().MulByFp(px)

	a = r.x.Add(E).Square().Sub(A).Sub(G)
	t = B.Add(B)
	t = t.Add(t)
	a = a.Sub(t)

	c = rOut.z.Mul(r.t)
	c = c.Add(c).MulByFp(py)

	return
}

// lineFunctionAdd computes the line through r and the affine twist point
// (px, py), advances r to r+(px,py), and returns the line coefficients.
// r2 caches py^2 so repeated calls against the same fixed point avoid
// recomputing it.
func lineFunctionAdd(r twistJac, px, py Fp2, qx, qy Fp, r2 Fp2) (a, b, c Fp2, rOut twistJac) {
	B := px.Mul(r.t)

	D := py.Add(r.z)
	D = D.Square().Sub(r2).Sub(r.t)
	D = D.Mul(r.t)

	H := B.Sub(r.x)
	I := H.Square()

	E := I.Add(I)
	E = E.Add(E)

	J := H.Mul(E)

	L1 := D.Sub(r.y).Sub(r.y)

	V := r.x.Mul(E)

	rOut.x = L1.Square().Sub(J).Sub(V.Add(V))

	rOut.z = r.z.Add(H)
	rOut.z = rOut.z.Square().Sub(r.t).Sub(I)

	t := V.Sub(rOut.x).Mul(L1)
	t2 := r.y.Mul(J)
	t2 = t2.Add(t2)
	rOut.y = t.Sub(t2)

	rOut.t = rOut.z.Square()

	t = py.Add(rOut.z)
	t = t.Square().Sub(r2).Sub(rOut.t)

	t2 = L1.Mul(px)
	t2 = t2.Add(t2)
	a = t2.Sub(t)

	c = rOut.z.MulByFp(qy)
	c = c.Add(c)

	b = L1.Neg().MulByFp(qx)
	b = b.Add(b)

	return
}

// mulLine multiplies ret by the sparse line element c + (b + a*v)*w,
// i.e. the Fq12 element whose c0 (Fq6) slot is (c,0,0) and whose c1 slot
// is (b,a,0). Exploiting that sparsity turns a full Fq12 multiplication
// into two Fq6 multiplications plus one Karatsuba cross term.
func mulLine(ret Fp12, a, b, c Fp2) Fp12 {
	lineC1 := Fp6{c0: b, c1: a, c2: fp2Zero}

	t0 := lineC1.Mul(ret.c1) // (b,a,0) * ret.c1
	t3 := ret.c0.MulByFp2(c) // ret.c0 * (c,0,0)
	lineSum := Fp6{c0: b.Add(c), c1: a, c2: fp2Zero} // (c,0,0) + (b,a,0) = (b+c,a,0)

	retSum := ret.c1.Add(ret.c0)
	newC1 := retSum.Mul(lineSum).Sub(t0).Sub(t3)
	newC0 := t0.MulByV().Add(t3)

	return Fp12{c0: newC0, c1: newC1}
}

// millerLoop runs the Miller loop over |6u+2| in NAF form against the
// affine points (px,py) in G1 and (qx,qy) in G2, followed by the two
// extra Frobenius-twist addition steps the optimal ate pairing needs to
// clear the remaining loop-count discrepancy.
func millerLoop(px, py Fp, qx, qy Fp2) Fp12 {
	ret := fp12One

	r := newTwistJac(qx, qy, fp2One)
	minusQy := qy.Neg()
	r2 := qy.Square()

	for i := len(sixuPlus2NAF) - 1; i > 0; i-- {
		a, b, c, newR := lineFunctionDouble(r, px, py)
		if i != len(sixuPlus2NAF)-1 {
			ret = ret.Square()
		}
		ret = mulLine(ret, a, b, c)
		r = newR

		switch sixuPlus2NAF[i-1] {
		case 1:
			a, b, c, newR = lineFunctionAdd(r, qx, qy, px, py, r2)
			ret = mulLine(ret, a, b, c)
			r = newR
		case -1:
			a, b, c, newR = lineFunctionAdd(r, qx, minusQy, px, py, r2)
			ret = mulLine(ret, a, b, c)
			r = newR
		}
	}

	q1x, q1y := twistFrobenius(qx, qy)
	r2 = q1y.Square()
	a, b, c, newR := lineFunctionAdd(r, q1x, q1y, px, py, r2)
	ret = mulLine(ret, a, b, c)
	r = newR

	// -Q2 = p^2-Frobenius of Q, negated: x scales by the p^2 gamma, y is
	// left as +qy (the p^2 Frobenius on y is the identity scaling by 1,
	// and the negation cancels the sign Q2's own y-Frobenius would add).
	minusQ2x := qx.MulByFp(Fp{frobC2_2C0})
	minusQ2y := qy

	r2 = minusQ2y.Square()
	a, b, c, _ = lineFunctionAdd(r, minusQ2x, minusQ2y, px, py, r2)
	ret = mulLine(ret, a, b, c)

	return ret
}

// twistFrobenius applies the degree-1 Frobenius to a G2 affine point via
// the twist isomorphism: conjugate each coordinate (the Fq2 Frobenius),
// then rescale by the appropriate gamma constant.
func twistFrobenius(qx, qy Fp2) (Fp2, Fp2) {
	x := qx.Conjugate().Mul(newFp2(Fp{frobC1_2C0}, Fp{frobC1_2C1}))
	y := qy.Conjugate().Mul(newFp2(Fp{frobC1_3C0}, Fp{frobC1_3C1}))
	return x, y
}

// finalExp raises f to (p^12-1)/r via the usual easy-part/hard-part split.
func finalExp(f Fp12) Fp12 {
	fInv := f.Inv()
	f1 := f.Conjugate().Mul(fInv)       // f^(p^6-1)
	f2 := f1.frobenius2().Mul(f1)       // f1^(p^2+1)
	return finalExpHard(f2)
}

// finalExpHard raises f (already in the order-(p^4-p^2+1) subgroup left
// by the easy part) to the remaining (p^4-p^2+1)/r via the
// Devegili-Scott-Dahab addition chain for the BN parameter u: three
// u-power exponentiations (fu, fu2, fu3) plus their Frobenius images are
// combined through a short chain of multiplications and squarings,
// avoiding any 254-bit exponentiation outside of the three u-power steps.
func finalExpHard(f Fp12) Fp12 {
	uExp := Uint256{bnU, 0, 0, 0}
	fu := f.Pow(uExp)
	fu2 := fu.Pow(uExp)
	fu3 := fu2.Pow(uExp)

	fp1 := f.frobenius1()
	fp2 := f.frobenius2()
	fp3 := f.frobenius3()

	fup := fu.frobenius1()
	fu2p := fu2.frobenius1()
	fu3p := fu3.frobenius1()
	fu2p2 := fu2.frobenius2()

	y0 := fp1.Mul(fp2).Mul(fp3)
	y1 := f.Conjugate()
	y2 := fu2p2
	y3 := fup.Conjugate()
	y4 := fu.Conjugate().Mul(fu2p.Conjugate())
	y5 := fu2.Conjugate()
	y6 := fu3.Mul(fu3p).Conjugate()

	t0 := y6.Square().Mul(y4).Mul(y5)
	t1 := y3.Mul(y5).Mul(t0)
	t0 = t0.Mul(y2)
	t1 = t1.Square().Mul(t0)
	t1 = t1.Square()
	t0 = t1.Mul(y1)
	t1 = t1.Mul(y0)
	t0 = t0.Square().Mul(t1)

	return t0
}
