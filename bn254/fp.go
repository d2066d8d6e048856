package bn254

// Fq arithmetic in Montgomery form. A value x is stored as xR mod p with
// R = 2**256; conversion to and from the ordinary residue happens only in
// Encode/Decode at the package boundary (see doc.go).

// Fp is an element of the base field, held in Montgomery representation.
type Fp struct {
	v Uint256
}

// fpZero is the additive identity.
var fpZero = Fp{}

// fpOne is the multiplicative identity in Montgomery form.
var fpOne = Fp{montOne}

// Encode converts an ordinary residue x (0 <= x < p assumed) into its
// Montgomery representation.
func Encode(x Uint256) Fp {
	return Fp{redc(MulWide(x, montR2))}
}

// Decode converts a Montgomery-form element back to the ordinary residue.
func (a Fp) Decode() Uint256 {
	var t Uint512
	t[0], t[1], t[2], t[3] = a.v[0], a.v[1], a.v[2], a.v[3]
	return redc(t)
}

// redc implements Montgomery reduction: given a 512-bit T, returns
// T * R^-1 mod p, fully reduced into [0, p).
func redc(t Uint512) Uint256 {
	tLo := t.Lo()
	m := MulWide(tLo, montPPrime).Lo()
	mp := MulWide(m, fieldModulus)

	sum, carry := Add512(t, mp)
	// By construction the low 256 bits of sum are zero; the reduced value
	// is the high 256 bits, with the addition's carry folded in as an
	// extra multiple of R.
	r := sum.Hi()
	if carry != 0 {
		r, _ = r.Sub(fieldModulus)
	}
	if r.Cmp(fieldModulus) >= 0 {
		r, _ = r.Sub(fieldModulus)
	}
	return r
}

// Add returns a+b mod p.
func (a Fp) Add(b Fp) Fp {
	s, carry := a.v.Add(b.v)
	if carry != 0 {
		s, _ = s.Sub(fieldModulus)
		return Fp{s}
	}
	if s.Cmp(fieldModulus) >= 0 {
		s, _ = s.Sub(fieldModulus)
	}
	return Fp{s}
}

// Sub returns a-b mod p.
func (a Fp) Sub(b Fp) Fp {
	d, borrow := a.v.Sub(b.v)
	if borrow != 0 {
		d, _ = d.Add(fieldModulus)
	}
	return Fp{d}
}

// Neg returns -a mod p.
func (a Fp) Neg() Fp {
	if a.v.IsZero() {
		return a
	}
	d, _ := fieldModulus.Sub(a.v)
	return Fp{d}
}

// Mul returns a*b mod p via Montgomery multiplication.
func (a Fp) Mul(b Fp) Fp {
	return Fp{redc(MulWide(a.v, b.v))}
}

// Square returns a*a mod p.
func (a Fp) Square() Fp {
	return a.Mul(a)
}

// IsZero reports whether a is the zero element.
func (a Fp) IsZero() bool {
	return a.v.IsZero()
}

// Equal reports whether a and b represent the same residue.
func (a Fp) Equal(b Fp) bool {
	return a.v.Cmp(b.v) == 0
}

// Inv returns a^-1 mod p. Inverting zero is a precondition violation (see
// package errors.go); callers must not invoke it on the zero element.
//
// a.v is the raw Montgomery representative xR mod p. Treating it as an
// ordinary integer and inverting gives (xR)^-1 = x^-1 R^-1 mod p; one REDC
// pass against R^3 then yields x^-1 R^-1 * R^3 * R^-1 = x^-1 R mod p, the
// Montgomery form of the inverse, without ever decoding a to plain x.
func (a Fp) Inv() Fp {
	if a.v.IsZero() {
		panic("bn254: inverse of zero field element")
	}
	rawInv := invMod(a.v, fieldModulus)
	return Fp{redc(MulWide(rawInv, montR3))}
}

// Pow returns a^k mod p via MSB-first square-and-multiply.
func (a Fp) Pow(k Uint256) Fp {
	r := fpOne
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = r.Square()
		if k.Bit(i) == 1 {
			r = r.Mul(a)
		}
	}
	return r
}

// invMod computes the modular inverse of x mod n via the extended
// Euclidean algorithm, returning a value in [0, n). Used only inside Fp.Inv;
// this is the package's one admitted variable-time operation, matching the
// non-constant-time posture spec'd for this library.
func invMod(x, n Uint256) Uint256 {
	// Binary extended Euclidean algorithm on Uint256, avoiding a dependency
	// on math/big for the hot arithmetic path.
	u, v := x, n
	a := Uint256{1, 0, 0, 0}
	b := Uint256{0, 0, 0, 0}
	for !u.IsZero() {
		for u[0]&1 == 0 {
			u = shr1(u)
			a = halveModN(a, n)
		}
		for v[0]&1 == 0 {
			v = shr1(v)
			b = halveModN(b, n)
		}
		if u.Cmp(v) >= 0 {
			u, _ = u.Sub(v)
			a = subModN(a, b, n)
		} else {
			v, _ = v.Sub(u)
			b = subModN(b, a, n)
		}
	}
	return b
}

func shr1(x Uint256) Uint256 {
	var z Uint256
	z[0] = (x[0] >> 1) | (x[1] << 63)
	z[1] = (x[1] >> 1) | (x[2] << 63)
	z[2] = (x[2] >> 1) | (x[3] << 63)
	z[3] = x[3] >> 1
	return z
}

// halveModN returns a/2 mod n, given a possibly-odd a (made even first by
// adding n when necessary).
func halveModN(a, n Uint256) Uint256 {
	if a[0]&1 != 0 {
		sum, carry := a.Add(n)
		a = sum
		if carry != 0 {
			return shr1WithCarry(a)
		}
	}
	return shr1(a)
}

func shr1WithCarry(x Uint256) Uint256 {
	var z Uint256
	z[0] = (x[0] >> 1) | (x[1] << 63)
	z[1] = (x[1] >> 1) | (x[2] << 63)
	z[2] = (x[2] >> 1) | (x[3] << 63)
	z[3] = (x[3] >> 1) | (1 << 63)
	return z
}

func subModN(a, b, n Uint256) Uint256 {
	d, borrow := a.Sub(b)
	if borrow != 0 {
		d, _ = d.Add(n)
	}
	return d
}
