package bn254

// Field and curve parameters for alt_bn128 (BN254), pinned against the
// Montgomery-form reference constants and cross-checked against the
// standard (non-Montgomery) BN254 generator/twist literals.
//
//	p (field modulus) = 21888242871839275222246405745257275088696311157297823662689037894645226208583
//	r (subgroup order) = 21888242871839275222246405745257275088548364400416034343698204186575808495617
//	R = 2**256, the Montgomery radix.

// fieldModulus is p, the base field modulus.
var fieldModulus = Uint256{0x3c208c16d87cfd47, 0x97816a916871ca8d, 0xb85045b68181585d, 0x30644e72e131a029}

// subgroupOrder is r, the order of G1 and G2 (and of the pairing's target
// subgroup in Fq12).
var subgroupOrder = Uint256{0x43e1f593f0000001, 0x2833e84879b97091, 0xb85045b68181585d, 0x30644e72e131a029}

// montR2 is R^2 mod p, used to move a plain residue into Montgomery form.
var montR2 = Uint256{0xf32cfc5b538afa89, 0xb5e71911d44501fb, 0x47ab1eff0a417ff6, 0x6d89f71cab8351f}

// montR3 is R^3 mod p, used in Montgomery-form inversion.
var montR3 = Uint256{0xb1cd6dafda1530df, 0x62f210e6a7283db6, 0xef7f0b0c0ada0afb, 0x20fd6e902d592544}

// montPPrime is p' with p*p' = -1 mod R (2**256).
var montPPrime = Uint256{0x87d20782e4866389, 0x9ede7d651eca6ac9, 0xd8afcbd01833da80, 0xf57a22b791888c6b}

// montOne is 1 in Montgomery form (R mod p).
var montOne = Uint256{0xd35d438dc58f0d9d, 0xa78eb28f5c70b3d, 0x666ea36f7879462c, 0xe0a77c19a07df2f}

// montTwo is 2 in Montgomery form.
var montTwo = Uint256{0xa6ba871b8b1e1b3a, 0x14f1d651eb8e167b, 0xccdd46def0f28c58, 0x1c14ef83340fbe5e}

// curveB is the G1 curve coefficient (3) in Montgomery form, i.e. encode(3).
var curveB = Uint256{0x7a17caa950ad28d7, 0x1f6ac17ae15521b9, 0x334bea4e696bd284, 0x2a1f6744ce179d8e}

// g2TwistBC0, g2TwistBC1 are the Fq2 coefficients of b' = b/xi (the G2 curve
// coefficient on the twisted curve E': y^2 = x^3 + b'), in Montgomery form.
var (
	g2TwistBC0 = Uint256{0x3bf938e377b802a8, 0x20b1b273633535d, 0x26b7edf049755260, 0x2514c6324384a86d}
	g2TwistBC1 = Uint256{0x38e7ecccd1dcff67, 0x65f0b37d93ce0d3e, 0xd749d0dd22ac00aa, 0x141b9ce4a688d4d}
)

// xiC0 is encode(9), the non-Montgomery-constant part of xi = 9 + i, the
// sextic non-residue defining Fq6 = Fq2[v]/(v^3 - xi). xi's imaginary
// coefficient is 1, so it is montOne (encode(1)) and has no constant of its
// own.
var xiC0 = Uint256{0xf60647ce410d7ff7, 0x2f3d6f4dd31bd011, 0x2943337e3940c6d1, 0x1d9598e8a7e39857}

// g2GenXC0, g2GenXC1, g2GenYC0, g2GenYC1 are the Montgomery-form coordinates
// of the G2 generator, the canonical BN254 twist generator.
var (
	g2GenXC0 = Uint256{0x8e83b5d102bc2026, 0xdceb1935497b0172, 0xfbb8264797811adf, 0x19573841af96503b}
	g2GenXC1 = Uint256{0xafb4737da84c6140, 0x6043dd5a5802d8c4, 0x9e950fc52a02f86, 0x14fef0833aea7b6b}
	g2GenYC0 = Uint256{0x619dfa9d886be9f6, 0xfe7fd297f59e9b78, 0xff9e1a62231b7dfe, 0x28fd7eebae9e4206}
	g2GenYC1 = Uint256{0x64095b56c71856ee, 0xdc57f922327d3cbb, 0x55f935be33351076, 0xda4a0e693fd6482}
)

// bnU is the BN curve parameter u such that p(u) = 36u^4+36u^3+24u^2+6u+1
// and r(u) = 36u^4+36u^3+18u^2+6u+1, with t (trace) = 6u^2+1.
const bnU uint64 = 4965661367192848881

// ateLoopCount is |6u+2| as a plain integer. The Miller loop does not read
// it; it iterates the signed-digit form of the same value, sixuPlus2NAF in
// pairing.go.
var ateLoopCount = Uint256{0x9d797039be763ba8, 0x1, 0, 0}

// Frobenius coefficients: frobI_k is xi^(k*(p^I-1)/6) in Montgomery form,
// the Fq2 scalar that the Fq12 basis element w^k picks up under the p^I
// power map. Indexed the way Fp12's frobeniusI methods consume them: k=1,3,5
// scale the w^k (c1.c0, c1.c1, c1.c2) slots, k=2,4 scale the v, v^2
// (c0.c1, c0.c2) slots.
var (
	frobC1_1C0 = Uint256{0xaf9ba69633144907, 0xca6b1d7387afb78a, 0x11bded5ef08a2087, 0x2f34d751a1f3a7c}
	frobC1_1C1 = Uint256{0xa222ae234c492d72, 0xd00f02a4565de15b, 0xdc2ff3a253dfc926, 0x10a75716b3899551}
	frobC1_2C0 = Uint256{0xb5773b104563ab30, 0x347f91c8a9aa6454, 0x7a007127242e0991, 0x1956bcd8118214ec}
	frobC1_2C1 = Uint256{0x6e849f1ea0aa4757, 0xaa1c7b6d89f89141, 0xb6e713cdfae0ca3a, 0x26694fbb4e82ebc3}
	frobC1_3C0 = Uint256{0xe4bbdd0c2936b629, 0xbb30f162e133bacb, 0x31a9d1b6f9645366, 0x253570bea500f8dd}
	frobC1_3C1 = Uint256{0xa1d77ce45ffe77c7, 0x7affd117826d1db, 0x6d16bd27bb7edc6b, 0x2c87200285defecc}
	frobC1_4C0 = Uint256{0x7361d77f843abe92, 0xa5bb2bd3273411fb, 0x9c941f314b3e2399, 0x15df9cddbb9fd3ec}
	frobC1_4C1 = Uint256{0x5dddfd154bd8c949, 0x62cb29a5a4445b60, 0x37bc870a0c7dd2b9, 0x24830a9d3171f0fd}
	frobC1_5C0 = Uint256{0xc970692f41690fe7, 0xe240342127694b0b, 0x32bee66b83c459e8, 0x12aabced0ab08841}
	frobC1_5C1 = Uint256{0xd485d2340aebfa9, 0x5193418ab2fcc57, 0xd3b0a40b8a4910f5, 0x2f21ebb535d2925a}

	frobC2_1C0 = Uint256{0xca8d800500fa1bf2, 0xf0c5d61468b39769, 0xe201271ad0d4418, 0x4290f65bad856e6}
	frobC2_1C1 = Uint256{}
	frobC2_2C0 = Uint256{0x3350c88e13e80b9c, 0x7dce557cdb5e56b9, 0x6001b4b8b615564a, 0x2682e617020217e0}
	frobC2_2C1 = Uint256{}
	frobC2_3C0 = Uint256{0x68c3488912edefaa, 0x8d087f6872aabf4f, 0x51e1a24709081231, 0x2259d6b14729c0fa}
	frobC2_3C1 = Uint256{}
	frobC2_4C0 = Uint256{0x71930c11d782e155, 0xa6bb947cffbe3323, 0xaa303344d4741444, 0x2c3b3f0d26594943}
	frobC2_4C1 = Uint256{}
	frobC2_5C0 = Uint256{0x8cfc388c494f1ab, 0x19b315148d1373d4, 0x584e90fdcb6c0213, 0x9e1685bdf2f8849}
	frobC2_5C1 = Uint256{}

	frobC3_1C0 = Uint256{0x365316184e46d97d, 0xaf7129ed4c96d9f, 0x659da72fca1009b5, 0x8116d8983a20d23}
	frobC3_1C1 = Uint256{0xb1df4af7c39c1939, 0x3d9f02878a73bf7f, 0x9b2220928caf0ae0, 0x26684515eff054a6}
	frobC3_2C0 = Uint256{0xc9af22f716ad6bad, 0xb311782a4aa662b2, 0x19eeaf64e248c7f4, 0x20273e77e3439f82}
	frobC3_2C1 = Uint256{0xacc02860f7ce93ac, 0x3933d5817ba76b4c, 0x69e6188b446c8467, 0xa46036d4417cc55}
	frobC3_3C0 = Uint256{0x5764af0aaf46471e, 0xdc50792e873e0fc1, 0x86a673ff881d04f6, 0xb2eddb43c30a74c}
	frobC3_3C1 = Uint256{0x9a490f32787e8580, 0x8fd16d7ff04af8b1, 0x4b39888ec6027bf2, 0x3dd2e705b52a15d}
	frobC3_4C0 = Uint256{0x448a93a57b6762df, 0xbfd62df528fdeadf, 0xd858f5d00e9bd47a, 0x6b03d4d3476ec58}
	frobC3_4C1 = Uint256{0x2b19daf4bcc936d1, 0xa1a54e7a56f4299f, 0xb533eee05adeaef1, 0x170c812b84dda0b2}
	frobC3_5C0 = Uint256{0xe0bc4b2275cf559f, 0xc238b945c154e60f, 0x803982a5929a7d5e, 0x15ce052df7e4a37e}
	frobC3_5C1 = Uint256{0x2d28efbdbf3799a7, 0x9b097e3c1ad60773, 0x982d4113af4a535b, 0x24e18991e3056063}
)
