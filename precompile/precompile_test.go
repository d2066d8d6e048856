package precompile

import (
	"bytes"
	"testing"

	"github.com/eth2030/altbn128/bn254"
)

func TestContractsAddressing(t *testing.T) {
	cs := Contracts(Schedule1108)
	for _, b := range []byte{6, 7, 8} {
		if _, ok := cs[BytesToAddress([]byte{b})]; !ok {
			t.Errorf("missing precompile at address 0x%02x", b)
		}
	}
}

func TestEcAddRequiredGas(t *testing.T) {
	cs1108 := Contracts(Schedule1108)
	csGlam := Contracts(ScheduleGlamsterdan)

	add1108 := cs1108[BytesToAddress([]byte{6})]
	addGlam := csGlam[BytesToAddress([]byte{6})]

	if got := add1108.RequiredGas(nil); got != GasECAdd1108 {
		t.Errorf("ecAdd/1108 RequiredGas = %d, want %d", got, GasECAdd1108)
	}
	if got := addGlam.RequiredGas(nil); got != GasECAddGlamsterdan {
		t.Errorf("ecAdd/Glamsterdan RequiredGas = %d, want %d", got, GasECAddGlamsterdan)
	}
}

func TestEcMulRequiredGasUnaffectedBySchedule(t *testing.T) {
	cs1108 := Contracts(Schedule1108)
	csGlam := Contracts(ScheduleGlamsterdan)

	mul1108 := cs1108[BytesToAddress([]byte{7})]
	mulGlam := csGlam[BytesToAddress([]byte{7})]

	if got := mul1108.RequiredGas(nil); got != GasECMul1108 {
		t.Errorf("ecMul/1108 RequiredGas = %d, want %d", got, GasECMul1108)
	}
	if got := mulGlam.RequiredGas(nil); got != GasECMul1108 {
		t.Errorf("ecMul/Glamsterdan RequiredGas = %d, want %d", got, GasECMul1108)
	}
}

func TestEcPairingRequiredGasScalesWithPairCount(t *testing.T) {
	cs := Contracts(Schedule1108)
	pair := cs[BytesToAddress([]byte{8})]

	input := make([]byte, 2*pairChunkSize)
	want := GasECPairingBase1108 + 2*GasECPairingPerPair1108
	if got := pair.RequiredGas(input); got != want {
		t.Errorf("ecPairing RequiredGas = %d, want %d", got, want)
	}
}

func TestEcAddRunMatchesG1Addition(t *testing.T) {
	cs := Contracts(Schedule1108)
	add := cs[BytesToAddress([]byte{6})]

	p := bn254.G1Generator()
	q := bn254.G1Generator().Double()

	input := append(append([]byte{}, bn254.EncodeG1(p)...), bn254.EncodeG1(q)...)
	out, err := add.Run(input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := bn254.EncodeG1(p.Add(q))
	if !bytes.Equal(out, want) {
		t.Error("ecAdd output did not match direct G1 addition")
	}
}

func TestEcAddRunZeroPadsShortInput(t *testing.T) {
	cs := Contracts(Schedule1108)
	add := cs[BytesToAddress([]byte{6})]

	p := bn254.G1Generator()
	input := bn254.EncodeG1(p) // missing the second point, treated as infinity

	out, err := add.Run(input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := bn254.EncodeG1(p)
	if !bytes.Equal(out, want) {
		t.Error("ecAdd with short input should treat the missing point as infinity")
	}
}

func TestEcMulRunMatchesScalarMul(t *testing.T) {
	cs := Contracts(Schedule1108)
	mul := cs[BytesToAddress([]byte{7})]

	p := bn254.G1Generator()
	scalar := make([]byte, 32)
	scalar[31] = 5

	input := append(append([]byte{}, bn254.EncodeG1(p)...), scalar...)
	out, err := mul.Run(input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var k bn254.Uint256
	k.SetBytes(scalar)
	want := bn254.EncodeG1(p.ScalarMul(k))
	if !bytes.Equal(out, want) {
		t.Error("ecMul output did not match direct scalar multiplication")
	}
}

func TestEcPairingRunEmptyInputIsTrue(t *testing.T) {
	cs := Contracts(Schedule1108)
	pair := cs[BytesToAddress([]byte{8})]

	out, err := pair.Run(nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := make([]byte, 32)
	want[31] = 1
	if !bytes.Equal(out, want) {
		t.Error("empty pairing input should report true (empty product)")
	}
}

func TestEcPairingRunBalancedProduct(t *testing.T) {
	cs := Contracts(Schedule1108)
	pair := cs[BytesToAddress([]byte{8})]

	g1 := bn254.G1Generator()
	g2 := bn254.G2Generator()
	a := bn254.Uint256{7, 0, 0, 0}

	p1 := g1.ScalarMul(a)
	q1 := g2
	p2 := g1.Neg()
	q2 := g2.ScalarMul(a)

	var input []byte
	input = append(input, bn254.EncodeG1(p1)...)
	input = append(input, bn254.EncodeG2(q1)...)
	input = append(input, bn254.EncodeG1(p2)...)
	input = append(input, bn254.EncodeG2(q2)...)

	out, err := pair.Run(input)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := make([]byte, 32)
	want[31] = 1
	if !bytes.Equal(out, want) {
		t.Error("expected balanced pairing product to report true")
	}
}

func TestEcPairingRunRejectsBadLength(t *testing.T) {
	cs := Contracts(Schedule1108)
	pair := cs[BytesToAddress([]byte{8})]

	if _, err := pair.Run(make([]byte, 191)); err != ErrInvalidInputLength {
		t.Errorf("expected ErrInvalidInputLength, got %v", err)
	}
}

func TestEcPairingRunRejectsOffCurveG2(t *testing.T) {
	cs := Contracts(Schedule1108)
	pair := cs[BytesToAddress([]byte{8})]

	g1 := bn254.G1Generator()

	var input []byte
	input = append(input, bn254.EncodeG1(g1)...)
	// x=1, y=1 is on no BN254 twist subgroup of interest and will fail
	// the on-curve check inside DecodeG2 before subgroup membership is
	// even considered, which is sufficient to exercise the rejection path.
	badG2 := make([]byte, 128)
	badG2[127] = 1
	badG2[63] = 1
	input = append(input, badG2...)

	if _, err := pair.Run(input); err == nil {
		t.Error("expected an error for a non-curve G2 input")
	}
}
