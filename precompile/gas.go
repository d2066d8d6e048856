package precompile

// Gas cost constants for the BN254 precompiles, both the original EIP-1108
// repricing and the later EIP-7904 ("Glamsterdam") increases. GasSchedule
// selects which set RequiredGas charges against; Run does not depend on it.
const (
	// GasECAdd1108 is the EIP-1108 cost of the point-addition precompile
	// (address 0x06).
	GasECAdd1108 uint64 = 150
	// GasECAddGlamsterdan is the EIP-7904 repriced cost of the same.
	GasECAddGlamsterdan uint64 = 314

	// GasECMul1108 is the EIP-1108 cost of the scalar-multiplication
	// precompile (address 0x07); EIP-7904 leaves it unchanged.
	GasECMul1108 uint64 = 6000

	// GasECPairingBase1108 and GasECPairingPerPair1108 are the EIP-1108
	// pairing-check costs (address 0x08): base + per-pair.
	GasECPairingBase1108    uint64 = 45000
	GasECPairingPerPair1108 uint64 = 34000

	// GasECPairingBaseGlamsterdan and GasECPairingPerPairGlamsterdan are
	// the EIP-7904 repriced pairing costs; the base is unchanged but the
	// per-pair cost rises to account for the more expensive subgroup
	// check this package's Run performs on every G2 input.
	GasECPairingBaseGlamsterdan    uint64 = 45000
	GasECPairingPerPairGlamsterdan uint64 = 34103
)

// GasSchedule selects which historical gas repricing a precompile set
// charges.
type GasSchedule int

const (
	// Schedule1108 charges the original EIP-1108 costs.
	Schedule1108 GasSchedule = iota
	// ScheduleGlamsterdan charges the EIP-7904 repriced costs.
	ScheduleGlamsterdan
)
