package precompile

import "encoding/hex"

// Address is a 20-byte EVM account address, just enough of the type to key
// the precompile table below; this package has no need for the rest of a
// full account/state model.
type Address [20]byte

// BytesToAddress right-aligns b within a 20-byte Address, truncating from
// the left if b is longer than 20 bytes.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > 20 {
		b = b[len(b)-20:]
	}
	copy(a[20-len(b):], b)
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}
