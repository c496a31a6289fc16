package common

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FrFromBytesLE builds a field element from a little-endian byte string of at
// most fr.Bytes bytes. Shorter inputs are zero-padded at the most significant
// bytes. Values above the modulus are reduced.
func FrFromBytesLE(data []byte) fr.Element {
	if len(data) > fr.Bytes {
		panic(fmt.Sprintf("got a byte string of length %v but the field elements hold %v bytes", len(data), fr.Bytes))
	}

	var bigEndian [fr.Bytes]byte
	for i, b := range data {
		bigEndian[fr.Bytes-1-i] = b
	}

	var res fr.Element
	res.SetBytes(bigEndian[:])
	return res
}

// FrToBytesLE returns the fixed-width little-endian encoding of x
func FrToBytesLE(x fr.Element) [fr.Bytes]byte {
	bigEndian := x.Bytes()
	var res [fr.Bytes]byte
	for i := range bigEndian {
		res[fr.Bytes-1-i] = bigEndian[i]
	}
	return res
}

// FrToU64sLE returns the 4x64 bits little-endian word decomposition of x
func FrToU64sLE(x fr.Element) [4]uint64 {
	bytes := FrToBytesLE(x)
	var res [4]uint64
	for i := range res {
		res[i] = binary.LittleEndian.Uint64(bytes[8*i : 8*(i+1)])
	}
	return res
}

// FrFromU64sLE rebuilds a field element from its 4x64 bits little-endian
// word decomposition
func FrFromU64sLE(words [4]uint64) fr.Element {
	var bytes [fr.Bytes]byte
	for i, w := range words {
		binary.LittleEndian.PutUint64(bytes[8*i:8*(i+1)], w)
	}
	return FrFromBytesLE(bytes[:])
}

// FrSliceFromBytesLE decodes an arbitrary byte string into field elements,
// one per chunk of fr.Bytes bytes. The last chunk may be shorter.
func FrSliceFromBytesLE(data []byte) []fr.Element {
	res := make([]fr.Element, 0, (len(data)+fr.Bytes-1)/fr.Bytes)
	for start := 0; start < len(data); start += fr.Bytes {
		stop := Min(start+fr.Bytes, len(data))
		res = append(res, FrFromBytesLE(data[start:stop]))
	}
	return res
}
