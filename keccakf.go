package keccak

import "math/bits"

// Constant tables from the Keccak reference: the iota round constants, the
// rho rotation offsets and the pi lane destinations, both in the order the
// rho+pi chase below visits the 24 moving lanes. Lane 0 never rotates.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

var rotationOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piIndexes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the 24-round Keccak-f[1600] permutation in place.
func keccakF1600(a *state) {
	var bc [5]uint64
	for round := 0; round < 24; round++ {
		// Theta: fold column parities back into every lane.
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// Rho and pi: rotate each moving lane and chase it to its slot.
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piIndexes[i]
			t, a[j] = a[j], bits.RotateLeft64(t, rotationOffsets[i])
		}

		// Chi: the nonlinear row mix.
		for j := 0; j < 25; j += 5 {
			copy(bc[:], a[j:j+5])
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// Iota.
		a[0] ^= roundConstants[round]
	}
}
