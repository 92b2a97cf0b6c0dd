package keccak

import "encoding/binary"

// state is the 1600-bit Keccak state: 25 little-endian 64-bit lanes,
// conceptually a 5x5 matrix indexed as lane x + 5*y. The sponge addresses
// the same array as a flat sequence of 200 bytes through the accessors
// below; byte i lives in lane i/8 at bit offset 8*(i%8).
type state [25]uint64

// xorByte XORs v into byte position i of the flat 200-byte view.
func (a *state) xorByte(i int, v byte) {
	a[i/8] ^= uint64(v) << (8 * uint(i%8))
}

// byteAt reads byte position i of the flat 200-byte view.
func (a *state) byteAt(i int) byte {
	return byte(a[i/8] >> (8 * uint(i%8)))
}

// xorBytes XORs p into the flat byte view starting at offset off. off must
// be lane-aligned (a multiple of 8); the sponge only takes this path for
// aligned spans. Whole lanes are folded in 8 bytes at a time.
func (a *state) xorBytes(off int, p []byte) {
	lane := off / 8
	for len(p) >= 8 {
		a[lane] ^= binary.LittleEndian.Uint64(p)
		p = p[8:]
		lane++
	}
	for i, b := range p {
		a.xorByte(lane*8+i, b)
	}
}

// read copies the first len(out) bytes of the flat byte view into out.
// len(out) must be a multiple of 8.
func (a *state) read(out []byte) {
	for i := 0; i < len(out); i += 8 {
		binary.LittleEndian.PutUint64(out[i:], a[i/8])
	}
}
