package keccak

// stateBytes is the full Keccak-f[1600] state width in bytes.
const stateBytes = 200

// sponge is a single-use Keccak sponge. One is created per hash
// computation, absorbs exactly one logical message and is discarded after
// finalize; it is never shared between goroutines.
type sponge struct {
	a        state
	rate     int // bytes of state mixed with input per block
	capacity int // bytes of state held back as security margin
	absorbed int // cursor into the current block, always in [0, rate)

	finalized bool
}

// newSponge returns a zeroed sponge with the given rate in bits. Keccak-256
// uses a 1088-bit rate (136 bytes), leaving 512 bits of capacity.
func newSponge(rateBits int) sponge {
	rate := rateBits / 8
	return sponge{rate: rate, capacity: stateBytes - rate}
}

// absorb XORs p into the state at the cursor, running the permutation and
// resetting the cursor every time a full rate block has been mixed in. A
// message may be absorbed in arbitrarily split chunks; the resulting state
// depends only on the concatenation.
func (d *sponge) absorb(p []byte) {
	if d.finalized {
		panic("keccak: absorb after finalize")
	}
	for len(p) > 0 {
		if d.absorbed%8 != 0 {
			// Unaligned cursor from a previous odd-sized chunk; go
			// byte by byte until the next lane boundary.
			d.a.xorByte(d.absorbed, p[0])
			d.absorbed++
			p = p[1:]
		} else {
			n := d.rate - d.absorbed
			if n > len(p) {
				n = len(p)
			}
			d.a.xorBytes(d.absorbed, p[:n])
			d.absorbed += n
			p = p[n:]
		}
		if d.absorbed == d.rate {
			keccakF1600(&d.a)
			d.absorbed = 0
		}
	}
}

// finalize applies Keccak's pad10*1 padding with domain separator 0x01
// (not SHA-3's 0x06), runs the permutation once and returns the first
// Size bytes of the state. The sponge is terminal afterwards.
func (d *sponge) finalize() [Size]byte {
	if d.finalized {
		panic("keccak: finalize after finalize")
	}
	d.finalized = true

	// When the cursor sits on the last rate byte the two pad bits land on
	// the same byte, composing to a single 0x81 XOR.
	d.a.xorByte(d.absorbed, 0x01)
	d.a.xorByte(d.rate-1, 0x80)
	keccakF1600(&d.a)

	var digest [Size]byte
	d.a.read(digest[:])
	return digest
}
