// Package keccak provides the legacy Keccak-256 hash, the pre-NIST
// variant used by Ethereum and friends.
//
// Go 1.25's stdlib crypto/sha3 only exposes SHA-3 (domain 0x06), not
// Keccak-256 (domain 0x01). This package computes the same digest as
// x/crypto/sha3.NewLegacyKeccak256 without the hash.Hash plumbing: a
// single-use internal sponge and a one-shot Sum256. No incremental API,
// no SHAKE, no other output widths.
package keccak

const (
	// Size is the digest length in bytes.
	Size = 32

	// BlockSize is the sponge rate for Keccak-256:
	// (1600 - 2*256) / 8 = 136 bytes.
	BlockSize = 136
)

// rateBits is the absorption rate handed to the sponge, in bits.
const rateBits = 8 * BlockSize

// Sum256 computes the Keccak-256 hash of data. Zero heap allocations.
func Sum256(data []byte) [Size]byte {
	d := newSponge(rateBits)
	d.absorb(data)
	return d.finalize()
}
