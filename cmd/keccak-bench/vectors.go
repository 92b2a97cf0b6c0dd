package main

import (
	"encoding/hex"
	"fmt"
	"io"

	keccak "github.com/hashmark/keccak256"
)

// Canonical Keccak-256 known-answer vectors, 64 hex characters each.
var vectors = []struct {
	label   string
	message []byte
	digest  string
}{
	{"empty", nil, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	{"abc", []byte("abc"), "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	{"hello", []byte("hello"), "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	{"fox", []byte("The quick brown fox jumps over the lazy dog"), "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15"},
}

// verifyVectors hashes every fixed input, hex-compares against the pinned
// digest and reports per-vector status to w. A non-nil error means at
// least one vector failed.
func verifyVectors(w io.Writer) error {
	failed := 0
	for _, v := range vectors {
		digest := keccak.Sum256(v.message)
		got := hex.EncodeToString(digest[:])
		if got != v.digest {
			failed++
			fmt.Fprintf(w, "FAIL %-6s got %s, want %s\n", v.label, got, v.digest)
			continue
		}
		fmt.Fprintf(w, "ok   %-6s %s\n", v.label, got)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d vectors failed", failed, len(vectors))
	}
	return nil
}
