package keccak

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"
)

// reference computes the digest with x/crypto's NewLegacyKeccak256, the
// authoritative implementation all tests compare against.
func reference(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

func TestSum256Empty(t *testing.T) {
	got := Sum256(nil)
	// Known Keccak-256 of empty string.
	want, _ := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(nil) = %x, want %x", got, want)
	}
	if !bytes.Equal(want, reference(nil)) {
		t.Fatal("pinned empty-string vector disagrees with x/crypto")
	}
}

func TestSum256ABC(t *testing.T) {
	got := Sum256([]byte("abc"))
	want, _ := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(abc) = %x, want %x", got, want)
	}
	if !bytes.Equal(want, reference([]byte("abc"))) {
		t.Fatal("pinned abc vector disagrees with x/crypto")
	}
}

func TestSum256Hello(t *testing.T) {
	got := Sum256([]byte("hello"))
	want, _ := hex.DecodeString("1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(hello) = %x, want %x", got, want)
	}
}

func TestSum256Deterministic(t *testing.T) {
	data := []byte("the same message hashed twice")
	if a, b := Sum256(data), Sum256(data); a != b {
		t.Fatalf("two invocations disagree: %x vs %x", a, b)
	}
}

func TestSum256BlockBoundaries(t *testing.T) {
	// rate-1 exercises the padding collision: cursor lands on byte 135,
	// so 0x01 and 0x80 XOR into the same byte.
	for _, size := range []int{BlockSize - 1, BlockSize, BlockSize + 1} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 3)
		}
		got := Sum256(data)
		if want := reference(data); !bytes.Equal(got[:], want) {
			t.Fatalf("len=%d: got %x, want %x", size, got, want)
		}
	}
}

func TestSum256LargeData(t *testing.T) {
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	got := Sum256(data)
	if want := reference(data); !bytes.Equal(got[:], want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestSum256Sensitivity(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	base := Sum256(data)
	for _, bit := range []int{0, 7, 100, 511} {
		data[bit/8] ^= 1 << (bit % 8)
		flipped := Sum256(data)
		data[bit/8] ^= 1 << (bit % 8)
		if flipped == base {
			t.Fatalf("flipping bit %d left the digest unchanged", bit)
		}
	}
}

func TestSpongeChunkedAbsorb(t *testing.T) {
	data := make([]byte, BlockSize*2+50)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Sum256(data)

	// The absorbed state must not depend on how the message was split.
	for _, chunk := range []int{1, 7, 37, BlockSize - 1, BlockSize, BlockSize + 1} {
		d := newSponge(rateBits)
		for i := 0; i < len(data); i += chunk {
			end := i + chunk
			if end > len(data) {
				end = len(data)
			}
			d.absorb(data[i:end])
		}
		if got := d.finalize(); got != want {
			t.Fatalf("chunk=%d: got %x, want %x", chunk, got, want)
		}
	}
}

func TestSpongeCursorInvariant(t *testing.T) {
	d := newSponge(rateBits)
	if d.rate+d.capacity != stateBytes {
		t.Fatalf("rate %d + capacity %d != %d", d.rate, d.capacity, stateBytes)
	}
	for i := 0; i < BlockSize*3; i++ {
		d.absorb([]byte{byte(i)})
		if d.absorbed < 0 || d.absorbed >= d.rate {
			t.Fatalf("cursor %d escaped [0, %d) after %d bytes", d.absorbed, d.rate, i+1)
		}
	}
}

func TestSpongeUseAfterFinalize(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s on a finalized sponge did not panic", name)
			}
		}()
		fn()
	}
	d := newSponge(rateBits)
	d.absorb([]byte("terminal"))
	d.finalize()
	mustPanic("absorb", func() { d.absorb([]byte{1}) })
	mustPanic("finalize", func() { d.finalize() })
}

func FuzzSum256(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("abc"))
	f.Add([]byte("hello world, this is a longer test string for streaming keccak"))
	f.Add(make([]byte, BlockSize-1))
	f.Add(make([]byte, BlockSize))
	f.Add(make([]byte, BlockSize+1))
	f.Add(make([]byte, BlockSize*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		want := reference(data)

		got := Sum256(data)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("Sum256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		// Same message absorbed byte-by-byte.
		d := newSponge(rateBits)
		for _, b := range data {
			d.absorb([]byte{b})
		}
		if gotS := d.finalize(); !bytes.Equal(gotS[:], want) {
			t.Fatalf("byte-by-byte mismatch for len=%d\ngot:  %x\nwant: %x", len(data), gotS, want)
		}
	})
}

func BenchmarkSum256_500K(b *testing.B) {
	data := make([]byte, 500*1024)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Sum256(data)
	}
}

// Comparison benchmarks: this package vs golang.org/x/crypto/sha3.
var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Sum256(data)
			}
		})
	}
}

func BenchmarkXCrypto(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := sha3.NewLegacyKeccak256()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}
