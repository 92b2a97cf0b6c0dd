// Package bench times one-shot Keccak-256 hashing over a deterministic
// corpus of varying-length messages and reports throughput alongside a
// digest-derived checksum, so runs of different implementations can be
// compared and sanity-checked against each other.
package bench

import (
	"fmt"
	"time"

	keccak "github.com/hashmark/keccak256"
)

// Corpus shape. Message lengths walk the [32, 512] range with a stride
// that is coprime to the span, so every run covers short and multi-block
// inputs in a fixed order.
const (
	DefaultMessages = 512
	DefaultRounds   = 200
	DefaultWarmup   = 3

	baseLength   = 32
	maxLength    = 512
	lengthStride = 31
)

// HashFunc is the opaque hash under test. It must be side-effect free;
// the harness calls it back to back with no coordination.
type HashFunc func([]byte) [keccak.Size]byte

// Config describes one benchmark run.
type Config struct {
	Label    string   // implementation name carried into the Result
	Messages int      // distinct messages per round
	Rounds   int      // timed passes over the corpus
	Warmup   int      // untimed passes before the clock starts
	Hash     HashFunc // defaults to keccak.Sum256
}

// DefaultConfig returns the corpus shape of the native baseline driver.
func DefaultConfig(label string) Config {
	return Config{
		Label:    label,
		Messages: DefaultMessages,
		Rounds:   DefaultRounds,
		Warmup:   DefaultWarmup,
	}
}

func (c Config) validate() error {
	if c.Messages <= 0 {
		return fmt.Errorf("bench: messages must be positive, got %d", c.Messages)
	}
	if c.Rounds <= 0 {
		return fmt.Errorf("bench: rounds must be positive, got %d", c.Rounds)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("bench: warmup must not be negative, got %d", c.Warmup)
	}
	return nil
}

// messageLength derives the length of message index deterministically.
func messageLength(index int) int {
	span := maxLength - baseLength + 1
	return baseLength + (index*lengthStride)%span
}

// fillMessage writes message index into buf and returns the filled prefix.
// buf must hold at least maxLength bytes.
func fillMessage(index int, buf []byte) []byte {
	n := messageLength(index)
	for off := 0; off < n; off++ {
		buf[off] = byte((index + off) % 256)
	}
	return buf[:n]
}

// Result is the outcome of one timed run.
type Result struct {
	Implementation  string  `json:"implementation"`
	Seconds         float64 `json:"seconds"`
	HashesPerSecond float64 `json:"hashes_per_second"`
	Checksum        uint32  `json:"checksum"`
}

// Run executes cfg: warmup passes first, then Rounds timed passes over the
// corpus on the monotonic clock. The checksum XORs the first byte of every
// timed digest, which catches an implementation that goes wrong without
// slowing the loop down.
func Run(cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	hash := cfg.Hash
	if hash == nil {
		hash = keccak.Sum256
	}

	buf := make([]byte, maxLength)
	for round := 0; round < cfg.Warmup; round++ {
		for idx := 0; idx < cfg.Messages; idx++ {
			hash(fillMessage(idx, buf))
		}
	}

	var checksum uint32
	start := time.Now()
	for round := 0; round < cfg.Rounds; round++ {
		for idx := 0; idx < cfg.Messages; idx++ {
			digest := hash(fillMessage(idx, buf))
			checksum ^= uint32(digest[0])
		}
	}
	seconds := time.Since(start).Seconds()

	total := float64(cfg.Rounds) * float64(cfg.Messages)
	var throughput float64
	if seconds > 0 {
		throughput = total / seconds
	}
	return Result{
		Implementation:  cfg.Label,
		Seconds:         seconds,
		HashesPerSecond: throughput,
		Checksum:        checksum,
	}, nil
}
