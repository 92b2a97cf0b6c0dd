// keccak-bench times one-shot Keccak-256 hashing over a deterministic
// message corpus and checks the implementation against known-answer
// vectors. It mirrors the native baseline driver's flags and output so the
// two can be diffed directly.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	keccak "github.com/hashmark/keccak256"
	"github.com/hashmark/keccak256/internal/bench"
)

var (
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "emit one JSON object per line instead of a table",
	}
	labelFlag = &cli.StringFlag{
		Name:  "label",
		Value: "go",
		Usage: "implementation label carried into the report",
	}
	roundsFlag = &cli.IntFlag{
		Name:  "rounds",
		Value: bench.DefaultRounds,
		Usage: "timed passes over the message corpus",
	}
	messagesFlag = &cli.IntFlag{
		Name:  "messages",
		Value: bench.DefaultMessages,
		Usage: "distinct messages per pass",
	}
	implFlag = &cli.StringFlag{
		Name:  "impl",
		Value: "sponge",
		Usage: "implementation to time: sponge (this module) or xcrypto",
	}
)

func main() {
	app := &cli.App{
		Name:   "keccak-bench",
		Usage:  "Keccak-256 microbenchmark and known-answer smoke tests",
		Flags:  []cli.Flag{jsonFlag, labelFlag, roundsFlag, messagesFlag, implFlag},
		Action: runBench,
		Commands: []*cli.Command{
			{
				Name:   "vectors",
				Usage:  "hash fixed inputs and compare against canonical digests",
				Action: runVectors,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// hashImpl resolves the --impl flag to a hash function. The xcrypto
// variant wraps x/crypto's NewLegacyKeccak256 for a reference baseline.
func hashImpl(name string) (bench.HashFunc, error) {
	switch name {
	case "sponge":
		return keccak.Sum256, nil
	case "xcrypto":
		return func(p []byte) [keccak.Size]byte {
			h := sha3.NewLegacyKeccak256()
			h.Write(p)
			var digest [keccak.Size]byte
			h.Sum(digest[:0])
			return digest
		}, nil
	default:
		return nil, fmt.Errorf("unknown implementation %q (want sponge or xcrypto)", name)
	}
}

func runBench(ctx *cli.Context) error {
	hash, err := hashImpl(ctx.String(implFlag.Name))
	if err != nil {
		return err
	}
	cfg := bench.DefaultConfig(ctx.String(labelFlag.Name))
	cfg.Rounds = ctx.Int(roundsFlag.Name)
	cfg.Messages = ctx.Int(messagesFlag.Name)
	cfg.Hash = hash

	result, err := bench.Run(cfg)
	if err != nil {
		return err
	}
	if ctx.Bool(jsonFlag.Name) {
		return bench.WriteJSON(os.Stdout, []bench.Result{result})
	}
	bench.WriteTable(os.Stdout, []bench.Result{result})
	return nil
}

func runVectors(ctx *cli.Context) error {
	return verifyVectors(os.Stdout)
}
