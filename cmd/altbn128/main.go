// Command altbn128 exercises the bn254 library from the command line:
// point addition, scalar multiplication, and pairing-product checks over
// the alt_bn128 curve, taking the same hex wire encodings the EIP-196/197
// precompiles use. add and mul print the result point in that encoding;
// pair prints 1 or 0 rather than the precompile's 32-byte word.
//
// Usage:
//
//	altbn128 -op add    <g1hex> <g1hex>
//	altbn128 -op mul    <g1hex> <scalarhex>
//	altbn128 -op pair   <g1hex> <g2hex> [<g1hex> <g2hex> ...]
//	altbn128 -version
//
// Flags:
//
//	-op        operation to run: add, mul, pair (required unless -version)
//	-loglevel  log verbosity: debug, info, warn, error (default: "info")
//	-version   print version and exit
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eth2030/altbn128/bn254"
	applog "github.com/eth2030/altbn128/log"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code; kept separate
// from main so the binary can be exercised from a test without os.Exit.
func run(args []string) int {
	fs := flag.NewFlagSet("altbn128", flag.ContinueOnError)
	op := fs.String("op", "", "operation to run: add, mul, pair")
	logLevel := fs.String("loglevel", "info", "log verbosity (debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *showVersion {
		fmt.Printf("altbn128 %s (commit %s)\n", version, commit)
		return 0
	}

	applog.SetDefault(applog.New(parseLevel(*logLevel)))
	logger := applog.Default().Component("cli")

	switch *op {
	case "add":
		return runAdd(logger, fs.Args())
	case "mul":
		return runMul(logger, fs.Args())
	case "pair":
		return runPair(logger, fs.Args())
	default:
		fmt.Fprintln(os.Stderr, "altbn128: -op must be one of: add, mul, pair")
		return 1
	}
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runAdd(logger *applog.Logger, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "altbn128: add takes exactly two 64-byte G1 points")
		return 1
	}
	p1, err := decodeG1Hex(args[0])
	if err != nil {
		logger.Error("decode g1", "err", err)
		return 1
	}
	p2, err := decodeG1Hex(args[1])
	if err != nil {
		logger.Error("decode g1", "err", err)
		return 1
	}
	fmt.Println(hex.EncodeToString(bn254.EncodeG1(p1.Add(p2))))
	return 0
}

func runMul(logger *applog.Logger, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "altbn128: mul takes a 64-byte G1 point and a 32-byte scalar")
		return 1
	}
	p, err := decodeG1Hex(args[0])
	if err != nil {
		logger.Error("decode g1", "err", err)
		return 1
	}
	sBytes, err := hex.DecodeString(args[1])
	if err != nil {
		logger.Error("decode scalar", "err", err)
		return 1
	}
	var s bn254.Uint256
	s.SetBytes(sBytes)
	fmt.Println(hex.EncodeToString(bn254.EncodeG1(p.ScalarMul(s))))
	return 0
}

func runPair(logger *applog.Logger, args []string) int {
	if len(args) == 0 || len(args)%2 != 0 {
		fmt.Fprintln(os.Stderr, "altbn128: pair takes pairs of (g1hex, g2hex)")
		return 1
	}
	n := len(args) / 2
	g1 := make([]bn254.G1Point, n)
	g2 := make([]bn254.G2Point, n)
	for i := 0; i < n; i++ {
		p1, err := decodeG1Hex(args[2*i])
		if err != nil {
			logger.Error("decode g1", "index", i, "err", err)
			return 1
		}
		p2, err := decodeG2Hex(args[2*i+1])
		if err != nil {
			logger.Error("decode g2", "index", i, "err", err)
			return 1
		}
		g1[i], g2[i] = p1, p2
	}
	if bn254.MultiPairingCheck(g1, g2) {
		fmt.Println("1")
		return 0
	}
	fmt.Println("0")
	return 0
}

func decodeG1Hex(s string) (bn254.G1Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return bn254.G1Point{}, err
	}
	return bn254.DecodeG1(b)
}

func decodeG2Hex(s string) (bn254.G2Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return bn254.G2Point{}, err
	}
	return bn254.DecodeG2(b)
}
