package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Rand builds the bomb placement source. MINES_SEED="hi:lo" fixes the PCG
// seed so a game can be replayed; otherwise the seed is random.
func Rand() (*rand.Rand, error) {
	seed, ok := os.LookupEnv("MINES_SEED")
	if !ok || seed == "" {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		)), nil
	}

	hiStr, loStr, ok := strings.Cut(seed, ":")
	if !ok {
		return nil, fmt.Errorf(`MINES_SEED must look like "hi:lo", got %q`, seed)
	}
	hi, err := strconv.ParseUint(hiStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
	}
	lo, err := strconv.ParseUint(loStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
	}
	return rand.New(rand.NewPCG(hi, lo)), nil
}
