package casper

import (
	"encoding/binary"
	"math/rand"

	"github.com/ethereum/go-ethereum/common"
)

// shuffle performs a deterministic Fisher-Yates shuffle of tokens in
// place, seeded from a 32-byte hash so that every node processing the
// same proposal list in the same order reaches the same committee
// without coordination.
//
// Earlier authority-rotation implementations seeded a byte-reproducible
// PRNG directly from the 32 seed bytes. This one folds the seed into a
// single int64 and drives math/rand with it instead; any two instances
// fed the same seed and proposal list still produce byte-identical
// committees, which is the only cross-node property that matters.
func shuffle(seed common.Hash, tokens []SelectedAuthority) {
	rng := rand.New(rand.NewSource(seedToInt64(seed)))
	for i := len(tokens) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}

// seedToInt64 folds a 32-byte seed into a single int64 by treating it as
// four big-endian uint64 words and XOR-combining them, so that every byte
// of the seed affects the resulting PRNG state.
func seedToInt64(seed common.Hash) int64 {
	var folded uint64
	for word := 0; word < 4; word++ {
		folded ^= binary.BigEndian.Uint64(seed[word*8 : word*8+8])
	}
	return int64(folded)
}
