package casper

import "github.com/ethereum/go-ethereum/common"

const (
	// initialEpochOffset seeds committees for the genesis epoch.
	initialEpochOffset = 0
	// boundaryEpochOffset is used at every epoch boundary: a new
	// committee always lands two epochs ahead of the epoch that just
	// completed.
	boundaryEpochOffset = 2
)

// assignSlots is C2. It solves the seat threshold for proposals (C1),
// expands proposals into seat tokens, shuffles them deterministically
// from seed, and slices the result into one committee per slot of the
// epoch at (epoch+epochOffset). It returns the per-index committees and
// the threshold that was used to build them.
func assignSlots(
	proposals []AuthorityProposal,
	epochLength, numSeatsPerSlot uint64,
	epoch, epochOffset uint64,
	seed common.Hash,
) (map[uint64][]SelectedAuthority, uint64, error) {
	numSeats := epochLength * numSeatsPerSlot

	amounts := make([]uint64, len(proposals))
	for i, p := range proposals {
		amounts[i] = p.Amount
	}
	threshold, err := FindThreshold(amounts, numSeats)
	if err != nil {
		return nil, 0, err
	}

	tokens := seatTokens(proposals, threshold)
	if uint64(len(tokens)) < numSeats {
		invariantf("selected seats %d is below total seats %d for threshold %d", len(tokens), numSeats, threshold)
	}

	shuffle(seed, tokens)

	epochBase := (epoch + epochOffset) * epochLength
	committees := make(map[uint64][]SelectedAuthority, epochLength)
	for i := uint64(0); i < epochLength; i++ {
		start := i * numSeatsPerSlot
		committee := make([]SelectedAuthority, numSeatsPerSlot)
		copy(committee, tokens[start:start+numSeatsPerSlot])
		committees[epochBase+i+1] = committee
	}
	return committees, threshold, nil
}

// seatTokens expands each proposal whose amount covers the threshold into
// floor(amount/threshold) copies of its seat, in the proposal's input
// order. Proposals below threshold earn no seats.
func seatTokens(proposals []AuthorityProposal, threshold uint64) []SelectedAuthority {
	var tokens []SelectedAuthority
	for _, p := range proposals {
		if p.Amount < threshold {
			continue
		}
		for i := uint64(0); i < p.Amount/threshold; i++ {
			tokens = append(tokens, SelectedAuthority{
				AccountID: p.AccountID,
				PublicKey: p.PublicKey,
			})
		}
	}
	return tokens
}

// rebuildCommittees reproduces the committees for an epoch from its
// recorded proposals and threshold, without re-solving the threshold. It
// is used to deterministically rebuild committees evicted from the
// cache: same proposals, same threshold and the same constant seed
// reproduce the same shuffled tokens, so the result is identical to what
// assignSlots originally produced for that epoch.
func rebuildCommittees(proposals []AuthorityProposal, threshold uint64, seed common.Hash, epoch, epochLength, numSeatsPerSlot uint64) map[uint64][]SelectedAuthority {
	tokens := seatTokens(proposals, threshold)
	numSeats := epochLength * numSeatsPerSlot
	if uint64(len(tokens)) < numSeats {
		invariantf("selected seats %d is below total seats %d for threshold %d", len(tokens), numSeats, threshold)
	}
	shuffle(seed, tokens)

	epochBase := epoch * epochLength
	committees := make(map[uint64][]SelectedAuthority, epochLength)
	for i := uint64(0); i < epochLength; i++ {
		start := i * numSeatsPerSlot
		committee := make([]SelectedAuthority, numSeatsPerSlot)
		copy(committee, tokens[start:start+numSeatsPerSlot])
		committees[epochBase+i+1] = committee
	}
	return committees
}
