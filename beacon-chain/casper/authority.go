// Package casper keeps track of and selects the authorities (validators)
// entitled to sign each beacon block, rotating them at epoch boundaries
// based on on-chain stake proposals and observed participation.
package casper

import "github.com/pkg/errors"

// Authority is the mutable core of the rotation engine. It is
// single-threaded and non-suspending: all operations are synchronous and
// callers must serialize access themselves, since the engine holds no
// internal locks.
type Authority struct {
	config AuthorityConfig

	// currentEpoch is the most recent epoch fully committed.
	currentEpoch uint64

	// committees maps block index to its ordered committee. Backed by an
	// LRU; on a miss it is rebuilt from acceptedProposals and thresholds.
	committees *committeeCache

	// thresholds holds the stake-per-seat threshold of each committee
	// build, keyed the same way as acceptedProposals.
	thresholds map[uint64]uint64

	// proposals accumulates stake proposals and absence penalties for the
	// epoch currently in progress.
	proposals proposalLedger

	// acceptedProposals holds each proposal list that produced
	// committees, needed for carry-over accounting at the next boundary
	// and for rebuilding pruned committees. The genesis list is stored
	// under epochs 0 and 1; a boundary that advances to epoch e stores,
	// under e, the list whose committees seat epoch e+1.
	acceptedProposals map[uint64][]AuthorityProposal
}

// NewAuthority builds the engine for a given config, starting from best
// block and replaying the blockchain to figure out the current
// authorities. Construction is infallible given a valid config; an
// invalid config (empty initial authorities, non-positive epoch length
// or seat count) is a programming bug in the caller and panics.
func NewAuthority(config AuthorityConfig, store BlockStore) *Authority {
	if err := config.validate(); err != nil {
		invariantf("invalid authority config: %v", err)
	}

	a := &Authority{
		config:            config,
		committees:        newCommitteeCache(defaultCommitteeCacheSize),
		thresholds:        make(map[uint64]uint64),
		proposals:         newProposalLedger(),
		acceptedProposals: make(map[uint64][]AuthorityProposal),
	}
	a.bootstrap(store)
	return a
}

// ProcessBlockHeader is C4's trigger: it applies a header's proposals and
// absence penalties, then advances the epoch state machine across a
// boundary if the header's index crosses one.
func (a *Authority) ProcessBlockHeader(header *Header) {
	if header.Index == 0 {
		return
	}

	for _, p := range header.Body.AuthorityProposal {
		a.proposals.record(p)
	}

	committee, ok := a.committees.get(header.Index)
	if !ok {
		rebuilt, found := a.rebuildEpochContaining(header.Index)
		if !found {
			invariantf("missing committee for header being processed at index %d", header.Index)
		}
		committee = rebuilt
	}
	if uint64(header.AuthorityMask.Len()) != a.config.NumSeatsPerSlot {
		invariantf("authority mask length %d does not match num_seats_per_slot %d", header.AuthorityMask.Len(), a.config.NumSeatsPerSlot)
	}
	threshold, ok := a.thresholds[a.currentEpoch]
	if !ok {
		invariantf("missing threshold for current epoch %d", a.currentEpoch)
	}
	for i := uint64(0); i < uint64(header.AuthorityMask.Len()); i++ {
		if header.AuthorityMask.BitAt(i) {
			continue
		}
		seat := committee[i]
		a.proposals.penalize(seat.AccountID, seat.PublicKey, threshold)
		absencePenaltiesTotal.Inc()
	}

	headersProcessedTotal.Inc()

	nextEpoch := header.Index / a.config.EpochLength
	if nextEpoch == a.currentEpoch {
		return
	}
	a.transitionBoundary(nextEpoch)
}

// transitionBoundary is the boundary-transition half of C4: it gathers
// the carry-over proposal set, hands it to C2 to build the committees two
// epochs ahead, and advances current_epoch.
func (a *Authority) transitionBoundary(nextEpoch uint64) {
	newProposals := a.collectBoundaryProposals()

	committees, threshold, err := assignSlots(
		newProposals,
		a.config.EpochLength,
		a.config.NumSeatsPerSlot,
		a.currentEpoch,
		boundaryEpochOffset,
		zeroSeed,
	)
	if err != nil {
		// C2 is only ever called here with a proposal set the state
		// machine itself assembled; a failure means some proposed amount
		// is below the epoch's seat count. When every account was
		// penalized away the proposal set is empty, and assignSlots
		// panics on its seat-count check instead (see the all-absent
		// boundary scenario in the package tests).
		invariantf("boundary transition at epoch %d: %v", nextEpoch, err)
	}

	a.committees.putAll(committees)
	a.thresholds[nextEpoch] = threshold
	a.acceptedProposals[nextEpoch] = newProposals
	a.currentEpoch = nextEpoch
	a.proposals = newProposalLedger()

	currentEpochGauge.Set(float64(nextEpoch))
	recordThreshold(nextEpoch, threshold)

	log.WithFields(map[string]interface{}{
		"epoch":     nextEpoch,
		"threshold": threshold,
		"proposals": len(newProposals),
	}).Debug("advanced authority epoch")
}

// collectBoundaryProposals assembles the new proposal set for the
// boundary transition: every account with a positive pending stake this
// epoch, plus every member of the completing committee whose stake
// survived penalties.
func (a *Authority) collectBoundaryProposals() []AuthorityProposal {
	var fresh []AuthorityProposal

	for _, accountID := range a.proposals.sortedAccountIDs() {
		rp := a.proposals[accountID]
		if rp.stake > 0 {
			fresh = append(fresh, AuthorityProposal{
				AccountID: accountID,
				PublicKey: rp.publicKey,
				Amount:    uint64(rp.stake),
			})
		}
	}

	for _, proposal := range a.acceptedProposals[a.currentEpoch] {
		rp, ok := a.proposals[proposal.AccountID]
		var stake int64
		if ok {
			stake = rp.stake
		}
		survives := stake == 0 || (stake < 0 && uint64(-stake) < proposal.Amount)
		if survives {
			fresh = append(fresh, proposal)
		}
	}

	return fresh
}

// GetAuthorities is C5: it returns the committee for a block index, or an
// error naming the current epoch and its index range if the index is
// unknown. Indices up to (currentEpoch+2)*EpochLength are answered.
func (a *Authority) GetAuthorities(index uint64) ([]SelectedAuthority, error) {
	if index == 0 {
		return []SelectedAuthority{}, nil
	}

	committee, ok := a.committees.get(index)
	if !ok {
		rebuilt, found := a.rebuildEpochContaining(index)
		if !found {
			return nil, errors.Wrapf(ErrIndexOutOfWindow,
				"authority for index %d is not found, current epoch %d has indices [%d, %d]",
				index, a.currentEpoch,
				a.currentEpoch*a.config.EpochLength, (a.currentEpoch+1)*a.config.EpochLength)
		}
		committee = rebuilt
	}

	out := make([]SelectedAuthority, len(committee))
	copy(out, committee)
	return out, nil
}

// rebuildEpochContaining recomputes and caches the committees for the
// epoch owning index, using the proposals and threshold recorded for
// that epoch's committees, if index falls within the currently valid
// window. It
// returns the specific committee for index and whether it was found.
func (a *Authority) rebuildEpochContaining(index uint64) ([]SelectedAuthority, bool) {
	epoch := (index - 1) / a.config.EpochLength
	if epoch > a.currentEpoch+1 {
		return nil, false
	}
	// Epochs 0 and 1 hold the genesis committees, recorded under 0. The
	// committees of any later epoch e were built by the boundary that
	// advanced to e-1, which recorded them under e-1.
	key := uint64(0)
	if epoch >= 2 {
		key = epoch - 1
	}
	proposals, ok := a.acceptedProposals[key]
	if !ok {
		return nil, false
	}
	threshold, ok := a.thresholds[key]
	if !ok {
		return nil, false
	}

	committees := rebuildCommittees(proposals, threshold, zeroSeed, epoch, a.config.EpochLength, a.config.NumSeatsPerSlot)
	a.committees.putAll(committees)

	committee, ok := committees[index]
	if !ok {
		return nil, false
	}
	return committee, true
}

// CurrentEpoch returns the most recent epoch fully committed.
func (a *Authority) CurrentEpoch() uint64 {
	return a.currentEpoch
}
