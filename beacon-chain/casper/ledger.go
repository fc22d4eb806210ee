package casper

import "sort"

// recordedProposal is the in-epoch accumulator for one account. Positive
// stake is a pending proposal; negative stake is accumulated absence
// penalty against an account that held a seat and missed it.
type recordedProposal struct {
	publicKey []byte
	stake     int64
}

// proposalLedger is C3: it accumulates positive stake proposals and
// negative participation penalties over the course of one epoch.
type proposalLedger map[string]*recordedProposal

func newProposalLedger() proposalLedger {
	return make(proposalLedger)
}

// record overwrites the ledger entry for an account with a fresh proposal.
// A later proposal from the same account in the same epoch replaces an
// earlier one outright, public key included.
func (l proposalLedger) record(p AuthorityProposal) {
	l[p.AccountID] = &recordedProposal{
		publicKey: p.PublicKey,
		stake:     int64(p.Amount),
	}
}

// penalize subtracts threshold from the account's recorded stake, creating
// a zero-initialized entry if the account has not proposed this epoch.
// Penalties stack across missed slots within the same epoch.
func (l proposalLedger) penalize(accountID string, publicKey []byte, threshold uint64) {
	rp, ok := l[accountID]
	if !ok {
		rp = &recordedProposal{publicKey: publicKey, stake: 0}
		l[accountID] = rp
	}
	rp.stake -= int64(threshold)
}

// sortedAccountIDs returns the ledger's account IDs in a total order, so
// that the boundary transition produces the same input to the slot
// assigner on every node regardless of map iteration order.
func (l proposalLedger) sortedAccountIDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
