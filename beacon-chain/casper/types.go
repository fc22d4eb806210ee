package casper

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// AuthorityProposal is a stake declaration recorded on chain: an account
// staking weight behind a public key in the hope of earning a seat.
type AuthorityProposal struct {
	AccountID string
	PublicKey []byte
	Amount    uint64
}

// SelectedAuthority is a seat occupant: a proposal stripped of its amount
// once it has been converted into signing authority.
type SelectedAuthority struct {
	AccountID string
	PublicKey []byte
}

// AuthorityConfig configures the rotation engine. It is immutable once
// passed to NewAuthority.
type AuthorityConfig struct {
	// InitialAuthorities seed the genesis committee. Must be non-empty.
	InitialAuthorities []AuthorityProposal
	// EpochLength is the number of slots per epoch. Must be positive.
	EpochLength uint64
	// NumSeatsPerSlot is the number of seats filled per slot. Must be positive.
	NumSeatsPerSlot uint64
}

func (c AuthorityConfig) validate() error {
	if len(c.InitialAuthorities) == 0 {
		return errors.New("initial_authorities must be non-empty")
	}
	if c.EpochLength == 0 {
		return errors.New("epoch_length must be positive")
	}
	if c.NumSeatsPerSlot == 0 {
		return errors.New("num_seats_per_slot must be positive")
	}
	return nil
}

// totalSeats returns the number of seats that must be filled for one epoch.
func (c AuthorityConfig) totalSeats() uint64 {
	return c.EpochLength * c.NumSeatsPerSlot
}

// Body is the authority-relevant subset of a beacon block body.
type Body struct {
	AuthorityProposal []AuthorityProposal
}

// Header is the authority-relevant subset of a signed beacon block header,
// as delivered by the block store. The engine never validates headers
// structurally; that is assumed to have already happened upstream.
type Header struct {
	Index         uint64
	Body          Body
	AuthorityMask bitfield.Bitlist
	BlockHash     common.Hash
}

// BlockStore is the external collaborator that delivers headers by index
// and reports the chain's best index. Implemented outside this package;
// the engine only ever calls through this contract.
type BlockStore interface {
	BestBlockIndex() uint64
	GetHeaderByIndex(index uint64) (*Header, bool)
}

// zeroSeed is the constant shuffle seed used at genesis and at every epoch
// boundary. This is a known limitation carried over from the reference
// implementation: committee assignment is not unpredictable to an attacker
// who already knows the proposal set. See shuffle.go.
var zeroSeed common.Hash
