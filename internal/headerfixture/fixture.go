// Package headerfixture loads a JSON fixture of headers into an
// in-memory block store, standing in for the real P2P/DB-backed block
// store when driving the authority rotation engine from the command
// line (see cmd/authority-replay).
package headerfixture

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"

	"github.com/chainlabs/authority-rotation/beacon-chain/casper"
	"github.com/chainlabs/authority-rotation/blockstore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

type proposal struct {
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key"`
	Amount    uint64 `json:"amount"`
}

type header struct {
	Index              uint64     `json:"index"`
	AuthorityProposals []proposal `json:"authority_proposals"`
	AuthorityMask      []bool     `json:"authority_mask"`
	BlockHash          string     `json:"block_hash"`
}

// Load reads a JSON array of headers from path and inserts them into a
// fresh in-memory block store.
func Load(path string) (*blockstore.Memory, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read header fixture")
	}

	var headers []header
	if err := json.Unmarshal(raw, &headers); err != nil {
		return nil, errors.Wrap(err, "could not parse header fixture")
	}

	store := blockstore.NewMemory()
	for _, h := range headers {
		proposals := make([]casper.AuthorityProposal, len(h.AuthorityProposals))
		for i, p := range h.AuthorityProposals {
			key, err := hex.DecodeString(p.PublicKey)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid public key for account %s", p.AccountID)
			}
			proposals[i] = casper.AuthorityProposal{
				AccountID: p.AccountID,
				PublicKey: key,
				Amount:    p.Amount,
			}
		}

		mask := bitfield.NewBitlist(uint64(len(h.AuthorityMask)))
		for i, bit := range h.AuthorityMask {
			mask.SetBitAt(uint64(i), bit)
		}

		var blockHash common.Hash
		if h.BlockHash != "" {
			blockHash = common.HexToHash(h.BlockHash)
		}

		store.Insert(&casper.Header{
			Index:         h.Index,
			Body:          casper.Body{AuthorityProposal: proposals},
			AuthorityMask: mask,
			BlockHash:     blockHash,
		})
	}
	return store, nil
}
