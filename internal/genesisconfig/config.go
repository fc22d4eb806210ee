// Package genesisconfig loads an AuthorityConfig from a YAML genesis
// file, the way the teacher node loads its own genesis and chain
// configuration files.
package genesisconfig

import (
	"encoding/hex"
	"io/ioutil"

	"github.com/chainlabs/authority-rotation/beacon-chain/casper"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// proposal is the wire shape of one genesis authority proposal: public
// keys are hex-encoded in the YAML file since they are raw bytes.
type proposal struct {
	AccountID string `json:"account_id"`
	PublicKey string `json:"public_key"`
	Amount    uint64 `json:"amount"`
}

// document is the wire shape of a genesis config file.
type document struct {
	InitialAuthorities []proposal `json:"initial_authorities"`
	EpochLength        uint64     `json:"epoch_length"`
	NumSeatsPerSlot    uint64     `json:"num_seats_per_slot"`
}

// Load reads and decodes a genesis YAML file into an AuthorityConfig.
func Load(path string) (casper.AuthorityConfig, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return casper.AuthorityConfig{}, errors.Wrap(err, "could not read genesis config")
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return casper.AuthorityConfig{}, errors.Wrap(err, "could not parse genesis config")
	}

	authorities := make([]casper.AuthorityProposal, len(doc.InitialAuthorities))
	for i, p := range doc.InitialAuthorities {
		key, err := hex.DecodeString(p.PublicKey)
		if err != nil {
			return casper.AuthorityConfig{}, errors.Wrapf(err, "invalid public key for account %s", p.AccountID)
		}
		authorities[i] = casper.AuthorityProposal{
			AccountID: p.AccountID,
			PublicKey: key,
			Amount:    p.Amount,
		}
	}

	return casper.AuthorityConfig{
		InitialAuthorities: authorities,
		EpochLength:        doc.EpochLength,
		NumSeatsPerSlot:    doc.NumSeatsPerSlot,
	}, nil
}
