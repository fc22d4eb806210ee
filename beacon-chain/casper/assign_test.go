package casper

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func testProposals() []AuthorityProposal {
	return []AuthorityProposal{
		{AccountID: "alice", PublicKey: []byte("alice-key"), Amount: 100},
		{AccountID: "bob", PublicKey: []byte("bob-key"), Amount: 100},
		{AccountID: "carol", PublicKey: []byte("carol-key"), Amount: 100},
		{AccountID: "dave", PublicKey: []byte("dave-key"), Amount: 100},
	}
}

func TestAssignSlotsGenesis(t *testing.T) {
	committees, threshold, err := assignSlots(testProposals(), 2, 2, 0, initialEpochOffset, zeroSeed)
	require.NoError(t, err)
	require.Equal(t, uint64(100), threshold)
	require.Len(t, committees, 2)

	seen := make(map[string]int)
	for index, committee := range committees {
		require.True(t, index == 1 || index == 2, "unexpected index %d", index)
		require.Len(t, committee, 2)
		for _, seat := range committee {
			seen[seat.AccountID]++
		}
	}
	require.Len(t, seen, 4)
	for _, count := range seen {
		require.Equal(t, 1, count)
	}
}

func TestAssignSlotsIsDeterministic(t *testing.T) {
	committeesA, thresholdA, err := assignSlots(testProposals(), 2, 2, 5, boundaryEpochOffset, zeroSeed)
	require.NoError(t, err)
	committeesB, thresholdB, err := assignSlots(testProposals(), 2, 2, 5, boundaryEpochOffset, zeroSeed)
	require.NoError(t, err)

	require.Equal(t, thresholdA, thresholdB)
	require.Equal(t, committeesA, committeesB)
}

func TestAssignSlotsDifferentSeedsDiffer(t *testing.T) {
	var otherSeed common.Hash
	otherSeed[0] = 0xff

	many := []AuthorityProposal{
		{AccountID: "a1", Amount: 10}, {AccountID: "a2", Amount: 10},
		{AccountID: "a3", Amount: 10}, {AccountID: "a4", Amount: 10},
		{AccountID: "a5", Amount: 10}, {AccountID: "a6", Amount: 10},
		{AccountID: "a7", Amount: 10}, {AccountID: "a8", Amount: 10},
	}

	committeesA, _, err := assignSlots(many, 4, 2, 0, initialEpochOffset, zeroSeed)
	require.NoError(t, err)
	committeesB, _, err := assignSlots(many, 4, 2, 0, initialEpochOffset, otherSeed)
	require.NoError(t, err)

	require.NotEqual(t, committeesA, committeesB)
}

func TestAssignSlotsRejectsUnderfundedProposals(t *testing.T) {
	_, _, err := assignSlots([]AuthorityProposal{{AccountID: "tiny", Amount: 1}}, 2, 2, 0, initialEpochOffset, zeroSeed)
	require.Error(t, err)
}

func TestRebuildCommitteesMatchesAssignSlots(t *testing.T) {
	committees, threshold, err := assignSlots(testProposals(), 2, 2, 3, boundaryEpochOffset, zeroSeed)
	require.NoError(t, err)

	rebuilt := rebuildCommittees(testProposals(), threshold, zeroSeed, 3+boundaryEpochOffset, 2, 2)
	require.Equal(t, committees, rebuilt)
}
