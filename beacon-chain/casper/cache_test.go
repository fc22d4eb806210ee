package casper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitteeCachePutGet(t *testing.T) {
	c := newCommitteeCache(4)
	committee := []SelectedAuthority{{AccountID: "alice"}, {AccountID: "bob"}}

	_, ok := c.get(1)
	require.False(t, ok)

	c.put(1, committee)
	got, ok := c.get(1)
	require.True(t, ok)
	require.Equal(t, committee, got)
}

func TestCommitteeCachePutAll(t *testing.T) {
	c := newCommitteeCache(4)
	committees := map[uint64][]SelectedAuthority{
		1: {{AccountID: "alice"}},
		2: {{AccountID: "bob"}},
	}
	c.putAll(committees)

	for index, want := range committees {
		got, ok := c.get(index)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestCommitteeCacheEvictsUnderPressure(t *testing.T) {
	c := newCommitteeCache(1)
	c.put(1, []SelectedAuthority{{AccountID: "alice"}})
	c.put(2, []SelectedAuthority{{AccountID: "bob"}})

	_, ok := c.get(1)
	require.False(t, ok, "oldest entry should be evicted once capacity is exceeded")

	got, ok := c.get(2)
	require.True(t, ok)
	require.Equal(t, "bob", got[0].AccountID)
}
