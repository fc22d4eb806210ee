package casper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindThreshold(t *testing.T) {
	tests := []struct {
		name      string
		amounts   []uint64
		numSeats  uint64
		want      uint64
		wantError bool
	}{
		{
			name:     "four equal proposals four seats",
			amounts:  []uint64{100, 100, 100, 100},
			numSeats: 4,
			want:     100,
		},
		{
			name:     "uneven proposals split across seats",
			amounts:  []uint64{300, 300, 300},
			numSeats: 6,
			want:     150,
		},
		{
			name:     "single proposal covering all seats",
			amounts:  []uint64{50},
			numSeats: 2,
			want:     25,
		},
		{
			name:      "amount below seat count is rejected",
			amounts:   []uint64{1, 100},
			numSeats:  2,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindThreshold(tt.amounts, tt.numSeats)
			if tt.wantError {
				require.Error(t, err)
				require.True(t, isInvalidProposals(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, seatsCovered(tt.amounts, got), tt.numSeats)
		})
	}
}

func isInvalidProposals(err error) bool {
	for err != nil {
		if err == ErrInvalidProposals {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
