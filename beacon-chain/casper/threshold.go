package casper

import "github.com/pkg/errors"

// FindThreshold is C1: given a non-empty sequence of positive stake
// amounts and a total seat count, it finds the maximum integer T >= 1
// such that the amounts collectively cover all seats, i.e.
//
//	sum(amount / T) >= numSeats
//
// It fails if any single amount is strictly lower than numSeats, since
// such a proposer could never be assigned a whole seat's worth of stake
// at the unit threshold.
func FindThreshold(amounts []uint64, numSeats uint64) (uint64, error) {
	var sum uint64
	for _, amount := range amounts {
		if amount < numSeats {
			return 0, errors.Wrapf(ErrInvalidProposals, "proposed %d must not be lower than number of seats %d", amount, numSeats)
		}
		sum += amount
	}

	left, right, result := uint64(2), sum, uint64(1)
	for left <= right {
		mid := left + (right-left)/2
		if seatsCovered(amounts, mid) >= numSeats {
			result = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return result, nil
}

// seatsCovered returns the number of seats the amounts collectively fill
// at the given threshold.
func seatsCovered(amounts []uint64, threshold uint64) uint64 {
	var seats uint64
	for _, amount := range amounts {
		seats += amount / threshold
	}
	return seats
}
