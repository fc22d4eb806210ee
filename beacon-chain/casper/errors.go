package casper

import "github.com/pkg/errors"

// ErrInvalidProposals is returned by FindThreshold when some proposed
// amount is lower than the number of seats being solved for.
var ErrInvalidProposals = errors.New("proposed amount is lower than the number of seats")

// ErrIndexOutOfWindow is returned by GetAuthorities when the requested
// index falls outside of the currently cached committee window.
var ErrIndexOutOfWindow = errors.New("authority index out of window")

// invariantf panics with a formatted message. It marks conditions the
// caller is required to have prevented: a missing committee or threshold
// for a header already accepted into the chain, or a malformed config.
// These are programming bugs, not conditions callers can recover from.
func invariantf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
