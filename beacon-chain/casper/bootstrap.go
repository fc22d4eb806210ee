package casper

// bootstrap is C6. It seeds committees for epochs 0 and 1 from the
// genesis config, then replays every header from index 1 up to (but not
// including) the store's best index through the epoch state machine, so
// that a freshly constructed engine reaches the same state as one that
// processed every header as it arrived.
func (a *Authority) bootstrap(store BlockStore) {
	committees, threshold, err := assignSlots(
		a.config.InitialAuthorities,
		a.config.EpochLength,
		a.config.NumSeatsPerSlot,
		0,
		initialEpochOffset,
		zeroSeed,
	)
	if err != nil {
		invariantf("genesis authority config does not produce a valid committee: %v", err)
	}

	// Initial authorities operate for the first two epochs: duplicate the
	// epoch-0 committees into the epoch-1 slots directly, rather than
	// reshuffling, so that both epochs are backed by the same seats.
	a.committees.putAll(committees)
	for index, committee := range committees {
		a.committees.put(index+a.config.EpochLength, committee)
	}

	a.thresholds[0] = threshold
	a.thresholds[1] = threshold
	a.acceptedProposals[0] = a.config.InitialAuthorities
	a.acceptedProposals[1] = a.config.InitialAuthorities
	currentEpochGauge.Set(0)
	recordThreshold(0, threshold)
	recordThreshold(1, threshold)

	best := store.BestBlockIndex()
	for index := uint64(1); index < best; index++ {
		header, ok := store.GetHeaderByIndex(index)
		if !ok {
			// The store failing to produce a header below its own best
			// index is almost certainly a bug in the store; replay logs a
			// warning and skips the index rather than failing.
			log.WithField("index", index).Warn("block store could not produce header during replay; skipping")
			continue
		}
		a.ProcessBlockHeader(header)
	}
}
