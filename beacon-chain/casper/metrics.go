package casper

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	currentEpochGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "casper_current_epoch",
		Help: "Most recent epoch fully committed by the authority rotation engine.",
	})
	thresholdGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "casper_seat_threshold",
		Help: "Stake-per-seat threshold used to build an epoch's committees.",
	}, []string{"epoch"})
	headersProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casper_headers_processed_total",
		Help: "Number of block headers processed by the authority rotation engine.",
	})
	absencePenaltiesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casper_absence_penalties_total",
		Help: "Number of absence penalties applied to recorded proposals.",
	})
)

func recordThreshold(epoch, threshold uint64) {
	thresholdGauge.WithLabelValues(strconv.FormatUint(epoch, 10)).Set(float64(threshold))
}
