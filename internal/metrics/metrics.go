package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "similar_groups"

const (
	OutcomeFound         = "found"
	OutcomeMalformedCode = "malformed_code"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)

//nolint:gochecknoglobals
var (
	lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Similar group lookups by outcome.",
	}, []string{"outcome"})

	lookupCodes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookup_codes_total",
		Help:      "Candidate codes received in lookup requests.",
	})

	referenceRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reference_records",
		Help:      "Rows in the reference store after the startup load.",
	})
)

func ObserveLookup(outcome string, codes int) {
	lookups.WithLabelValues(outcome).Inc()
	lookupCodes.Add(float64(codes))
}

func SetReferenceRecords(n int) {
	referenceRecords.Set(float64(n))
}
