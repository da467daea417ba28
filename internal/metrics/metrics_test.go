package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"similar_groups/internal/metrics"
)

func TestObserveLookup(t *testing.T) {
	rq := require.New(t)

	count := func(outcome string) float64 {
		families, err := prometheus.DefaultGatherer.Gather()
		rq.NoError(err)

		for _, family := range families {
			if family.GetName() != "similar_groups_lookups_total" {
				continue
			}

			for _, metric := range family.GetMetric() {
				for _, label := range metric.GetLabel() {
					if label.GetName() == "outcome" && label.GetValue() == outcome {
						return metric.GetCounter().GetValue()
					}
				}
			}
		}

		return 0
	}

	before := count(metrics.OutcomeNotFound)

	metrics.ObserveLookup(metrics.OutcomeNotFound, 2)
	metrics.ObserveLookup(metrics.OutcomeNotFound, 1)

	rq.InDelta(before+2, count(metrics.OutcomeNotFound), 0.001)
}

func TestSetReferenceRecords(t *testing.T) {
	rq := require.New(t)

	metrics.SetReferenceRecords(42)

	families, err := prometheus.DefaultGatherer.Gather()
	rq.NoError(err)

	for _, family := range families {
		if family.GetName() == "similar_groups_reference_records" {
			rq.InDelta(42, family.GetMetric()[0].GetGauge().GetValue(), 0.001)

			return
		}
	}

	rq.Fail("reference records gauge is not registered")
}
