package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CarrierClassifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_classifications_total",
			Help: "Total number of records classified, by resulting carrier",
		},
		[]string{"carrier"},
	)

	BolRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bol_requests_total",
			Help: "Total number of BOL requests handled, by carrier and outcome",
		},
		[]string{"carrier", "outcome"},
	)

	ShipmentSummaries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_summaries_total",
			Help: "Total number of shipment summaries extracted in batch, by result",
		},
		[]string{"result"},
	)

	TrackingLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_lookups_total",
			Help: "Total number of shipment-history lookups, by carrier, number kind and outcome",
		},
		[]string{"carrier", "kind", "outcome"},
	)
)

// Outcome labels shared by the counters.
const (
	OutcomeBuilt     = "built"
	OutcomeSubmitted = "submitted"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeFound     = "found"
	OutcomeEmitted   = "emitted"
	OutcomeDropped   = "dropped"
)
