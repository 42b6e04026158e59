package domain

import (
	"time"

	records "freight-console/internal/features/records/domain"
)

// TrackingStatus represents the current global status of a shipment.
type TrackingStatus string

const (
	// TrackingStatusProcessing indicates the shipment is booked but not yet picked up.
	TrackingStatusProcessing TrackingStatus = "PROCESSING"
	// TrackingStatusInTransit indicates the freight is moving between terminals.
	TrackingStatusInTransit TrackingStatus = "IN_TRANSIT"
	// TrackingStatusOutForDelivery indicates the freight is on the delivery trailer.
	TrackingStatusOutForDelivery TrackingStatus = "OUT_FOR_DELIVERY"
	// TrackingStatusCompleted indicates the shipment has been delivered.
	TrackingStatusCompleted TrackingStatus = "COMPLETED"
	// TrackingStatusIncidence indicates an exception such as damage, refusal or delay.
	TrackingStatusIncidence TrackingStatus = "INCIDENCE"
)

// TrackingHistory represents the complete tracking information for a shipment.
type TrackingHistory struct {
	// Carrier is the carrier that answered the lookup.
	Carrier records.Carrier `json:"carrier"`
	// Number is the reference number the lookup was made with.
	Number TrackingNumber `json:"number"`
	// GlobalStatus is the overall status of the shipment.
	GlobalStatus TrackingStatus `json:"global_status"`
	// History contains the chronological events for the shipment.
	History []TrackingEvent `json:"history"`
}

// TrackingEvent represents a single event in the shipment's tracking history.
type TrackingEvent struct {
	// Date is the timestamp when the event occurred.
	Date time.Time `json:"date"`
	// Text is the description of the tracking event.
	Text string `json:"text"`
	// City is the location where the event occurred.
	City string `json:"city"`
	// Code is the carrier-specific status code for this event.
	Code string `json:"code"`
}
