package domain

import records "freight-console/internal/features/records/domain"

// Submission is the outcome of sending a BOL request to a carrier relay.
type Submission struct {
	Carrier  records.Carrier `json:"carrier"`
	Request  any             `json:"request"`
	Response records.Blob    `json:"response"`
	// RecordID is the record the response was attached to, if any.
	RecordID string `json:"recordId,omitempty"`
	// RecordUpdated is false when the carrier accepted the BOL but saving
	// the response on the record failed.
	RecordUpdated bool `json:"recordUpdated"`
}
