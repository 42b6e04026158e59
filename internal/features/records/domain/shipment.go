package domain

import "strings"

// HandlingUnitType is the canonical kind of a handling unit.
type HandlingUnitType string

const (
	HandlingUnitPallet HandlingUnitType = "PALLET"
	HandlingUnitSkid   HandlingUnitType = "SKID"
	HandlingUnitPiece  HandlingUnitType = "PIECE"
)

// ShipmentSummary is the canonical shipment view derived from a record.
// Every field except Type is empty when no source carried it.
type ShipmentSummary struct {
	Type           HandlingUnitType `json:"type"`
	HandlingUnits  string           `json:"handlingUnits"`
	Weight         string           `json:"weight"`
	DestinationZip string           `json:"destinationZip"`
}

// HasEvidence reports whether any of the measured fields was found.
func (s ShipmentSummary) HasEvidence() bool {
	return s.HandlingUnits != "" || s.Weight != "" || s.DestinationZip != ""
}

// HandlingUnitTypeFromCode maps a carrier handling-unit code onto a canonical type.
func HandlingUnitTypeFromCode(code string) HandlingUnitType {
	c := strings.ToUpper(strings.TrimSpace(code))
	switch {
	case c == "PL":
		return HandlingUnitPallet
	case strings.Contains(c, "SKID"):
		return HandlingUnitSkid
	case strings.Contains(c, "PIECE"):
		return HandlingUnitPiece
	default:
		return HandlingUnitPallet
	}
}

var (
	firstHandlingUnit = []string{"commodity", "handlingUnits", "0"}
	destinationAddr   = []string{"destination", "address"}

	unitKeys   = []string{"handlingUnits", "handling_units", "units", "count"}
	weightKeys = []string{"weight", "weightLbs", "weight_lbs"}
	zipKeys    = []string{"destinationZip", "destination_zip", "postalCode", "postal_code"}
)

// quoteEvidence builds the probes shared by the rate-quote request and response blobs.
func quoteEvidence(src Source) (unitType, units, weight, zip Probes) {
	unitType = Probes{{Source: src, Path: firstHandlingUnit, Keys: []string{"type"}}}
	units = Probes{{Source: src, Path: firstHandlingUnit, Keys: []string{"count"}}}
	weight = Probes{{Source: src, Path: firstHandlingUnit, Keys: []string{"weight"}}}
	zip = Probes{{Source: src, Path: destinationAddr, Keys: []string{"postalCode"}}}
	return
}

// ExtractShipmentSummary folds shipment evidence from a record's blobs.
// Sources are consulted in order and only fill fields that are still empty:
// rate-quote request, rate-quote response, marketplace order, BOL response.
func ExtractShipmentSummary(r OrderRecord) ShipmentSummary {
	summary := ShipmentSummary{Type: HandlingUnitPallet}
	typeSet := false

	fill := func(dst *string, probes Probes) {
		if *dst != "" {
			return
		}
		if v, ok := probes.Lookup(r); ok {
			*dst = v
		}
	}

	for _, src := range []Source{SourceRateQuotesRequest, SourceRateQuotesResponse} {
		unitType, units, weight, zip := quoteEvidence(src)
		if !typeSet {
			if code, ok := unitType.Lookup(r); ok {
				summary.Type = HandlingUnitTypeFromCode(code)
				typeSet = true
			}
		}
		fill(&summary.HandlingUnits, units)
		fill(&summary.Weight, weight)
		fill(&summary.DestinationZip, zip)
	}

	fill(&summary.HandlingUnits, Probes{{Source: SourceOrders, Keys: unitKeys}})
	fill(&summary.Weight, Probes{{Source: SourceOrders, Keys: weightKeys}})
	fill(&summary.DestinationZip, Probes{
		{Source: SourceOrders, Keys: zipKeys},
		{Source: SourceOrders, Path: destinationAddr, Keys: []string{"postalCode"}},
	})

	fill(&summary.DestinationZip, Probes{
		{Source: SourceBolResponse, Path: destinationAddr, Keys: []string{"postalCode"}},
		{Source: SourceBolResponse, Path: []string{"consignee"}, Keys: []string{"postalCode", "postal_code", "zipCode"}},
	})
	fill(&summary.Weight, Probes{{Source: SourceBolResponse, Keys: weightKeys}})
	fill(&summary.HandlingUnits, Probes{{Source: SourceBolResponse, Keys: unitKeys}})

	return summary
}

// RecordSummary pairs a summary with the record it came from.
type RecordSummary struct {
	RecordID string          `json:"recordId"`
	Summary  ShipmentSummary `json:"summary"`
}

// SummarizeShipments extracts summaries for a batch of records, in order,
// dropping records that carry no shipment evidence at all.
func SummarizeShipments(records []OrderRecord) []RecordSummary {
	all := make([]RecordSummary, 0, len(records))
	for _, r := range records {
		all = append(all, RecordSummary{RecordID: r.ID, Summary: ExtractShipmentSummary(r)})
	}
	return WithEvidence(all)
}

// WithEvidence keeps, in order, the summaries that carry shipment evidence.
func WithEvidence(summaries []RecordSummary) []RecordSummary {
	out := make([]RecordSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.Summary.HasEvidence() {
			out = append(out, s)
		}
	}
	return out
}
