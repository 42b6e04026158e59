package domain

import (
	"net/url"
	"strings"

	records "freight-console/internal/features/records/domain"
)

// Kind names a family of shipment reference numbers accepted by the carriers'
// shipment-history lookups.
type Kind string

const (
	KindPRO          Kind = "pro"
	KindBOL          Kind = "bol"
	KindPUR          Kind = "pur"
	KindPO           Kind = "po"
	KindLDN          Kind = "ldn"
	KindEXL          Kind = "exl"
	KindInterlinePro Kind = "interlinePro"
)

// Kinds lists every kind in inference priority order.
var Kinds = []Kind{KindPRO, KindBOL, KindPUR, KindPO, KindLDN, KindEXL, KindInterlinePro}

// ParseKind maps a query parameter name onto a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// TrackingNumber is a reference number together with its kind.
type TrackingNumber struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Params returns the lookup parameters carrying this number.
func (n TrackingNumber) Params() LookupParams {
	var p LookupParams
	switch n.Kind {
	case KindPRO:
		p.PRO = n.Value
	case KindBOL:
		p.BOL = n.Value
	case KindPUR:
		p.PUR = n.Value
	case KindPO:
		p.PO = n.Value
	case KindLDN:
		p.LDN = n.Value
	case KindEXL:
		p.EXL = n.Value
	case KindInterlinePro:
		p.InterlinePro = n.Value
	}
	return p
}

// LookupParams is the query handed to a shipment-history lookup.
// At most one field is populated.
type LookupParams struct {
	PRO          string `json:"pro,omitempty"`
	PO           string `json:"po,omitempty"`
	BOL          string `json:"bol,omitempty"`
	PUR          string `json:"pur,omitempty"`
	LDN          string `json:"ldn,omitempty"`
	EXL          string `json:"exl,omitempty"`
	InterlinePro string `json:"interlinePro,omitempty"`
}

// Number returns the populated field as a TrackingNumber.
// It reports false when no field, or more than one, is populated.
func (p LookupParams) Number() (TrackingNumber, bool) {
	var (
		found TrackingNumber
		count int
	)
	for _, kv := range []TrackingNumber{
		{KindPRO, p.PRO},
		{KindBOL, p.BOL},
		{KindPUR, p.PUR},
		{KindPO, p.PO},
		{KindLDN, p.LDN},
		{KindEXL, p.EXL},
		{KindInterlinePro, p.InterlinePro},
	} {
		if strings.TrimSpace(kv.Value) == "" {
			continue
		}
		found = TrackingNumber{Kind: kv.Kind, Value: strings.TrimSpace(kv.Value)}
		count++
	}
	return found, count == 1
}

// Query encodes the populated field as URL query values.
func (p LookupParams) Query() url.Values {
	q := url.Values{}
	if n, ok := p.Number(); ok {
		q.Set(string(n.Kind), n.Value)
	}
	return q
}

var (
	proKeys = []string{"PRO", "proNumber", "pro_number", "proNo", "proNbr"}
	bolKeys = []string{"bolNumber", "bol_number", "bolNbr", "bolId", "BOL", "billOfLadingNumber"}
	purKeys = []string{"PUR", "pickupRequestNumber", "pickup_request_number", "pickupNumber", "pickupConfirmationNumber"}
)

// proEvidence holds one lookup per location and key spelling, so every
// candidate is checked on its own and a malformed PRO never hides a valid one.
var proEvidence = perKeyLookups(proKeys,
	records.Probe{Source: records.SourceOrders},
	records.Probe{Source: records.SourcePickupResponse},
	records.Probe{Source: records.SourcePickupResponse, Path: []string{"data"}},
)

func perKeyLookups(keys []string, locations ...records.Probe) records.Probes {
	out := make(records.Probes, 0, len(keys)*len(locations))
	for _, loc := range locations {
		for _, key := range keys {
			p := loc
			p.Keys = []string{key}
			out = append(out, p)
		}
	}
	return out
}

var otherEvidence = []struct {
	kind   Kind
	probes records.Probes
}{
	{KindBOL, records.Probes{
		{Source: records.SourceBolResponse, Keys: bolKeys},
		{Source: records.SourceBolResponse, Path: []string{"data"}, Keys: bolKeys},
	}},
	{KindPUR, records.Probes{
		{Source: records.SourceRateQuotesResponse, Keys: purKeys},
		{Source: records.SourceRateQuotesResponse, Path: []string{"data"}, Keys: purKeys},
		{Source: records.SourcePickupResponse, Keys: purKeys},
		{Source: records.SourcePickupResponse, Path: []string{"data"}, Keys: purKeys},
	}},
	{KindPO, records.Probes{
		{Source: records.SourceOrders, Keys: []string{"PO", "poNumber", "po_number", "purchaseOrder", "purchaseOrderNumber"}},
	}},
	{KindLDN, records.Probes{
		{Source: records.SourceOrders, Keys: []string{"LDN", "loadNumber", "load_number"}},
	}},
	{KindEXL, records.Probes{
		{Source: records.SourceOrders, Keys: []string{"EXL", "exlNumber", "exl_number"}},
	}},
	{KindInterlinePro, records.Probes{
		{Source: records.SourceOrders, Keys: []string{"interlinePro", "interline_pro", "interlinePRO", "interlineProNumber"}},
	}},
}

// InferTrackingNumber picks the reference number that should pre-populate a
// shipment-history lookup for the record. A PRO is only accepted when it is
// exactly ten digits; anything else falls through to the next kind.
func InferTrackingNumber(r records.OrderRecord) (TrackingNumber, bool) {
	for _, probe := range proEvidence {
		if v, ok := probe.Lookup(r); ok && IsPRO(v) {
			return TrackingNumber{Kind: KindPRO, Value: strings.TrimSpace(v)}, true
		}
	}

	for _, e := range otherEvidence {
		if v, ok := e.probes.Lookup(r); ok {
			return TrackingNumber{Kind: e.kind, Value: strings.TrimSpace(v)}, true
		}
	}

	return TrackingNumber{}, false
}

// IsPRO reports whether s is a ten-digit PRO number.
func IsPRO(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
