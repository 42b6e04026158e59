package domain

import (
	"encoding/json"
	"maps"
)

// Upload is a file attached to an order record.
type Upload struct {
	ID       string `json:"id,omitempty"`
	FileName string `json:"fileName,omitempty"`
	URL      string `json:"url,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// RawOrderRecord is a record exactly as the store delivered it. Each *Jsonb
// field may be an object, a JSON-encoded string, null, or missing.
type RawOrderRecord struct {
	ID                      string   `json:"id"`
	SKU                     string   `json:"sku"`
	Marketplace             string   `json:"marketplace"`
	Status                  string   `json:"status"`
	OrdersJSONB             any      `json:"ordersJsonb"`
	RateQuotesRequestJSONB  any      `json:"rateQuotesRequestJsonb"`
	RateQuotesResponseJSONB any      `json:"rateQuotesResponseJsonb"`
	BolResponseJSONB        any      `json:"bolResponseJsonb"`
	PickupResponseJSONB     any      `json:"pickupResponseJsonb"`
	Uploads                 []Upload `json:"uploads"`
	CreatedAt               string   `json:"createdAt"`
	UpdatedAt               string   `json:"updatedAt"`
}

// Normalize returns the record with every *Jsonb field normalized.
func (r RawOrderRecord) Normalize() OrderRecord {
	return OrderRecord{
		ID:                      r.ID,
		SKU:                     r.SKU,
		Marketplace:             r.Marketplace,
		Status:                  r.Status,
		OrdersJSONB:             NormalizeJSONField(r.OrdersJSONB),
		RateQuotesRequestJSONB:  NormalizeJSONField(r.RateQuotesRequestJSONB),
		RateQuotesResponseJSONB: NormalizeJSONField(r.RateQuotesResponseJSONB),
		BolResponseJSONB:        NormalizeJSONField(r.BolResponseJSONB),
		PickupResponseJSONB:     NormalizeJSONField(r.PickupResponseJSONB),
		Uploads:                 r.Uploads,
		CreatedAt:               r.CreatedAt,
		UpdatedAt:               r.UpdatedAt,
	}
}

// OrderRecord is a stored order whose JSON sub-objects are normalized:
// each is either an object or nil.
type OrderRecord struct {
	ID                      string   `json:"id"`
	SKU                     string   `json:"sku,omitempty"`
	Marketplace             string   `json:"marketplace,omitempty"`
	Status                  string   `json:"status,omitempty"`
	OrdersJSONB             Blob     `json:"ordersJsonb"`
	RateQuotesRequestJSONB  Blob     `json:"rateQuotesRequestJsonb"`
	RateQuotesResponseJSONB Blob     `json:"rateQuotesResponseJsonb"`
	BolResponseJSONB        Blob     `json:"bolResponseJsonb"`
	PickupResponseJSONB     Blob     `json:"pickupResponseJsonb"`
	Uploads                 []Upload `json:"uploads,omitempty"`
	CreatedAt               string   `json:"createdAt,omitempty"`
	UpdatedAt               string   `json:"updatedAt,omitempty"`
}

// UnmarshalJSON decodes a record and normalizes its JSON fields on the way in.
func (r *OrderRecord) UnmarshalJSON(data []byte) error {
	var raw RawOrderRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = raw.Normalize()
	return nil
}

// Source names one of the JSON sub-objects of a record.
type Source string

const (
	SourceOrders             Source = "ordersJsonb"
	SourceRateQuotesRequest  Source = "rateQuotesRequestJsonb"
	SourceRateQuotesResponse Source = "rateQuotesResponseJsonb"
	SourceBolResponse        Source = "bolResponseJsonb"
	SourcePickupResponse     Source = "pickupResponseJsonb"
)

// Blob returns the normalized sub-object named by source.
func (r OrderRecord) Blob(source Source) Blob {
	switch source {
	case SourceOrders:
		return r.OrdersJSONB
	case SourceRateQuotesRequest:
		return r.RateQuotesRequestJSONB
	case SourceRateQuotesResponse:
		return r.RateQuotesResponseJSONB
	case SourceBolResponse:
		return r.BolResponseJSONB
	case SourcePickupResponse:
		return r.PickupResponseJSONB
	default:
		return nil
	}
}

// WithBolResponse returns a copy of the record carrying a new BOL response.
func (r OrderRecord) WithBolResponse(resp Blob) OrderRecord {
	out := r.clone()
	out.BolResponseJSONB = maps.Clone(resp)
	return out
}

// WithPickupResponse returns a copy of the record carrying a new pickup response.
func (r OrderRecord) WithPickupResponse(resp Blob) OrderRecord {
	out := r.clone()
	out.PickupResponseJSONB = maps.Clone(resp)
	return out
}

func (r OrderRecord) clone() OrderRecord {
	out := r
	out.Uploads = append([]Upload(nil), r.Uploads...)
	return out
}
