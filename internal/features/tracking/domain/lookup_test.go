package domain

import (
	"testing"

	records "freight-console/internal/features/records/domain"

	"github.com/stretchr/testify/assert"
)

func TestInferTrackingNumber(t *testing.T) {
	tests := []struct {
		name   string
		record records.OrderRecord
		want   TrackingNumber
		found  bool
	}{
		{
			name:   "PRO from marketplace order",
			record: records.OrderRecord{OrdersJSONB: records.Blob{"#PRO": "0123456789", "PO": "PO-1"}},
			want:   TrackingNumber{Kind: KindPRO, Value: "0123456789"},
			found:  true,
		},
		{
			name: "PRO from pickup response when order has none",
			record: records.OrderRecord{
				OrdersJSONB:         records.Blob{"PO": "PO-1"},
				PickupResponseJSONB: records.Blob{"data": map[string]any{"proNumber": 1234567890}},
			},
			want:  TrackingNumber{Kind: KindPRO, Value: "1234567890"},
			found: true,
		},
		{
			name: "Short PRO falls through to PO",
			record: records.OrderRecord{
				OrdersJSONB: records.Blob{"pro": "12345", "poNumber": "PO-77"},
			},
			want:  TrackingNumber{Kind: KindPO, Value: "PO-77"},
			found: true,
		},
		{
			name: "Malformed order PRO does not hide pickup PRO",
			record: records.OrderRecord{
				OrdersJSONB:         records.Blob{"pro": "ABC-123"},
				PickupResponseJSONB: records.Blob{"pro_number": "9988776655"},
			},
			want:  TrackingNumber{Kind: KindPRO, Value: "9988776655"},
			found: true,
		},
		{
			name:   "Malformed PRO does not hide a valid spelling in the same blob",
			record: records.OrderRecord{OrdersJSONB: records.Blob{"PRO": "12345", "proNumber": "1234567890"}},
			want:   TrackingNumber{Kind: KindPRO, Value: "1234567890"},
			found:  true,
		},
		{
			name: "BOL before PUR",
			record: records.OrderRecord{
				BolResponseJSONB:        records.Blob{"data": map[string]any{"bolNumber": "B-100"}},
				RateQuotesResponseJSONB: records.Blob{"PUR": "P-1"},
			},
			want:  TrackingNumber{Kind: KindBOL, Value: "B-100"},
			found: true,
		},
		{
			name: "PUR from pickup response",
			record: records.OrderRecord{
				PickupResponseJSONB: records.Blob{"pickupRequestNumber": "PUR-5"},
				OrdersJSONB:         records.Blob{"LDN": "L-1"},
			},
			want:  TrackingNumber{Kind: KindPUR, Value: "PUR-5"},
			found: true,
		},
		{
			name:   "LDN before EXL",
			record: records.OrderRecord{OrdersJSONB: records.Blob{"exl": "X-1", "loadNumber": "L-9"}},
			want:   TrackingNumber{Kind: KindLDN, Value: "L-9"},
			found:  true,
		},
		{
			name:   "Interline PRO last",
			record: records.OrderRecord{OrdersJSONB: records.Blob{"interlinePro": "I-3"}},
			want:   TrackingNumber{Kind: KindInterlinePro, Value: "I-3"},
			found:  true,
		},
		{
			name:   "Short PRO alone yields nothing",
			record: records.OrderRecord{OrdersJSONB: records.Blob{"pro": "12345"}},
			found:  false,
		},
		{
			name:   "Empty record",
			record: records.OrderRecord{},
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InferTrackingNumber(tt.record)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrackingNumber_Params(t *testing.T) {
	p := TrackingNumber{Kind: KindPUR, Value: "PUR-5"}.Params()
	assert.Equal(t, LookupParams{PUR: "PUR-5"}, p)
	assert.Equal(t, "pur=PUR-5", p.Query().Encode())

	n, ok := p.Number()
	assert.True(t, ok)
	assert.Equal(t, TrackingNumber{Kind: KindPUR, Value: "PUR-5"}, n)
}

func TestLookupParams_Number(t *testing.T) {
	_, ok := LookupParams{}.Number()
	assert.False(t, ok)

	_, ok = LookupParams{PRO: "0123456789", PO: "PO-1"}.Number()
	assert.False(t, ok, "more than one field populated")

	assert.Empty(t, LookupParams{PRO: "1", BOL: "2"}.Query())
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("interlinepro")
	assert.True(t, ok)
	assert.Equal(t, KindInterlinePro, k)

	_, ok = ParseKind("awb")
	assert.False(t, ok)
}

func TestIsPRO(t *testing.T) {
	assert.True(t, IsPRO("0123456789"))
	assert.True(t, IsPRO(" 0123456789 "))
	assert.False(t, IsPRO("12345"))
	assert.False(t, IsPRO("012345678X"))
	assert.False(t, IsPRO("01234567890"))
}
