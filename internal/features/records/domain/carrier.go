package domain

// Carrier identifies which carrier integration produced a record.
type Carrier string

const (
	CarrierEstes   Carrier = "ESTES"
	CarrierXPO     Carrier = "XPO"
	CarrierUnknown Carrier = "UNKNOWN"
)

// ParseCarrier maps free text onto a Carrier. Unrecognized text is CarrierUnknown.
func ParseCarrier(s string) Carrier {
	switch normalizedText(s) {
	case "estes":
		return CarrierEstes
	case "xpo", "expo":
		return CarrierXPO
	default:
		return CarrierUnknown
	}
}

// Known reports whether c is a concrete carrier.
func (c Carrier) Known() bool {
	return c == CarrierEstes || c == CarrierXPO
}

var shippingCompanyKeys = []string{
	"shippingCompany",
	"shipping_company",
	"shippingCompanyName",
	"company",
	"carrier",
}

// carrierEvidence is checked in order. The request blob is the caller's own
// choice of carrier; the marketplace order is the weakest signal.
var carrierEvidence = []Probes{
	{
		{Source: SourceRateQuotesRequest, Keys: shippingCompanyKeys},
	},
	{
		{Source: SourceRateQuotesResponse, Keys: shippingCompanyKeys},
		{Source: SourceRateQuotesResponse, Path: []string{"data"}, Keys: shippingCompanyKeys},
	},
	{
		{Source: SourceBolResponse, Keys: shippingCompanyKeys},
		{Source: SourceBolResponse, Path: []string{"data"}, Keys: shippingCompanyKeys},
	},
	{
		{Source: SourcePickupResponse, Keys: shippingCompanyKeys},
		{Source: SourcePickupResponse, Path: []string{"data"}, Keys: shippingCompanyKeys},
	},
	{
		{Source: SourceOrders, Keys: []string{"carrier", "logisticsCompany"}},
	},
}

// ClassifyCarrier decides which carrier produced a record. Each step
// contributes only the first value it finds; an unrecognized value moves on
// to the next step rather than ending the search.
func ClassifyCarrier(r OrderRecord) Carrier {
	for _, step := range carrierEvidence {
		v, ok := step.Lookup(r)
		if !ok {
			continue
		}
		if c := ParseCarrier(v); c.Known() {
			return c
		}
	}
	return CarrierUnknown
}
