package domain

import (
	"math"
	"strings"
)

// Estes wire constants.
const (
	EstesVersion        = "v2.0.1"
	EstesFunctionCreate = "Create"
	EstesLineItemLayout = "Nested"

	defaultEstesRequestorRole = "Shipper"
	defaultEstesPaymentTerms  = "Prepaid"
	defaultEstesUnitType      = "PAT"
)

// estesAccessorialCodes maps the accessorial labels offered in the form to
// Estes codes. Labels missing from the table are not sent.
var estesAccessorialCodes = map[string]string{
	"Appointment Request":          "APPT",
	"Lift-Gate Service (Delivery)": "LFTD",
	"Residential Delivery":         "RES",
}

var estesUnitTypeCodes = map[string]string{
	"PALLET": "PAT",
	"SKID":   "SKD",
	"CRATE":  "CRT",
	"BOX":    "BOX",
}

// EstesFormState is the flat Estes BOL form as the console edits it.
type EstesFormState struct {
	ShipDate            string `json:"shipDate"` // YYYY-MM-DD
	IsTest              bool   `json:"isTest"`
	RequestorRole       string `json:"requestorRole"`
	PaymentTerms        string `json:"paymentTerms"`
	SpecialInstructions string `json:"specialInstructions"`

	OriginName         string `json:"originName"`
	OriginAddress1     string `json:"originAddress1"`
	OriginAddress2     string `json:"originAddress2"`
	OriginCity         string `json:"originCity"`
	OriginState        string `json:"originState"`
	OriginZip          string `json:"originZip"`
	OriginCountry      string `json:"originCountry"`
	OriginContactName  string `json:"originContactName"`
	OriginContactPhone string `json:"originContactPhone"`
	OriginContactEmail string `json:"originContactEmail"`

	DestinationName         string `json:"destinationName"`
	DestinationAddress1     string `json:"destinationAddress1"`
	DestinationAddress2     string `json:"destinationAddress2"`
	DestinationCity         string `json:"destinationCity"`
	DestinationState        string `json:"destinationState"`
	DestinationZip          string `json:"destinationZip"`
	DestinationCountry      string `json:"destinationCountry"`
	DestinationContactName  string `json:"destinationContactName"`
	DestinationContactPhone string `json:"destinationContactPhone"`
	DestinationContactEmail string `json:"destinationContactEmail"`

	BillToName         string `json:"billToName"`
	BillToAddress1     string `json:"billToAddress1"`
	BillToAddress2     string `json:"billToAddress2"`
	BillToCity         string `json:"billToCity"`
	BillToState        string `json:"billToState"`
	BillToZip          string `json:"billToZip"`
	BillToCountry      string `json:"billToCountry"`
	BillToContactName  string `json:"billToContactName"`
	BillToContactPhone string `json:"billToContactPhone"`
	BillToContactEmail string `json:"billToContactEmail"`

	HandlingUnits []EstesHandlingUnit `json:"handlingUnits"`
	Accessorials  []string            `json:"accessorials"`

	QuoteID          string `json:"quoteId"`
	PONumber         string `json:"poNumber"`
	ShipperReference string `json:"shipperReference"`

	IncludeBolImage       bool     `json:"includeBolImage"`
	IncludeShippingLabels bool     `json:"includeShippingLabels"`
	ImageEmails           []string `json:"imageEmails"`
	LabelFormat           string   `json:"labelFormat"`
	LabelQuantity         int      `json:"labelQuantity"`
	LabelPosition         int      `json:"labelPosition"`

	BolEmails      []string `json:"bolEmails"`
	TrackingEmails []string `json:"trackingEmails"`
}

// EstesHandlingUnit is one handling unit row of the form. Weight, class and
// NMFC are entered per unit and copied onto every line item.
type EstesHandlingUnit struct {
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	Description   string          `json:"description"`
	Weight        float64         `json:"weight"`
	WeightUnit    string          `json:"weightUnit"` // lbs (default) or kg
	Length        float64         `json:"length"`
	Width         float64         `json:"width"`
	Height        float64         `json:"height"`
	DimensionUnit string          `json:"dimensionUnit"` // in (default), cm or ft
	Class         string          `json:"class"`
	NMFC          string          `json:"nmfc"`
	NMFCSub       string          `json:"nmfcSub"`
	DoNotStack    bool            `json:"doNotStack"`
	Hazardous     bool            `json:"hazardous"`
	Items         []EstesLineItem `json:"items"`
}

// EstesLineItem is one line item inside a handling unit.
type EstesLineItem struct {
	Description   string `json:"description"`
	Pieces        int    `json:"pieces"`
	PackagingType string `json:"packagingType"`
}

// EstesBolRequest is the Estes BOL API payload.
type EstesBolRequest struct {
	Version          string                 `json:"version"`
	Bol              EstesBol               `json:"bol"`
	Payment          EstesPayment           `json:"payment"`
	Origin           EstesParty             `json:"origin"`
	Destination      EstesParty             `json:"destination"`
	BillTo           EstesParty             `json:"billTo"`
	Commodities      EstesCommodities       `json:"commodities"`
	Accessorials     EstesAccessorials      `json:"accessorials"`
	Images           EstesImages            `json:"images"`
	Notifications    []EstesNotification    `json:"notifications"`
	ReferenceNumbers *EstesReferenceNumbers `json:"referenceNumbers,omitempty"`
}

type EstesBol struct {
	Function            string `json:"function"`
	IsTest              bool   `json:"isTest"`
	RequestorRole       string `json:"requestorRole"`
	RequestedPickupDate string `json:"requestedPickupDate,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type EstesPayment struct {
	Terms string `json:"terms"`
}

type EstesParty struct {
	Name          string        `json:"name"`
	Address1      string        `json:"address1"`
	Address2      string        `json:"address2,omitempty"`
	City          string        `json:"city"`
	StateProvince string        `json:"stateProvince"`
	PostalCode    string        `json:"postalCode"`
	Country       string        `json:"country"`
	Contact       *EstesContact `json:"contact,omitempty"`
}

type EstesContact struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type EstesCommodities struct {
	LineItemLayout string                  `json:"lineItemLayout"`
	HandlingUnits  []EstesWireHandlingUnit `json:"handlingUnits"`
}

type EstesWireHandlingUnit struct {
	Count     int                 `json:"count"`
	Type      string              `json:"type"`
	Length    float64             `json:"length,omitempty"`
	Width     float64             `json:"width,omitempty"`
	Height    float64             `json:"height,omitempty"`
	Stackable bool                `json:"stackable"`
	Hazardous bool                `json:"hazardous"`
	LineItems []EstesWireLineItem `json:"lineItems"`
}

type EstesWireLineItem struct {
	Description    string  `json:"description"`
	Weight         float64 `json:"weight"`
	Pieces         int     `json:"pieces"`
	PackagingType  string  `json:"packagingType"`
	Classification string  `json:"classification,omitempty"`
	NMFC           string  `json:"nmfc,omitempty"`
	NMFCSub        string  `json:"nmfcSub,omitempty"`
	Hazardous      bool    `json:"hazardous"`
}

type EstesAccessorials struct {
	Codes []string `json:"codes"`
}

type EstesImages struct {
	IncludeBol            bool                 `json:"includeBol"`
	IncludeShippingLabels bool                 `json:"includeShippingLabels"`
	Email                 EstesImageEmail      `json:"email"`
	ShippingLabels        *EstesShippingLabels `json:"shippingLabels,omitempty"`
}

type EstesImageEmail struct {
	IncludeBol    bool     `json:"includeBol"`
	IncludeLabels bool     `json:"includeLabels"`
	Addresses     []string `json:"addresses"`
}

type EstesShippingLabels struct {
	Format   string `json:"format"`
	Quantity int    `json:"quantity"`
	Position int    `json:"position,omitempty"`
}

type EstesNotification struct {
	Email string `json:"email"`
}

type EstesReferenceNumbers struct {
	QuoteID          string    `json:"quoteID,omitempty"`
	ShipperReference string    `json:"shipperReference,omitempty"`
	PO               []EstesPO `json:"po,omitempty"`
}

type EstesPO struct {
	PONumber string `json:"poNumber"`
}

// BuildEstesBolRequest maps the form onto the Estes BOL payload. It never
// fails; required-field checks belong to ValidateEstesForm.
func BuildEstesBolRequest(f EstesFormState) EstesBolRequest {
	req := EstesBolRequest{
		Version: EstesVersion,
		Bol: EstesBol{
			Function:            EstesFunctionCreate,
			IsTest:              f.IsTest,
			RequestorRole:       orDefault(f.RequestorRole, defaultEstesRequestorRole),
			SpecialInstructions: strings.TrimSpace(f.SpecialInstructions),
		},
		Payment: EstesPayment{Terms: orDefault(f.PaymentTerms, defaultEstesPaymentTerms)},
		Origin: estesParty(f.OriginName, f.OriginAddress1, f.OriginAddress2, f.OriginCity, f.OriginState,
			f.OriginZip, f.OriginCountry, f.OriginContactName, f.OriginContactPhone, f.OriginContactEmail),
		Destination: estesParty(f.DestinationName, f.DestinationAddress1, f.DestinationAddress2, f.DestinationCity, f.DestinationState,
			f.DestinationZip, f.DestinationCountry, f.DestinationContactName, f.DestinationContactPhone, f.DestinationContactEmail),
		BillTo: estesParty(f.BillToName, f.BillToAddress1, f.BillToAddress2, f.BillToCity, f.BillToState,
			f.BillToZip, f.BillToCountry, f.BillToContactName, f.BillToContactPhone, f.BillToContactEmail),
		Commodities: EstesCommodities{
			LineItemLayout: EstesLineItemLayout,
			HandlingUnits:  make([]EstesWireHandlingUnit, 0, len(f.HandlingUnits)),
		},
		Accessorials: EstesAccessorials{Codes: estesAccessorials(f.Accessorials)},
		Images: EstesImages{
			IncludeBol:            f.IncludeBolImage,
			IncludeShippingLabels: f.IncludeShippingLabels,
			Email: EstesImageEmail{
				IncludeBol:    f.IncludeBolImage,
				IncludeLabels: f.IncludeShippingLabels,
				Addresses:     uniqueEmails(f.ImageEmails),
			},
		},
		ReferenceNumbers: estesReferences(f),
	}

	if date := strings.TrimSpace(f.ShipDate); date != "" {
		req.Bol.RequestedPickupDate = date + "T00:00:00+00:00"
	}

	for _, hu := range f.HandlingUnits {
		req.Commodities.HandlingUnits = append(req.Commodities.HandlingUnits, estesHandlingUnit(hu))
	}

	if format := strings.TrimSpace(f.LabelFormat); format != "" {
		req.Images.ShippingLabels = &EstesShippingLabels{
			Format:   format,
			Quantity: max(f.LabelQuantity, 1),
			Position: f.LabelPosition,
		}
	}

	notifications := uniqueEmails(f.BolEmails, f.TrackingEmails)
	req.Notifications = make([]EstesNotification, 0, len(notifications))
	for _, email := range notifications {
		req.Notifications = append(req.Notifications, EstesNotification{Email: email})
	}

	return req
}

func estesParty(name, addr1, addr2, city, state, zip, country, contactName, phone, email string) EstesParty {
	p := EstesParty{
		Name:          strings.TrimSpace(name),
		Address1:      strings.TrimSpace(addr1),
		Address2:      strings.TrimSpace(addr2),
		City:          strings.TrimSpace(city),
		StateProvince: strings.TrimSpace(state),
		PostalCode:    strings.TrimSpace(zip),
		Country:       orDefault(country, "US"),
	}

	contact := EstesContact{
		Name:  strings.TrimSpace(contactName),
		Phone: digitsOnly(phone),
		Email: strings.TrimSpace(email),
	}
	if contact != (EstesContact{}) {
		p.Contact = &contact
	}
	return p
}

func estesHandlingUnit(hu EstesHandlingUnit) EstesWireHandlingUnit {
	unitType := estesUnitType(hu.Type)
	weight := toPounds(hu.Weight, hu.WeightUnit)

	out := EstesWireHandlingUnit{
		Count:     hu.Quantity,
		Type:      unitType,
		Length:    toInches(hu.Length, hu.DimensionUnit),
		Width:     toInches(hu.Width, hu.DimensionUnit),
		Height:    toInches(hu.Height, hu.DimensionUnit),
		Stackable: !hu.DoNotStack,
		Hazardous: hu.Hazardous,
	}

	item := func(description string, pieces int, packaging string) EstesWireLineItem {
		return EstesWireLineItem{
			Description:    strings.TrimSpace(description),
			Weight:         weight,
			Pieces:         pieces,
			PackagingType:  orDefault(packaging, unitType),
			Classification: strings.TrimSpace(hu.Class),
			NMFC:           strings.TrimSpace(hu.NMFC),
			NMFCSub:        strings.TrimSpace(hu.NMFCSub),
			Hazardous:      hu.Hazardous,
		}
	}

	if len(hu.Items) == 0 {
		out.LineItems = []EstesWireLineItem{item(hu.Description, hu.Quantity, "")}
		return out
	}

	out.LineItems = make([]EstesWireLineItem, 0, len(hu.Items))
	for _, li := range hu.Items {
		out.LineItems = append(out.LineItems, item(orDefault(li.Description, hu.Description), li.Pieces, li.PackagingType))
	}
	return out
}

func estesUnitType(t string) string {
	if code, ok := estesUnitTypeCodes[strings.ToUpper(strings.TrimSpace(t))]; ok {
		return code
	}
	return defaultEstesUnitType
}

func estesAccessorials(labels []string) []string {
	codes := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		code, ok := estesAccessorialCodes[strings.TrimSpace(label)]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

func estesReferences(f EstesFormState) *EstesReferenceNumbers {
	refs := EstesReferenceNumbers{
		QuoteID:          strings.TrimSpace(f.QuoteID),
		ShipperReference: strings.TrimSpace(f.ShipperReference),
	}
	if po := strings.TrimSpace(f.PONumber); po != "" {
		refs.PO = []EstesPO{{PONumber: po}}
	}
	if refs.QuoteID == "" && refs.ShipperReference == "" && len(refs.PO) == 0 {
		return nil
	}
	return &refs
}

const (
	poundsPerKilogram  = 2.20462
	centimetersPerInch = 2.54
	inchesPerFoot      = 12
)

// toPounds converts a weight to pounds, rounded to two decimals.
func toPounds(w float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg", "kgs":
		w *= poundsPerKilogram
	}
	return round2(w)
}

// toInches converts a length to inches, rounded to two decimals.
func toInches(d float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "cm":
		d /= centimetersPerInch
	case "ft":
		d *= inchesPerFoot
	}
	return round2(d)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
