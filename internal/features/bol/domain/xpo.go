package domain

import (
	"strings"
	"time"
)

// PRO number preferences offered by the XPO form.
const (
	ProPreferenceAuto        = "auto"
	ProPreferencePreassigned = "preassigned"
	ProPreferenceNone        = "none"
)

const (
	defaultXpoRequesterRole = "S"
	defaultXpoChargeTo      = "P"
	xpoTimestampLayout      = "2006-01-02T15:04:05-07:00"
)

// XpoFormState is the XPO BOL form as the console edits it.
type XpoFormState struct {
	RequesterRole string `json:"requesterRole"`
	ChargeToCd    string `json:"chargeToCd"`

	PickupLocation   XpoLocation  `json:"pickupLocation"`
	DeliveryLocation XpoLocation  `json:"deliveryLocation"`
	BillTo           *XpoLocation `json:"billTo,omitempty"` // nil or blank means bill the pickup location

	Commodities        []XpoCommodity `json:"commodities"`
	AdditionalServices []string       `json:"additionalServices"`
	References         []XpoReference `json:"references"`

	Remarks                 string  `json:"remarks"`
	EmergencyContactName    string  `json:"emergencyContactName"`
	EmergencyContactPhone   string  `json:"emergencyContactPhone"`
	DeclaredValue           float64 `json:"declaredValue"`
	ExcessLiabilityInitials string  `json:"excessLiabilityInitials"`

	SchedulePickup       bool   `json:"schedulePickup"`
	PickupDate           string `json:"pickupDate"`      // YYYY-MM-DD
	PickupReadyTime      string `json:"pickupReadyTime"` // HH:MM
	PickupCloseTime      string `json:"pickupCloseTime"` // HH:MM
	TimezoneOffset       int    `json:"timezoneOffset"`  // minutes, positive west of UTC
	PickupContactCompany string `json:"pickupContactCompany"`
	PickupContactName    string `json:"pickupContactName"`
	PickupContactPhone   string `json:"pickupContactPhone"`

	ProPreference  string `json:"proPreference"`
	PreassignedPro string `json:"preassignedPro"`
}

// XpoLocation is a pickup, delivery or bill-to party.
type XpoLocation struct {
	Company      string `json:"company"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// IsBlank reports whether every field is empty after trimming.
func (l XpoLocation) IsBlank() bool {
	for _, s := range []string{l.Company, l.AddressLine1, l.AddressLine2, l.City, l.State, l.PostalCode, l.Country, l.ContactName, l.Phone, l.Email} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// XpoCommodity is one commodity row. Packaging and weight are nested the way
// the XPO API nests them so that single-field edits can be merged in place.
type XpoCommodity struct {
	PieceCnt    int          `json:"pieceCnt"`
	Packaging   XpoPackaging `json:"packaging"`
	GrossWeight XpoWeight    `json:"grossWeight"`
	Desc        string       `json:"desc"`
	NmfcClass   string       `json:"nmfcClass"`
	NmfcItemCd  string       `json:"nmfcItemCd"`
	HazmatInd   bool         `json:"hazmatInd"`
}

type XpoPackaging struct {
	PackageCd     string  `json:"packageCd"`
	PackageLength float64 `json:"packageLength,omitempty"`
	PackageWidth  float64 `json:"packageWidth,omitempty"`
	PackageHeight float64 `json:"packageHeight,omitempty"`
	PackageDimUom string  `json:"packageDimUom,omitempty"`
}

type XpoWeight struct {
	Weight    float64 `json:"weight"`
	WeightUom string  `json:"weightUom,omitempty"`
}

// XpoReference is a supplemental reference number.
type XpoReference struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

// XpoBolRequest is the XPO BOL API payload.
type XpoBolRequest struct {
	Bol           XpoBol `json:"bol"`
	AutoAssignPro bool   `json:"autoAssignPro"`
}

type XpoBol struct {
	Requester                 XpoRequester   `json:"requester"`
	Consignee                 XpoParty       `json:"consignee"`
	Shipper                   XpoParty       `json:"shipper"`
	BillToCust                XpoParty       `json:"billToCust"`
	CommodityLine             []XpoCommodity `json:"commodityLine"`
	ChargeToCd                string         `json:"chargeToCd"`
	Remarks                   string         `json:"remarks,omitempty"`
	EmergencyContactName      string         `json:"emergencyContactName"`
	EmergencyContactPhone     XpoPhone       `json:"emergencyContactPhone"`
	AdditionalService         []string       `json:"additionalService"`
	SuppRef                   *XpoSuppRef    `json:"suppRef,omitempty"`
	DeclaredValueAmt          *XpoAmount     `json:"declaredValueAmt,omitempty"`
	ExcessLiabilityChargeInit string         `json:"excessLiabilityChargeInit,omitempty"`
	PickupInfo                *XpoPickupInfo `json:"pickupInfo,omitempty"`
	ProNbr                    string         `json:"proNbr,omitempty"`
}

type XpoRequester struct {
	Role string `json:"role"`
}

type XpoParty struct {
	Address     XpoAddress      `json:"address"`
	ContactInfo *XpoContactInfo `json:"contactInfo,omitempty"`
}

type XpoAddress struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	CityName     string `json:"cityName"`
	StateCd      string `json:"stateCd"`
	CountryCd    string `json:"countryCd"`
	PostalCd     string `json:"postalCd"`
}

type XpoContactInfo struct {
	CompanyName string    `json:"companyName,omitempty"`
	FullName    string    `json:"fullName,omitempty"`
	Phone       *XpoPhone `json:"phone,omitempty"`
	Email       *XpoEmail `json:"email,omitempty"`
}

type XpoPhone struct {
	PhoneNbr string `json:"phoneNbr"`
}

type XpoEmail struct {
	EmailAddr string `json:"emailAddr"`
}

type XpoSuppRef struct {
	OtherRefs []XpoOtherRef `json:"otherRefs"`
}

type XpoOtherRef struct {
	ReferenceCode string `json:"referenceCode"`
	Reference     string `json:"reference"`
}

type XpoAmount struct {
	Amt        float64 `json:"amt"`
	CurrencyCd string  `json:"currencyCd"`
}

type XpoPickupInfo struct {
	PkupDate      string         `json:"pkupDate"`
	PkupTime      string         `json:"pkupTime"`
	DockCloseTime string         `json:"dockCloseTime"`
	Contact       XpoContactInfo `json:"contact"`
}

// BuildXpoBolRequest maps the form onto the XPO BOL payload. It never fails;
// required-field checks belong to ValidateXpoForm.
func BuildXpoBolRequest(f XpoFormState) XpoBolRequest {
	billTo := f.PickupLocation
	if f.BillTo != nil && !f.BillTo.IsBlank() {
		billTo = *f.BillTo
	}

	bol := XpoBol{
		Requester:             XpoRequester{Role: orDefault(f.RequesterRole, defaultXpoRequesterRole)},
		Consignee:             xpoParty(f.DeliveryLocation),
		Shipper:               xpoParty(f.PickupLocation),
		BillToCust:            xpoParty(billTo),
		CommodityLine:         make([]XpoCommodity, 0, len(f.Commodities)),
		ChargeToCd:            orDefault(f.ChargeToCd, defaultXpoChargeTo),
		Remarks:               strings.TrimSpace(f.Remarks),
		EmergencyContactName:  strings.TrimSpace(f.EmergencyContactName),
		EmergencyContactPhone: XpoPhone{PhoneNbr: digitsOnly(f.EmergencyContactPhone)},
		AdditionalService:     []string{},
		SuppRef:               xpoSuppRef(f.References),
		PickupInfo:            xpoPickupInfo(f),
	}

	for _, c := range f.Commodities {
		bol.CommodityLine = append(bol.CommodityLine, xpoCommodityLine(c))
	}

	for _, svc := range f.AdditionalServices {
		if svc = strings.TrimSpace(svc); svc != "" {
			bol.AdditionalService = append(bol.AdditionalService, svc)
		}
	}

	if f.DeclaredValue > 0 {
		bol.DeclaredValueAmt = &XpoAmount{Amt: round2(f.DeclaredValue), CurrencyCd: "USD"}
	}
	if initials := strings.TrimSpace(f.ExcessLiabilityInitials); initials != "" {
		bol.ExcessLiabilityChargeInit = strings.ToUpper(initials)
	}

	preference := strings.ToLower(strings.TrimSpace(f.ProPreference))
	if preference == ProPreferencePreassigned {
		bol.ProNbr = strings.TrimSpace(f.PreassignedPro)
	}

	return XpoBolRequest{
		Bol:           bol,
		AutoAssignPro: preference == ProPreferenceAuto,
	}
}

func xpoParty(l XpoLocation) XpoParty {
	p := XpoParty{
		Address: XpoAddress{
			Name:         strings.TrimSpace(l.Company),
			AddressLine1: strings.TrimSpace(l.AddressLine1),
			AddressLine2: strings.TrimSpace(l.AddressLine2),
			CityName:     strings.TrimSpace(l.City),
			StateCd:      strings.ToUpper(strings.TrimSpace(l.State)),
			CountryCd:    orDefault(l.Country, "US"),
			PostalCd:     strings.TrimSpace(l.PostalCode),
		},
	}

	contact := XpoContactInfo{
		CompanyName: strings.TrimSpace(l.Company),
		FullName:    strings.TrimSpace(l.ContactName),
	}
	if phone := digitsOnly(l.Phone); phone != "" {
		contact.Phone = &XpoPhone{PhoneNbr: phone}
	}
	if email := strings.TrimSpace(l.Email); email != "" {
		contact.Email = &XpoEmail{EmailAddr: email}
	}
	if contact.FullName != "" || contact.Phone != nil || contact.Email != nil {
		p.ContactInfo = &contact
	}
	return p
}

func xpoCommodityLine(c XpoCommodity) XpoCommodity {
	c.Packaging.PackageCd = strings.ToUpper(strings.TrimSpace(c.Packaging.PackageCd))
	c.Packaging.PackageDimUom = strings.TrimSpace(c.Packaging.PackageDimUom)
	c.GrossWeight.Weight = round2(c.GrossWeight.Weight)
	c.GrossWeight.WeightUom = strings.TrimSpace(c.GrossWeight.WeightUom)
	c.Desc = strings.TrimSpace(c.Desc)
	c.NmfcClass = strings.TrimSpace(c.NmfcClass)
	c.NmfcItemCd = strings.TrimSpace(c.NmfcItemCd)
	return c
}

func xpoSuppRef(refs []XpoReference) *XpoSuppRef {
	var other []XpoOtherRef
	for _, r := range refs {
		value := strings.TrimSpace(r.Value)
		if value == "" {
			continue
		}
		other = append(other, XpoOtherRef{
			ReferenceCode: orDefault(r.Code, "OTHR"),
			Reference:     value,
		})
	}
	if len(other) == 0 {
		return nil
	}
	return &XpoSuppRef{OtherRefs: other}
}

// xpoPickupInfo is only emitted for a fully described pickup window.
func xpoPickupInfo(f XpoFormState) *XpoPickupInfo {
	if !f.SchedulePickup {
		return nil
	}

	company := strings.TrimSpace(f.PickupContactCompany)
	name := strings.TrimSpace(f.PickupContactName)
	phone := digitsOnly(f.PickupContactPhone)
	if company == "" || name == "" || phone == "" {
		return nil
	}

	zone := ClientZone(f.TimezoneOffset)
	date, okDate := localTimestamp(f.PickupDate, "00:00", zone)
	ready, okReady := localTimestamp(f.PickupDate, f.PickupReadyTime, zone)
	closing, okClose := localTimestamp(f.PickupDate, f.PickupCloseTime, zone)
	if !okDate || !okReady || !okClose {
		return nil
	}

	return &XpoPickupInfo{
		PkupDate:      date,
		PkupTime:      ready,
		DockCloseTime: closing,
		Contact: XpoContactInfo{
			CompanyName: company,
			FullName:    name,
			Phone:       &XpoPhone{PhoneNbr: phone},
		},
	}
}

// ClientZone converts a browser timezone offset (minutes, positive when the
// zone is behind UTC) into a fixed zone.
func ClientZone(offsetMinutes int) *time.Location {
	return time.FixedZone("", -offsetMinutes*60)
}

// localTimestamp renders date and clock in zone as ISO-8601 with a numeric offset.
func localTimestamp(date, clock string, zone *time.Location) (string, bool) {
	date, clock = strings.TrimSpace(date), strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return "", false
	}

	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, date+" "+clock, zone); err == nil {
			return t.Format(xpoTimestampLayout), true
		}
	}
	return "", false
}
