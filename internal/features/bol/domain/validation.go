package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	records "freight-console/internal/features/records/domain"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is one human-readable problem with a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a form misses business fields the carrier
// needs to accept the BOL.
type ValidationError struct {
	Carrier records.Carrier `json:"carrier"`
	Fields  []FieldError    `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s BOL form is incomplete: %s", strings.ToLower(string(e.Carrier)), strings.Join(msgs, "; "))
}

const nonBlank = `{"type": "string", "pattern": "\\S"}`

var estesFormSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"originName": ` + nonBlank + `,
		"originAddress1": ` + nonBlank + `,
		"originCity": ` + nonBlank + `,
		"originState": ` + nonBlank + `,
		"originZip": ` + nonBlank + `,
		"destinationName": ` + nonBlank + `,
		"destinationAddress1": ` + nonBlank + `,
		"destinationCity": ` + nonBlank + `,
		"destinationState": ` + nonBlank + `,
		"destinationZip": ` + nonBlank + `,
		"billToName": ` + nonBlank + `,
		"billToAddress1": ` + nonBlank + `,
		"billToCity": ` + nonBlank + `,
		"billToState": ` + nonBlank + `,
		"billToZip": ` + nonBlank + `,
		"shipDate": {"type": "string", "pattern": "^$|^\\d{4}-\\d{2}-\\d{2}$"},
		"handlingUnits": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"quantity": {"type": "integer", "minimum": 1},
					"weight": {"type": "number", "exclusiveMinimum": 0},
					"class": ` + nonBlank + `
				}
			}
		}
	}
}`

var xpoLocationSchema = `{
	"type": "object",
	"properties": {
		"company": ` + nonBlank + `,
		"addressLine1": ` + nonBlank + `,
		"city": ` + nonBlank + `,
		"state": ` + nonBlank + `,
		"postalCode": ` + nonBlank + `
	}
}`

var xpoFormSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"pickupLocation": ` + xpoLocationSchema + `,
		"deliveryLocation": ` + xpoLocationSchema + `,
		"proPreference": {"enum": ["", "auto", "preassigned", "none"]},
		"commodities": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"pieceCnt": {"type": "integer", "minimum": 1},
					"desc": ` + nonBlank + `,
					"packaging": {
						"type": "object",
						"properties": {"packageCd": ` + nonBlank + `}
					},
					"grossWeight": {
						"type": "object",
						"properties": {"weight": {"type": "number", "exclusiveMinimum": 0}}
					}
				}
			}
		}
	},
	"if": {"properties": {"proPreference": {"const": "preassigned"}}},
	"then": {"properties": {"preassignedPro": {"type": "string", "pattern": "^\\s*\\d{10}\\s*$"}}}
}`

var estesLabels = map[string]string{
	"originName":               "Origin name",
	"originAddress1":           "Origin address",
	"originCity":               "Origin city",
	"originState":              "Origin state",
	"originZip":                "Origin postal code",
	"destinationName":          "Destination name",
	"destinationAddress1":      "Destination address",
	"destinationCity":          "Destination city",
	"destinationState":         "Destination state",
	"destinationZip":           "Destination postal code",
	"billToName":               "Bill-to name",
	"billToAddress1":           "Bill-to address",
	"billToCity":               "Bill-to city",
	"billToState":              "Bill-to state",
	"billToZip":                "Bill-to postal code",
	"shipDate":                 "Ship date",
	"handlingUnits":            "Handling units",
	"handlingUnits.*.quantity": "Handling unit %d quantity",
	"handlingUnits.*.weight":   "Handling unit %d weight",
	"handlingUnits.*.class":    "Handling unit %d freight class",
}

var xpoLabels = map[string]string{
	"pickupLocation.company":            "Pickup company",
	"pickupLocation.addressLine1":       "Pickup address",
	"pickupLocation.city":               "Pickup city",
	"pickupLocation.state":              "Pickup state",
	"pickupLocation.postalCode":         "Pickup postal code",
	"deliveryLocation.company":          "Delivery company",
	"deliveryLocation.addressLine1":     "Delivery address",
	"deliveryLocation.city":             "Delivery city",
	"deliveryLocation.state":            "Delivery state",
	"deliveryLocation.postalCode":       "Delivery postal code",
	"proPreference":                     "PRO preference",
	"preassignedPro":                    "Pre-assigned PRO number",
	"commodities":                       "Commodities",
	"commodities.*.pieceCnt":            "Commodity %d piece count",
	"commodities.*.desc":                "Commodity %d description",
	"commodities.*.packaging.packageCd": "Commodity %d packaging",
	"commodities.*.grossWeight.weight":  "Commodity %d weight",
}

var (
	schemaOnce             sync.Once
	estesSchema, xpoSchema *gojsonschema.Schema
	schemaErr              error
)

func loadSchemas() error {
	schemaOnce.Do(func() {
		estesSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(estesFormSchema))
		if schemaErr != nil {
			return
		}
		xpoSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(xpoFormSchema))
	})
	return schemaErr
}

// ValidateEstesForm checks the fields Estes needs. It returns a
// *ValidationError listing every problem, or nil.
func ValidateEstesForm(f EstesFormState) error {
	if err := loadSchemas(); err != nil {
		return fmt.Errorf("failed to load estes schema: %w", err)
	}
	if f.HandlingUnits == nil {
		f.HandlingUnits = []EstesHandlingUnit{}
	}
	return validate(estesSchema, records.CarrierEstes, estesLabels, f)
}

// ValidateXpoForm checks the fields XPO needs. It returns a
// *ValidationError listing every problem, or nil.
func ValidateXpoForm(f XpoFormState) error {
	if err := loadSchemas(); err != nil {
		return fmt.Errorf("failed to load xpo schema: %w", err)
	}
	if f.Commodities == nil {
		f.Commodities = []XpoCommodity{}
	}
	return validate(xpoSchema, records.CarrierXPO, xpoLabels, f)
}

func validate(schema *gojsonschema.Schema, carrier records.Carrier, labels map[string]string, form any) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(form))
	if err != nil {
		return fmt.Errorf("failed to validate %s form: %w", strings.ToLower(string(carrier)), err)
	}
	if result.Valid() {
		return nil
	}

	seen := map[string]bool{}
	var fields []FieldError
	for _, re := range result.Errors() {
		// if/then failures are reported again on the offending property.
		if re.Type() == "condition_then" || re.Type() == "condition_else" {
			continue
		}
		field := re.Field()
		if seen[field] {
			continue
		}
		seen[field] = true
		fields = append(fields, FieldError{
			Field:   field,
			Message: fieldMessage(labels, field, re),
		})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	return &ValidationError{Carrier: carrier, Fields: fields}
}

func fieldMessage(labels map[string]string, field string, re gojsonschema.ResultError) string {
	label := fieldLabel(labels, field)

	switch re.Type() {
	case "pattern":
		if v, ok := re.Value().(string); ok && strings.TrimSpace(v) != "" {
			return label + " is invalid"
		}
		return label + " is required"
	case "invalid_type":
		return label + " is required"
	case "array_min_items":
		return "At least one entry is required in " + strings.ToLower(label)
	case "number_gt":
		return label + " must be greater than 0"
	case "number_gte":
		return label + " must be at least 1"
	case "enum":
		return label + " is not a recognized option"
	default:
		return label + ": " + re.Description()
	}
}

// fieldLabel resolves "handlingUnits.2.weight" against the label pattern
// "handlingUnits.*.weight", numbering items from one.
func fieldLabel(labels map[string]string, field string) string {
	segments := strings.Split(field, ".")
	var indices []any
	for i, seg := range segments {
		if n, err := strconv.Atoi(seg); err == nil {
			segments[i] = "*"
			indices = append(indices, n+1)
		}
	}

	label, ok := labels[strings.Join(segments, ".")]
	if !ok {
		return field
	}
	if len(indices) > 0 {
		return fmt.Sprintf(label, indices...)
	}
	return label
}
