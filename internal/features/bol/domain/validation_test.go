package domain

import (
	"errors"
	"testing"

	records "freight-console/internal/features/records/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEstesForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form := estesForm()
		form.HandlingUnits[0].Class = "85"
		assert.NoError(t, ValidateEstesForm(form))
	})

	t.Run("MissingFields", func(t *testing.T) {
		form := estesForm()
		form.DestinationCity = "  "
		form.HandlingUnits[0].Weight = 0
		form.ShipDate = "14/03/2025"

		err := ValidateEstesForm(form)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, records.CarrierEstes, verr.Carrier)
		assert.Equal(t, []FieldError{
			{Field: "destinationCity", Message: "Destination city is required"},
			{Field: "handlingUnits.0.weight", Message: "Handling unit 1 weight must be greater than 0"},
			{Field: "shipDate", Message: "Ship date is invalid"},
		}, verr.Fields)
		assert.Contains(t, err.Error(), "Destination city is required")
	})

	t.Run("NoHandlingUnits", func(t *testing.T) {
		form := estesForm()
		form.HandlingUnits = nil

		var verr *ValidationError
		require.ErrorAs(t, ValidateEstesForm(form), &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "handlingUnits", verr.Fields[0].Field)
	})
}

func TestValidateXpoForm(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, ValidateXpoForm(xpoForm()))
	})

	t.Run("MissingFields", func(t *testing.T) {
		form := xpoForm()
		form.DeliveryLocation.City = ""
		form.Commodities[0].Packaging.PackageCd = ""
		form.Commodities[0].PieceCnt = 0

		var verr *ValidationError
		require.ErrorAs(t, ValidateXpoForm(form), &verr)
		assert.Equal(t, records.CarrierXPO, verr.Carrier)
		assert.Equal(t, []FieldError{
			{Field: "commodities.0.packaging.packageCd", Message: "Commodity 1 packaging is required"},
			{Field: "commodities.0.pieceCnt", Message: "Commodity 1 piece count must be at least 1"},
			{Field: "deliveryLocation.city", Message: "Delivery city is required"},
		}, verr.Fields)
	})

	t.Run("PreassignedProShape", func(t *testing.T) {
		form := xpoForm()
		form.ProPreference = "preassigned"
		form.PreassignedPro = "12345"

		var verr *ValidationError
		require.ErrorAs(t, ValidateXpoForm(form), &verr)
		assert.Equal(t, []FieldError{
			{Field: "preassignedPro", Message: "Pre-assigned PRO number is invalid"},
		}, verr.Fields)

		form.PreassignedPro = "0123456789"
		assert.NoError(t, ValidateXpoForm(form))
	})

	t.Run("UnknownProPreference", func(t *testing.T) {
		form := xpoForm()
		form.ProPreference = "maybe"

		var verr *ValidationError
		require.ErrorAs(t, ValidateXpoForm(form), &verr)
		assert.Equal(t, "proPreference", verr.Fields[0].Field)
		assert.Equal(t, "PRO preference is not a recognized option", verr.Fields[0].Message)
	})
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Handling unit 3 freight class", fieldLabel(estesLabels, "handlingUnits.2.class"))
	assert.Equal(t, "somethingElse", fieldLabel(estesLabels, "somethingElse"))
}
