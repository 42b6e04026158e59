package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"freight-console/internal/core/server"
	"freight-console/internal/features/bol/domain"
	"freight-console/internal/features/bol/ports"
	"freight-console/internal/features/bol/service"
	records "freight-console/internal/features/records/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayFunc func(ctx context.Context, payload any) (records.Blob, error)

func (f relayFunc) SubmitBol(ctx context.Context, payload any) (records.Blob, error) {
	return f(ctx, payload)
}

func newTestApp(relays map[records.Carrier]ports.BolRelay) *fiber.App {
	handler := NewBolHandler(service.NewBolService(relays, nil))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	handler.Register(app)
	return app
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	return data
}

func post(t *testing.T, app *fiber.App, target string, body []byte) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestBolHandler_Estes(t *testing.T) {
	app := newTestApp(nil)

	t.Run("Build", func(t *testing.T) {
		resp, body := post(t, app, "/bol/estes", fixture(t, "estes_form.json"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var req domain.EstesBolRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, domain.EstesVersion, req.Version)
		assert.Equal(t, []string{"RES"}, req.Accessorials.Codes)
	})

	t.Run("Invalid", func(t *testing.T) {
		var form map[string]any
		require.NoError(t, json.Unmarshal(fixture(t, "estes_form.json"), &form))
		form["billToZip"] = ""
		payload, _ := json.Marshal(form)

		resp, body := post(t, app, "/bol/estes", payload)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var errResp server.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.Equal(t, "test-ray-id", errResp.RayID)
		assert.Equal(t, []server.FieldMessage{
			{Field: "billToZip", Message: "Bill-to postal code is required"},
		}, errResp.Fields)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		resp, _ := post(t, app, "/bol/estes", []byte(`{"handlingUnits": "nope"`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestBolHandler_XpoSubmit(t *testing.T) {
	t.Run("Submitted", func(t *testing.T) {
		app := newTestApp(map[records.Carrier]ports.BolRelay{
			records.CarrierXPO: relayFunc(func(ctx context.Context, payload any) (records.Blob, error) {
				req, ok := payload.(domain.XpoBolRequest)
				assert.True(t, ok)
				assert.True(t, req.AutoAssignPro)
				return records.Blob{"proNbr": "0123456789"}, nil
			}),
		})

		resp, body := post(t, app, "/bol/xpo?submit=true", fixture(t, "xpo_form.json"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out domain.Submission
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, records.CarrierXPO, out.Carrier)
		assert.Equal(t, "0123456789", out.Response["proNbr"])
	})

	t.Run("RelayFailure", func(t *testing.T) {
		app := newTestApp(map[records.Carrier]ports.BolRelay{
			records.CarrierXPO: relayFunc(func(ctx context.Context, payload any) (records.Blob, error) {
				return nil, errors.New("xpo relay rejected BOL")
			}),
		})

		resp, _ := post(t, app, "/bol/xpo?submit=true", fixture(t, "xpo_form.json"))
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("NoRelay", func(t *testing.T) {
		app := newTestApp(nil)

		resp, _ := post(t, app, "/bol/xpo?submit=true", fixture(t, "xpo_form.json"))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestBolHandler_UpdateXpoCommodity(t *testing.T) {
	app := newTestApp(nil)

	var form domain.XpoFormState
	require.NoError(t, json.Unmarshal(fixture(t, "xpo_form.json"), &form))

	payload, err := json.Marshal(CommodityUpdateRequest{Form: form, Path: "packaging.packageLength", Value: 48})
	require.NoError(t, err)

	resp, body := post(t, app, "/bol/xpo/commodities/0", payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated domain.XpoFormState
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 48.0, updated.Commodities[0].Packaging.PackageLength)
	assert.Equal(t, "PLT", updated.Commodities[0].Packaging.PackageCd)

	resp, _ = post(t, app, "/bol/xpo/commodities/5", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(t, app, "/bol/xpo/commodities/abc", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
