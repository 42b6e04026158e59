package main

import (
	"testing"

	"freight-console/internal/core/config"
	"freight-console/internal/core/proxy"
	records "freight-console/internal/features/records/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCarrierAdapters(t *testing.T) {
	t.Run("BothConfigured", func(t *testing.T) {
		cfg := config.CarrierConfig{EstesURL: "https://estes.test", XpoURL: "https://xpo.test", TimeoutSeconds: 5}

		providers, relays := carrierAdapters(cfg, proxy.Settings{}, zap.NewNop())
		assert.Len(t, providers, 2)
		assert.Contains(t, relays, records.CarrierEstes)
		assert.Contains(t, relays, records.CarrierXPO)
	})

	t.Run("MissingUrlSkipsCarrier", func(t *testing.T) {
		cfg := config.CarrierConfig{XpoURL: "https://xpo.test", TimeoutSeconds: 5}

		providers, relays := carrierAdapters(cfg, proxy.Settings{}, zap.NewNop())
		require.Len(t, providers, 1)
		assert.True(t, providers[0].SupportsCarrier(records.CarrierXPO))
		assert.NotContains(t, relays, records.CarrierEstes)
		assert.Contains(t, relays, records.CarrierXPO)
	})

	t.Run("NoneConfigured", func(t *testing.T) {
		providers, relays := carrierAdapters(config.CarrierConfig{}, proxy.Settings{}, zap.NewNop())
		assert.Empty(t, providers)
		assert.Empty(t, relays)
	})
}
