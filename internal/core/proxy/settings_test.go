package proxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_HasProxy(t *testing.T) {
	assert.False(t, Settings{}.HasProxy())
	assert.False(t, Settings{Enabled: true, Hostname: "proxy.test"}.HasProxy())
	assert.False(t, Settings{Hostname: "proxy.test", Port: 3128}.HasProxy())
	assert.True(t, Settings{Enabled: true, Hostname: "proxy.test", Port: 3128}.HasProxy())
}

func TestSettings_URL(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		assert.Nil(t, Settings{}.URL())
		assert.Empty(t, Settings{}.HostPort())
	})

	t.Run("WithCredentials", func(t *testing.T) {
		s := Settings{Enabled: true, Hostname: "proxy.test", Port: 3128, Username: "u", Password: "p"}
		assert.Equal(t, "http://u:p@proxy.test:3128", s.URL().String())
		assert.Equal(t, "http://proxy.test:3128", s.HostPort())
	})
}

func TestSettings_ProxyFunc(t *testing.T) {
	s := Settings{Enabled: true, Hostname: "proxy.test", Port: 3128}
	req, err := http.NewRequest(http.MethodGet, "https://carrier.test", nil)
	require.NoError(t, err)

	u, err := s.ProxyFunc()(req)
	require.NoError(t, err)
	assert.Equal(t, "proxy.test:3128", u.Host)
}
