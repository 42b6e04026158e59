package proxy

import (
	"fmt"
	"net/http"
	"net/url"
)

// Settings contains the outbound proxy configuration shared by the HTTP clients.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HostPort returns the proxy host:port string (e.g., "http://proxy.internal:3128").
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// URL returns the proxy URL with credentials, or nil when no proxy is configured.
func (p Settings) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u := &url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
	}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// ProxyFunc returns the function an http.Transport uses to pick its proxy.
// Without a configured proxy it defers to the environment.
func (p Settings) ProxyFunc() func(*http.Request) (*url.URL, error) {
	if u := p.URL(); u != nil {
		return http.ProxyURL(u)
	}
	return http.ProxyFromEnvironment
}
