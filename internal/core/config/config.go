package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"freight-console/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// ShipmentBatchWorkers bounds the fan-out of batch shipment extraction.
	ShipmentBatchWorkers int `mapstructure:"SHIPMENT_BATCH_WORKERS" default:"8"`

	// Records holds the order record store configuration.
	Records RecordsConfig `mapstructure:",squash"`

	// Redis holds the record cache configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Carriers holds the carrier relay endpoints.
	Carriers CarrierConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// RecordsConfig holds the connection details of the record store REST endpoint.
type RecordsConfig struct {
	// URL is the base URL of the record store API.
	URL string `mapstructure:"RECORDS_API_URL" required:"true"`
	// Token is the bearer token sent with every request, if any.
	Token string `mapstructure:"RECORDS_API_TOKEN"`
	// TimeoutSeconds bounds each record store request.
	TimeoutSeconds int `mapstructure:"RECORDS_API_TIMEOUT_SECONDS" default:"10"`
}

// Timeout returns the request timeout as a duration.
func (c RecordsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig holds the record cache settings.
type RedisConfig struct {
	// URL is the redis connection string. Empty disables caching.
	URL string `mapstructure:"REDIS_URL"`
	// RecordTTLSeconds is how long a normalized record stays cached.
	RecordTTLSeconds int `mapstructure:"RECORD_CACHE_TTL_SECONDS" default:"300"`
}

// RecordTTL returns the record cache TTL as a duration.
func (c RedisConfig) RecordTTL() time.Duration {
	return time.Duration(c.RecordTTLSeconds) * time.Second
}

// CarrierConfig holds the backend relay URLs of each carrier.
// A carrier whose URL is empty is not wired for tracking or BOL submission.
type CarrierConfig struct {
	// EstesURL is the base URL of the Estes relay.
	EstesURL string `mapstructure:"ESTES_RELAY_URL"`
	// XpoURL is the base URL of the XPO relay.
	XpoURL string `mapstructure:"XPO_RELAY_URL"`
	// TimeoutSeconds bounds each relay request.
	TimeoutSeconds int `mapstructure:"CARRIER_RELAY_TIMEOUT_SECONDS" default:"30"`
}

// Timeout returns the relay timeout as a duration.
func (c CarrierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProxyConfig holds the optional outbound proxy used by the HTTP clients.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the config into proxy settings.
func (c ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  c.Enabled,
		Hostname: c.Hostname,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
	}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
