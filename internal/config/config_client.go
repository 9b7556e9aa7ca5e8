package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientAdapter holds network settings used by the terminal client transport
// layer.
type ClientAdapter struct {
	// ServerAddress is the base URL of the parking-mate API.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] and maps only the fields
// relevant to the client runtime. When no API address is configured the
// client targets the server's own listen address.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  strings.TrimSpace(cfg.Adapter.ServerAddress),
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	if clientCfg.Adapter.ServerAddress == "" && cfg.Server.HTTPAddress != "" {
		clientCfg.Adapter.ServerAddress = "http://" + cfg.Server.HTTPAddress
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: client needs a server address and a non-negative timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
