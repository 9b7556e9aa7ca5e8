package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		Version               string   `json:"version"`
		SessionSignKey        string   `json:"session_sign_key"`
		SessionIssuer         string   `json:"session_issuer"`
		SessionDuration       Duration `json:"session_duration"`
		AdminEmails           []string `json:"admin_emails"`
		DisableIdentityHeader bool     `json:"disable_identity_header"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			DataDir string `json:"data_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
		LoginRateLimit     int      `json:"login_rate_limit"`
		StaticDir          string   `json:"static_dir"`
	} `json:"server,omitempty"`

	Adapter struct {
		ScoringAddress string   `json:"scoring_address"`
		ServerAddress  string   `json:"server_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ScoreRefreshInterval Duration `json:"score_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:               jsonCfg.App.Version,
			SessionSignKey:        jsonCfg.App.SessionSignKey,
			SessionIssuer:         jsonCfg.App.SessionIssuer,
			SessionDuration:       time.Duration(jsonCfg.App.SessionDuration),
			AdminEmails:           jsonCfg.App.AdminEmails,
			DisableIdentityHeader: jsonCfg.App.DisableIdentityHeader,
		},
		Storage: Storage{
			Files: Files{
				DataDir: jsonCfg.Storage.Files.DataDir,
			},
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
			LoginRateLimit:     jsonCfg.Server.LoginRateLimit,
			StaticDir:          jsonCfg.Server.StaticDir,
		},
		Adapter: Adapter{
			ScoringAddress: jsonCfg.Adapter.ScoringAddress,
			ServerAddress:  jsonCfg.Adapter.ServerAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ScoreRefreshInterval: time.Duration(jsonCfg.Workers.ScoreRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
