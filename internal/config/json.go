package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version   string `json:"version"`
		SecretKey string `json:"secret_key"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Host        string   `json:"host"`
			Port        int      `json:"port"`
			DialTimeout Duration `json:"dial_timeout"`
			CacheTTL    Duration `json:"cache_ttl"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Security struct {
		RateLimitMax    int      `json:"rate_limit_max"`
		RateLimitWindow Duration `json:"rate_limit_window"`
		MaxBodyBytes    int64    `json:"max_body_bytes"`
	} `json:"security,omitempty"`
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
			Version:   jsonCfg.App.Version,
			SecretKey: jsonCfg.App.SecretKey,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Host:        jsonCfg.Storage.Redis.Host,
				Port:        jsonCfg.Storage.Redis.Port,
				DialTimeout: time.Duration(jsonCfg.Storage.Redis.DialTimeout),
				CacheTTL:    time.Duration(jsonCfg.Storage.Redis.CacheTTL),
			},
		},
		Security: Security{
			RateLimitMax:    jsonCfg.Security.RateLimitMax,
			RateLimitWindow: time.Duration(jsonCfg.Security.RateLimitWindow),
			MaxBodyBytes:    jsonCfg.Security.MaxBodyBytes,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
