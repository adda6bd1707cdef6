package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Wallet struct {
		PrivateKeyHex string `json:"private_key"`
	} `json:"wallet,omitempty"`

	Storage struct {
		Blobs struct {
			Backend        string   `json:"backend"`
			IPFSEndpoint   string   `json:"ipfs_endpoint"`
			GatewayURL     string   `json:"gateway_url"`
			RequestTimeout Duration `json:"request_timeout"`
			MaxRetries     uint64   `json:"max_retries"`
		} `json:"blobs,omitempty"`

		Cache struct {
			Path string `json:"path"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Registry struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"registry,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Proof struct {
		Backend   string `json:"backend"`
		QueueSize int    `json:"queue_size"`
	} `json:"proof,omitempty"`
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
			Version: jsonCfg.App.Version,
		},
		Wallet: Wallet{
			PrivateKeyHex: jsonCfg.Wallet.PrivateKeyHex,
		},
		Storage: Storage{
			Blobs: Blobs{
				Backend:        jsonCfg.Storage.Blobs.Backend,
				IPFSEndpoint:   jsonCfg.Storage.Blobs.IPFSEndpoint,
				GatewayURL:     jsonCfg.Storage.Blobs.GatewayURL,
				RequestTimeout: time.Duration(jsonCfg.Storage.Blobs.RequestTimeout),
				MaxRetries:     jsonCfg.Storage.Blobs.MaxRetries,
			},
			Cache: Cache{
				Path: jsonCfg.Storage.Cache.Path,
			},
		},
		Registry: Registry{
			URL:            jsonCfg.Registry.URL,
			RequestTimeout: time.Duration(jsonCfg.Registry.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Proof: Proof{
			Backend:   jsonCfg.Proof.Backend,
			QueueSize: jsonCfg.Proof.QueueSize,
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
