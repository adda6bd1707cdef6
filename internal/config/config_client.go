package config

import (
	"fmt"
	"time"
)

// ClientWallet holds the wallet settings used by the client runtime.
type ClientWallet struct {
	// PrivateKeyHex is the dev wallet private key in hex.
	PrivateKeyHex string
}

// ClientBlobs holds blob store settings used by the client transport layer.
type ClientBlobs struct {
	// Backend selects the store implementation.
	Backend string
	// IPFSEndpoint is the IPFS node API address.
	IPFSEndpoint string
	// GatewayURL is the pinning gateway base URL.
	GatewayURL string
	// RequestTimeout is the default timeout for outbound blob requests.
	RequestTimeout time.Duration
	// MaxRetries bounds the transient-failure retry budget.
	MaxRetries uint64
}

// ClientRegistry holds commitment registry settings for the client.
type ClientRegistry struct {
	// URL is the registry base URL.
	URL string
	// RequestTimeout is the default timeout for outbound registry requests.
	RequestTimeout time.Duration
}

// ClientCache holds local envelope cache settings.
type ClientCache struct {
	// Path is the SQLite database path; empty means in-memory.
	Path string
}

// ClientProof holds strength-proof settings for the client.
type ClientProof struct {
	// Backend selects the proving backend.
	Backend string
	// QueueSize bounds the background proof queue.
	QueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Wallet contains dev wallet settings.
	Wallet ClientWallet
	// Blobs contains blob store settings.
	Blobs ClientBlobs
	// Registry contains commitment registry settings.
	Registry ClientRegistry
	// Cache contains local cache settings.
	Cache ClientCache
	// Proof contains proving backend settings.
	Proof ClientProof
}

// ServerConfig is the dev registry server's configuration view.
type ServerConfig struct {
	// Server contains listen address and timeout settings.
	Server Server
	// App contains application-level settings.
	App App
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Wallet: ClientWallet{
			PrivateKeyHex: cfg.Wallet.PrivateKeyHex,
		},
		Blobs: ClientBlobs{
			Backend:        cfg.Storage.Blobs.Backend,
			IPFSEndpoint:   cfg.Storage.Blobs.IPFSEndpoint,
			GatewayURL:     cfg.Storage.Blobs.GatewayURL,
			RequestTimeout: cfg.Storage.Blobs.RequestTimeout,
			MaxRetries:     cfg.Storage.Blobs.MaxRetries,
		},
		Registry: ClientRegistry{
			URL:            cfg.Registry.URL,
			RequestTimeout: cfg.Registry.RequestTimeout,
		},
		Cache: ClientCache{
			Path: cfg.Storage.Cache.Path,
		},
		Proof: ClientProof{
			Backend:   cfg.Proof.Backend,
			QueueSize: cfg.Proof.QueueSize,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the dev registry server's config
// view from the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: cfg.Server,
		App:    cfg.App,
	}

	return serverCfg, serverCfg.validate()
}
