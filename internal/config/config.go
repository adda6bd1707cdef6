// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Blob store backends selectable via Storage.Blobs.Backend.
const (
	BlobBackendMemory  = "memory"
	BlobBackendIPFS    = "ipfs"
	BlobBackendGateway = "gateway"
)

// Proving backends selectable via Proof.Backend.
const (
	ProofBackendFake  = "fake"
	ProofBackendGnark = "gnark"
)

// StructuredConfig is the top-level configuration container for the
// chain-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Wallet holds the dev wallet settings used for key-derivation
	// signatures.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Storage holds configuration for the blob store and the local
	// envelope cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Registry holds the commitment registry endpoint settings.
	Registry Registry `envPrefix:"REGISTRY_"`

	// Server holds network address and timeout settings for the dev
	// registry server.
	Server Server `envPrefix:"SERVER_"`

	// Proof holds the strength-proof backend settings.
	Proof Proof `envPrefix:"PROOF_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Wallet holds the dev wallet used to produce key-derivation signatures.
// Production deployments front a real wallet instead; the private key
// here exists for local development only.
type Wallet struct {
	// PrivateKeyHex is the secp256k1 private key in hex. Must be kept
	// confidential.
	// Env: WALLET_PRIVATE_KEY
	PrivateKeyHex string `env:"PRIVATE_KEY"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// Blobs holds the ciphertext blob store settings.
	Blobs Blobs `envPrefix:"BLOBS_"`

	// Cache holds the local SQLite envelope cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Blobs holds the ciphertext blob store settings.
type Blobs struct {
	// Backend selects the store implementation: "memory", "ipfs", or
	// "gateway".
	// Env: STORAGE_BLOBS_BACKEND
	Backend string `env:"BACKEND"`

	// IPFSEndpoint is the IPFS node API address used when Backend is
	// "ipfs" (e.g. "localhost:5001").
	// Env: STORAGE_BLOBS_IPFS_ENDPOINT
	IPFSEndpoint string `env:"IPFS_ENDPOINT"`

	// GatewayURL is the pinning gateway base URL used when Backend is
	// "gateway" (e.g. "http://localhost:8080").
	// Env: STORAGE_BLOBS_GATEWAY_URL
	GatewayURL string `env:"GATEWAY_URL"`

	// RequestTimeout is the per-request timeout for blob operations.
	// Env: STORAGE_BLOBS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries bounds the retry budget for transient blob transport
	// failures. Zero means the store default.
	// Env: STORAGE_BLOBS_MAX_RETRIES
	MaxRetries uint64 `env:"MAX_RETRIES"`
}

// Cache holds the local envelope cache settings.
type Cache struct {
	// Path is the SQLite database path. Empty means an in-memory cache.
	// Env: STORAGE_CACHE_PATH
	Path string `env:"PATH"`
}

// Registry holds the commitment registry endpoint settings.
type Registry struct {
	// URL is the registry base URL (e.g. "http://localhost:8080").
	// Env: REGISTRY_URL
	URL string `env:"URL"`

	// RequestTimeout is the per-request timeout for registry operations.
	// Env: REGISTRY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Proof holds the strength-proof backend settings.
type Proof struct {
	// Backend selects the proving backend: "fake" or "gnark". The gnark
	// backend compiles the circuit and runs a Groth16 setup at startup,
	// which takes several seconds.
	// Env: PROOF_BACKEND
	Backend string `env:"BACKEND"`

	// QueueSize bounds the background proof job queue. Zero means the
	// worker default.
	// Env: PROOF_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
