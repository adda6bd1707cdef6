package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidWalletConfigs indicates missing or malformed dev wallet
	// settings (for example, an empty private key).
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidBlobConfigs indicates invalid blob store settings
	// (for example, an unknown backend or a backend missing its endpoint).
	ErrInvalidBlobConfigs = errors.New("invalid blob store configuration")
	// ErrInvalidRegistryConfigs indicates invalid commitment registry
	// settings (for example, a missing base URL).
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidProofConfigs indicates an unknown proving backend.
	ErrInvalidProofConfigs = errors.New("invalid proof configuration")
	// ErrInvalidServerConfigs indicates invalid dev server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
