// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants every runtime shares. Runtime-specific requirements live in
// the view validators ([ClientConfig.validate], [ServerConfig.validate]);
// here only cross-cutting fields with a constrained value set are checked.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Blobs.Backend {
	case "", BlobBackendMemory, BlobBackendIPFS, BlobBackendGateway:
	default:
		return ErrInvalidBlobConfigs
	}

	switch cfg.Proof.Backend {
	case "", ProofBackendFake, ProofBackendGnark:
	default:
		return ErrInvalidProofConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Wallet.PrivateKeyHex == "" {
		return ErrInvalidWalletConfigs
	}

	switch cfg.Blobs.Backend {
	case BlobBackendIPFS:
		if cfg.Blobs.IPFSEndpoint == "" {
			return ErrInvalidBlobConfigs
		}
	case BlobBackendGateway:
		if cfg.Blobs.GatewayURL == "" {
			return ErrInvalidBlobConfigs
		}
	}

	if cfg.Registry.URL == "" {
		return ErrInvalidRegistryConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
