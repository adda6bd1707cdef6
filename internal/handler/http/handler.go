package http

import (
	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/store"
)

// maxBlobSize bounds a single envelope upload. Envelopes are small; a
// megabyte already leaves generous headroom for metadata-heavy items.
const maxBlobSize = 1 << 20

type Handler struct {
	blobs    *store.MemoryStore
	registry ledger.CommitmentRegistry

	logger *logger.Logger
}

func NewHandler(blobs *store.MemoryStore, registry ledger.CommitmentRegistry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		blobs:    blobs,
		registry: registry,
		logger:   logger,
	}
}
