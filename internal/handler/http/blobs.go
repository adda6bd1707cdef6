package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/store"
	"github.com/MKhiriev/chain-vault/internal/utils"
)

func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBlobSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Error().Str("func", "*Handler.putBlob").Msg("blob exceeds size limit")
			http.Error(w, "blob exceeds size limit", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.putBlob").Msg("error reading blob body")
		http.Error(w, "error reading blob body", http.StatusBadRequest)
		return
	}
	// Zero-length payloads are stored like any other content: an empty
	// secret seals to a valid blob and must survive the round trip.
	// Content addressing makes re-uploads observable before storing.
	duplicate := h.blobs.Contains(h.blobs.ReferenceFor(data))

	ref, err := h.blobs.Put(ctx, data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putBlob").Msg("error storing blob")
		http.Error(w, "error storing blob", statusFromError(err))
		return
	}

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	utils.WriteJSON(w, blobResponse{Reference: ref, Duplicate: duplicate}, status)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ref := chi.URLParam(r, "reference")
	if ref == "" {
		http.Error(w, "no blob reference was given", http.StatusBadRequest)
		return
	}

	data, err := h.blobs.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getBlob").Msg("error fetching blob")
		http.Error(w, "error fetching blob", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
