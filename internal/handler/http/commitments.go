package http

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chain-vault/internal/crypto"
	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/utils"
)

func (h *Handler) recordCommitment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		http.Error(w, "no owner ID was given", http.StatusBadRequest)
		return
	}

	var req recordCommitmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.recordCommitment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	commitment, err := crypto.DecodeCommitmentHex(req.Commitment)
	if err != nil {
		log.Err(err).Str("func", "*Handler.recordCommitment").Msg("invalid commitment encoding")
		http.Error(w, "invalid commitment encoding", http.StatusBadRequest)
		return
	}
	if req.ContentRef == "" {
		http.Error(w, "no content reference was given", http.StatusBadRequest)
		return
	}

	txHandle, err := h.registry.RecordCommitment(ctx, ownerID, req.EntryIndex, commitment, req.ContentRef)
	if err != nil {
		if errors.Is(err, ledger.ErrIndexConflict) {
			http.Error(w, "entry index already taken", http.StatusConflict)
			return
		}
		log.Err(err).Str("func", "*Handler.recordCommitment").Msg("error recording commitment")
		http.Error(w, "error recording commitment", statusFromError(err))
		return
	}

	utils.WriteJSON(w, recordCommitmentResponse{TxHandle: txHandle}, http.StatusCreated)
}

func (h *Handler) listCommitments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID := chi.URLParam(r, "ownerID")
	if ownerID == "" {
		http.Error(w, "no owner ID was given", http.StatusBadRequest)
		return
	}

	entries, err := h.registry.LatestEntries(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCommitments").Msg("error listing commitments")
		http.Error(w, "error listing commitments", statusFromError(err))
		return
	}

	payload := make([]commitmentEntry, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, commitmentEntry{
			EntryIndex: entry.EntryIndex,
			Commitment: hex.EncodeToString(entry.Commitment),
			ContentRef: entry.ContentRef,
		})
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}
