package http

// Wire shapes mirrored by the store and ledger clients. Commitments
// travel hex-encoded.
type (
	blobResponse struct {
		Reference string `json:"reference"`
		Duplicate bool   `json:"duplicate,omitempty"`
	}

	recordCommitmentRequest struct {
		EntryIndex uint64 `json:"entry_index"`
		Commitment string `json:"commitment"`
		ContentRef string `json:"content_ref"`
	}

	recordCommitmentResponse struct {
		TxHandle string `json:"tx_handle"`
	}

	commitmentEntry struct {
		EntryIndex uint64 `json:"entry_index"`
		Commitment string `json:"commitment"`
		ContentRef string `json:"content_ref"`
	}
)
