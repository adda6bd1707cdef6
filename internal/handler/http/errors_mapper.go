package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrNotFound:  http.StatusNotFound,
	store.ErrTransport: http.StatusBadGateway,

	ledger.ErrIndexConflict: http.StatusConflict,
	ledger.ErrTransport:     http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
