package http

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chain-vault/internal/ledger"
	"github.com/MKhiriev/chain-vault/internal/logger"
	"github.com/MKhiriev/chain-vault/internal/store"
)

func newTestHandler(t *testing.T) (*Handler, *store.MemoryStore, *ledger.MemoryRegistry) {
	t.Helper()
	blobs := store.NewMemoryStore()
	registry := ledger.NewMemoryRegistry()
	return NewHandler(blobs, registry, logger.Nop()), blobs, registry
}

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h, _, _ := newTestHandler(t)
	require.NotNil(t, h)
}

func doRequest(t *testing.T, h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestPutBlob_CreatedThenDuplicate(t *testing.T) {
	h, _, _ := newTestHandler(t)
	payload := []byte(`{"version":1,"ciphertext":"opaque"}`)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/blobs", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var first blobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.NotEmpty(t, first.Reference)
	assert.False(t, first.Duplicate)

	// Same content again: deduplicated, same reference.
	rec = doRequest(t, h, http.MethodPost, "/api/v1/blobs", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var second blobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.Reference, second.Reference)
	assert.True(t, second.Duplicate)
}

func TestPutBlob_EmptyBlobStored(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/blobs", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp blobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Reference)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/blobs/"+resp.Reference, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestPutBlob_PairsWithStoreAdapter(t *testing.T) {
	h, _, _ := newTestHandler(t)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	s := store.NewHTTPStore(store.HTTPStoreConfig{BaseURL: srv.URL})
	ctx := context.Background()

	for _, size := range []int{0, 1, 10_000} {
		data := bytes.Repeat([]byte{0x5A}, size)

		ref, err := s.Put(ctx, data)
		require.NoError(t, err, "size %d", size)
		require.NotEmpty(t, ref)

		got, err := s.Get(ctx, ref)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, data, got, "size %d", size)
	}
}

func TestGetBlob_RoundTrip(t *testing.T) {
	h, _, _ := newTestHandler(t)
	payload := []byte("sealed envelope bytes")

	rec := doRequest(t, h, http.MethodPost, "/api/v1/blobs", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp blobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doRequest(t, h, http.MethodGet, "/api/v1/blobs/"+resp.Reference, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, rec.Body.Bytes())
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestGetBlob_NotFound(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/blobs/"+hex.EncodeToString(bytes.Repeat([]byte{0xAA}, 32)), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func commitmentBody(t *testing.T, index uint64, commitment []byte, ref string) []byte {
	t.Helper()
	body, err := json.Marshal(recordCommitmentRequest{
		EntryIndex: index,
		Commitment: hex.EncodeToString(commitment),
		ContentRef: ref,
	})
	require.NoError(t, err)
	return body
}

func TestRecordCommitment_CreatedAndListed(t *testing.T) {
	h, _, _ := newTestHandler(t)
	commitment := bytes.Repeat([]byte{0x11}, 32)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/owners/0xowner/commitments",
		commitmentBody(t, 0, commitment, "ref-0"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created recordCommitmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.TxHandle)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/owners/0xowner/commitments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []commitmentEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, hex.EncodeToString(commitment), entries[0].Commitment)
	assert.Equal(t, "ref-0", entries[0].ContentRef)
}

func TestRecordCommitment_IndexConflict(t *testing.T) {
	h, _, _ := newTestHandler(t)
	commitment := bytes.Repeat([]byte{0x22}, 32)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/owners/0xowner/commitments",
		commitmentBody(t, 0, commitment, "ref-0"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/v1/owners/0xowner/commitments",
		commitmentBody(t, 0, commitment, "ref-0-retry"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordCommitment_BadCommitmentEncoding(t *testing.T) {
	h, _, _ := newTestHandler(t)

	for name, body := range map[string][]byte{
		"not json":        []byte("{nope"),
		"short hex":       commitmentBody(t, 0, []byte{0x01, 0x02}, "ref"),
		"missing content": commitmentBody(t, 0, bytes.Repeat([]byte{0x33}, 32), ""),
	} {
		rec := doRequest(t, h, http.MethodPost, "/api/v1/owners/0xowner/commitments", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestListCommitments_OwnerIsolation(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/owners/0xalice/commitments",
		commitmentBody(t, 0, bytes.Repeat([]byte{0x44}, 32), "ref-a"))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/v1/owners/0xbob/commitments", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []commitmentEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
