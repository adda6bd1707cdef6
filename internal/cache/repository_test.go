package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/chain-vault/models"
)

func testEnvelopeJSON(t *testing.T) (models.VaultItemEnvelope, string) {
	t.Helper()
	env := models.VaultItemEnvelope{
		Version:    models.EnvelopeVersion,
		Site:       "example.com",
		Username:   "alice",
		Ciphertext: "Y2lwaGVydGV4dA==",
		IV:         []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		KeyHash:    "00ff",
	}
	blob, err := json.Marshal(env)
	require.NoError(t, err)
	return env, string(blob)
}

func TestEnvelopeRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	env, _ := testEnvelopeJSON(t)
	repo := NewEnvelopeRepository(db)

	mock.ExpectExec(`INSERT INTO envelopes .+ ON CONFLICT \(owner_id, item_id\) DO UPDATE SET`).
		WithArgs("0xOwner", "item-1", sqlmock.AnyArg(), "ref-1", uint64(0), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Upsert(context.Background(), models.CachedEnvelope{
		OwnerID:    "0xOwner",
		ItemID:     "item-1",
		Envelope:   env,
		ContentRef: "ref-1",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvelopeRepository_GetHitAndMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	env, blob := testEnvelopeJSON(t)
	repo := NewEnvelopeRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT owner_id, item_id, envelope, content_ref, entry_index, updated_at FROM envelopes WHERE`).
		WithArgs("0xOwner", "item-1").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at"}).
			AddRow("0xOwner", "item-1", blob, "ref-1", uint64(3), now))

	got, err := repo.Get(context.Background(), "0xOwner", "item-1")
	require.NoError(t, err)
	assert.Equal(t, env, got.Envelope)
	assert.Equal(t, "ref-1", got.ContentRef)
	assert.EqualValues(t, 3, got.EntryIndex)

	mock.ExpectQuery(`SELECT owner_id, item_id, envelope, content_ref, entry_index, updated_at FROM envelopes WHERE`).
		WithArgs("0xOwner", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at"}))

	_, err = repo.Get(context.Background(), "0xOwner", "missing")
	require.ErrorIs(t, err, ErrNotCached)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvelopeRepository_ListOrderedByEntryIndex(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, blob := testEnvelopeJSON(t)
	repo := NewEnvelopeRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM envelopes WHERE owner_id = \? ORDER BY entry_index ASC`).
		WithArgs("0xOwner").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at"}).
			AddRow("0xOwner", "item-1", blob, "ref-1", uint64(0), now).
			AddRow("0xOwner", "item-2", blob, "ref-2", uint64(1), now))

	entries, err := repo.List(context.Background(), "0xOwner")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "item-1", entries[0].ItemID)
	assert.Equal(t, "item-2", entries[1].ItemID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnvelopeRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEnvelopeRepository(db)

	mock.ExpectExec(`DELETE FROM envelopes WHERE`).
		WithArgs("0xOwner", "item-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "0xOwner", "item-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
