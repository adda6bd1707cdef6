// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/chain-vault/models"
)

// envelopeRepository is the SQLite-backed implementation of
// [EnvelopeCache]. Envelopes are stored as their JSON form in a single
// column; the cache never needs to query inside an envelope, it only
// mirrors whole rows.
type envelopeRepository struct {
	db *sql.DB
}

// NewEnvelopeRepository constructs an [EnvelopeCache] over an open
// database handle. The caller owns the handle and its migrations; see
// OpenSQLite for the usual entry point.
func NewEnvelopeRepository(db *sql.DB) EnvelopeCache {
	return &envelopeRepository{db: db}
}

// Upsert implements [EnvelopeCache].
func (r *envelopeRepository) Upsert(ctx context.Context, entry models.CachedEnvelope) error {
	blob, err := json.Marshal(entry.Envelope)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args, err := sq.Insert("envelopes").
		Columns("owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at").
		Values(entry.OwnerID, entry.ItemID, string(blob), entry.ContentRef, entry.EntryIndex, updatedAt).
		Suffix("ON CONFLICT (owner_id, item_id) DO UPDATE SET envelope = excluded.envelope, content_ref = excluded.content_ref, entry_index = excluded.entry_index, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert envelope: %w", err)
	}
	return nil
}

// Get implements [EnvelopeCache].
func (r *envelopeRepository) Get(ctx context.Context, ownerID, itemID string) (models.CachedEnvelope, error) {
	query, args, err := sq.Select("owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at").
		From("envelopes").
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"item_id": itemID}}).
		ToSql()
	if err != nil {
		return models.CachedEnvelope{}, fmt.Errorf("build get query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	entry, err := scanCachedEnvelope(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedEnvelope{}, fmt.Errorf("%w: owner %s item %s", ErrNotCached, ownerID, itemID)
	}
	if err != nil {
		return models.CachedEnvelope{}, err
	}
	return entry, nil
}

// List implements [EnvelopeCache].
func (r *envelopeRepository) List(ctx context.Context, ownerID string) ([]models.CachedEnvelope, error) {
	query, args, err := sq.Select("owner_id", "item_id", "envelope", "content_ref", "entry_index", "updated_at").
		From("envelopes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("entry_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list envelopes: %w", err)
	}
	defer rows.Close()

	var out []models.CachedEnvelope
	for rows.Next() {
		entry, err := scanCachedEnvelope(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate envelopes: %w", err)
	}
	return out, nil
}

// Delete implements [EnvelopeCache].
func (r *envelopeRepository) Delete(ctx context.Context, ownerID, itemID string) error {
	query, args, err := sq.Delete("envelopes").
		Where(sq.And{sq.Eq{"owner_id": ownerID}, sq.Eq{"item_id": itemID}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete envelope: %w", err)
	}
	return nil
}

func scanCachedEnvelope(scan func(dest ...any) error) (models.CachedEnvelope, error) {
	var (
		entry models.CachedEnvelope
		blob  string
	)
	if err := scan(&entry.OwnerID, &entry.ItemID, &blob, &entry.ContentRef, &entry.EntryIndex, &entry.UpdatedAt); err != nil {
		return models.CachedEnvelope{}, err
	}
	if err := json.Unmarshal([]byte(blob), &entry.Envelope); err != nil {
		return models.CachedEnvelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	return entry, nil
}
