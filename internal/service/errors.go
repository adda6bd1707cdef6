package service

import "errors"

var (
	// ErrCommitmentMismatch indicates a recovered envelope whose
	// recomputed commitment does not match the ledger record. Treated
	// like an authentication failure: surfaced, never smoothed over.
	ErrCommitmentMismatch = errors.New("recomputed commitment does not match ledger entry")

	// ErrCacheMirror indicates the item was sealed and committed
	// successfully but mirroring it into the local cache failed. The
	// seal itself stands; the cache is rebuildable from the ledger.
	ErrCacheMirror = errors.New("sealed but cache mirror failed")

	// ErrNoCache indicates a backup operation was requested without a
	// configured local cache.
	ErrNoCache = errors.New("no local cache configured")

	// ErrBackupFormat indicates a backup file that is not in the
	// expected format or was sealed under a different passphrase.
	ErrBackupFormat = errors.New("invalid backup file")
)
