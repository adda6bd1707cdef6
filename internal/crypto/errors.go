package crypto

import "errors"

var (
	// ErrKeyDerivation indicates a malformed signature or unsupported
	// derivation parameters. Not retryable without new input.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrInvalidIVLength indicates an IV that is not exactly 12 bytes.
	// This is a programmer error in the codec, not a user-facing state.
	ErrInvalidIVLength = errors.New("invalid IV length")

	// ErrAuthentication indicates a GCM tag mismatch: wrong key or
	// corrupted/tampered ciphertext. Never downgraded to returning
	// garbage plaintext, never auto-retried with the same key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrKeyMismatch is the fast-path form of ErrAuthentication, detected
	// via the envelope key fingerprint before any AEAD work.
	ErrKeyMismatch = errors.New("derived key does not match envelope key hash")

	// ErrUnsupportedVersion indicates an envelope schema version this
	// build does not recognise. The decoder fails closed instead of
	// probing for fields.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
)
