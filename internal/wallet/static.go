package wallet

import "context"

// StaticSigner is the deterministic fake [Signer]: it returns a fixed
// signature for any message, or declines every request when Decline is
// set. Used by tests and by flows that replay a previously captured
// signature.
type StaticSigner struct {
	Addr      string
	Signature []byte
	Decline   bool
}

// Address implements [Signer].
func (s *StaticSigner) Address() string { return s.Addr }

// Sign implements [Signer].
func (s *StaticSigner) Sign(ctx context.Context, message string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Decline {
		return nil, ErrSignatureDeclined
	}
	out := make([]byte, len(s.Signature))
	copy(out, s.Signature)
	return out, nil
}
