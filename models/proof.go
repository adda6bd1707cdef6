package models

// StrengthProof is an opaque zero-knowledge proof that a password
// satisfies the strength policy, plus the circuit's public outputs.
// Neither field reveals the password; both are safe to share.
type StrengthProof struct {
	// Proof is the serialized proof object. Its byte layout belongs to
	// the proving backend and is treated as opaque here.
	Proof []byte `json:"proof"`

	// PublicOutputs is the circuit's public output: a single boolean
	// encoded as a 32-byte big-endian field element (1 = meets policy).
	PublicOutputs []byte `json:"public_outputs"`
}

// MeetsPolicy reports whether the public outputs encode "meets policy".
func (p StrengthProof) MeetsPolicy() bool {
	if len(p.PublicOutputs) == 0 {
		return false
	}
	for i, b := range p.PublicOutputs {
		if i == len(p.PublicOutputs)-1 {
			return b == 1
		}
		if b != 0 {
			return false
		}
	}
	return false
}
