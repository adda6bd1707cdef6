package proof

import "errors"

var (
	// ErrProofGeneration indicates a circuit or backend failure while
	// proving (including inputs the circuit cannot carry, e.g. a password
	// longer than the witness array).
	ErrProofGeneration = errors.New("proof generation failed")

	// ErrProofVerification indicates a proof that does not verify against
	// its public outputs. Distinct from cryptographic envelope errors:
	// the remediation is a policy or backend problem, not a key problem.
	ErrProofVerification = errors.New("proof verification failed")
)
