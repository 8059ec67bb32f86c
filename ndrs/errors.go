package ndrs

import "errors"

// Error kinds the protocol surfaces to callers (spec §7). Verify never
// errors - it returns a bool - but EvidenceGen and EvidenceCheck do, and
// the rejection-sampling loops in KeyGen and Sign may give up.
var (
	// ErrInvalidSignature is returned by EvidenceGen and EvidenceCheck when
	// the supplied Signature does not pass Verify.
	ErrInvalidSignature = errors.New("ndrs: signature does not verify")

	// ErrInvalidEvidence is returned by EvidenceCheck when the recomputed
	// challenge disagrees with the submitted evidence.
	ErrInvalidEvidence = errors.New("ndrs: evidence does not verify")

	// ErrRetryExhausted is returned by KeyGen and Sign when rejection
	// sampling exceeds the configured attempt ceiling (spec §5/§7).
	ErrRetryExhausted = errors.New("ndrs: rejection sampling exceeded the attempt ceiling")
)
