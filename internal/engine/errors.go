package engine

import (
	"errors"
	"fmt"
)

// Kind classifies why a candidate transition was rejected. Every rejection
// is fail-closed: the transition is discarded whole, nothing is partially
// applied, and the engine never retries.
type Kind int

const (
	// KindCredentialProofInvalid: a presented badge failed verification
	// (signature, withdrawal slot, or token proof).
	KindCredentialProofInvalid Kind = iota
	// KindOwnerMismatch: a badge verified but does not match the
	// record's configured owner.
	KindOwnerMismatch
	// KindBudgetExceeded: the rolling-window sum went over the scaled cap.
	KindBudgetExceeded
	// KindStructuralMismatch: immutable fields changed, wrong record
	// linkage, wrong address or value delta, or a malformed window.
	KindStructuralMismatch
	// KindIndexOutOfRange: a declared position does not resolve into the
	// transition's ordered lists.
	KindIndexOutOfRange
	// KindDuplicateOrMissingMint: the initialization mint set is not
	// exactly {root marker} plus one marker per scope.
	KindDuplicateOrMissingMint
	// KindUnsupportedTransition: no rule authorizes the requested action
	// at the presented authorization level.
	KindUnsupportedTransition
)

// String returns the audit-log name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCredentialProofInvalid:
		return "credential_proof_invalid"
	case KindOwnerMismatch:
		return "owner_mismatch"
	case KindBudgetExceeded:
		return "budget_exceeded"
	case KindStructuralMismatch:
		return "structural_mismatch"
	case KindIndexOutOfRange:
		return "index_out_of_range"
	case KindDuplicateOrMissingMint:
		return "duplicate_or_missing_mint"
	case KindUnsupportedTransition:
		return "unsupported_transition"
	default:
		return "unknown"
	}
}

// Badge verification failure causes. These wrap into a
// KindCredentialProofInvalid ValidationError so callers can test either the
// coarse kind or the precise cause with errors.Is.
var (
	// ErrMissingSignature: the named key is not in the signer set.
	ErrMissingSignature = errors.New("required signature not present")
	// ErrWithdrawalSlotMismatch: the declared withdrawal slot does not
	// exercise the declared script.
	ErrWithdrawalSlotMismatch = errors.New("withdrawal slot does not match script")
	// ErrTokenNotFound: the referenced input carries no token of the
	// claimed policy.
	ErrTokenNotFound = errors.New("claimed token not found in referenced input")
	// ErrTokenOwnerMismatch: the token is present but held by a different
	// credential than the one exercised.
	ErrTokenOwnerMismatch = errors.New("token not owned by exercised credential")
)

// ValidationError is the engine's rejection value: a kind, a human-readable
// detail, and optionally the underlying cause.
type ValidationError struct {
	Kind   Kind
	Detail string
	cause  error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// rejectf builds a ValidationError with a formatted detail.
func rejectf(kind Kind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// rejectCause builds a ValidationError wrapping a precise cause.
func rejectCause(kind Kind, cause error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the rejection kind from an engine error. The second
// return is false for non-engine errors.
func KindOf(err error) (Kind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return 0, false
}
