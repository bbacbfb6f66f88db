// Package engine is the treasury's policy authority: a pure, synchronous
// validator consulted before any state transition of the treasury is
// accepted. Every validation run is a single pass over an immutable snapshot
// of one candidate transition; the engine holds no state, performs no I/O,
// and either accepts the transition whole or rejects it whole.
package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/constants"
	"tesoro-api/internal/treasury"
)

// EntryPoint names which validator a candidate transition is submitted to.
type EntryPoint int

const (
	// EntryInitialize is the one-shot setup transition.
	EntryInitialize EntryPoint = iota
	// EntrySpend is an ordinary scope-record transition.
	EntrySpend
	// EntryWithdraw is the funding / badge-check entrypoint.
	EntryWithdraw
)

// String returns the entrypoint's wire name.
func (e EntryPoint) String() string {
	switch e {
	case EntryInitialize:
		return constants.EntrypointInitialize
	case EntrySpend:
		return constants.EntrypointSpend
	case EntryWithdraw:
		return constants.EntrypointWithdraw
	default:
		return "unknown"
	}
}

// ParseEntryPoint maps a wire name back to an EntryPoint.
func ParseEntryPoint(name string) (EntryPoint, bool) {
	switch name {
	case constants.EntrypointInitialize:
		return EntryInitialize, true
	case constants.EntrypointSpend:
		return EntrySpend, true
	case constants.EntrypointWithdraw:
		return EntryWithdraw, true
	default:
		return 0, false
	}
}

// Redeemer is the union of the per-entrypoint redeemer encodings. Exactly
// the field matching the entrypoint must be set.
type Redeemer struct {
	InitialMint *treasury.InitialMintRedeemer `json:"initial_mint,omitempty"`
	Spend       *treasury.SpendRedeemer       `json:"spend,omitempty"`
	Withdraw    *treasury.WithdrawRedeemer    `json:"withdraw,omitempty"`
}

// Validate is the engine's single entrance: it dispatches the candidate
// transition to the validator for its entrypoint and returns nil to accept
// or a ValidationError to reject. It never partially applies anything.
func Validate(cfg config.Engine, policy Policy, view *chain.TxView, entry EntryPoint, redeemer Redeemer) error {
	if view == nil {
		return rejectf(KindStructuralMismatch, "no transition view")
	}
	switch entry {
	case EntryInitialize:
		if redeemer.InitialMint == nil {
			return rejectf(KindStructuralMismatch, "initialize entrypoint needs an initial-mint redeemer")
		}
		return ValidateInitialize(cfg, view, redeemer.InitialMint)
	case EntrySpend:
		if redeemer.Spend == nil {
			return rejectf(KindStructuralMismatch, "spend entrypoint needs a spend redeemer")
		}
		return ValidateSpend(cfg, policy, view, redeemer.Spend)
	case EntryWithdraw:
		if redeemer.Withdraw == nil {
			return rejectf(KindStructuralMismatch, "withdraw entrypoint needs a withdraw redeemer")
		}
		return ValidateWithdraw(cfg, view, redeemer.Withdraw)
	default:
		return rejectf(KindUnsupportedTransition, "unknown entrypoint %d", entry)
	}
}
