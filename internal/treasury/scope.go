package treasury

import (
	"tesoro-api/internal/chain"
)

// ScopeStatus is the lifecycle state of a scope.
type ScopeStatus uint8

const (
	// StatusActive is the ordinary operating state
	StatusActive ScopeStatus = iota
	// StatusRecoveryPending means a recovery has been started and the
	// contestation countdown is running
	StatusRecoveryPending
)

// String returns "active" or "recovery_pending"
func (s ScopeStatus) String() string {
	if s == StatusRecoveryPending {
		return "recovery_pending"
	}
	return "active"
}

// RecoveryState is carried in the scope record while a recovery is pending.
type RecoveryState struct {
	_ struct{} `cbor:",toarray"`

	// DeadlineMillis is when the contestation window closes; recovery can
	// complete only in a transition whose validity range starts at or
	// after it.
	DeadlineMillis int64 `json:"deadline_millis"`
}

// Scope is one autonomous budget-and-credential partition of the treasury.
// Identity is the name, unique across the treasury for its lifetime.
type Scope struct {
	_     struct{}        `cbor:",toarray"`
	Name  string          `json:"name"`
	Owner OwnerCredential `json:"owner"`

	// Budgets is ordered per asset; the order is part of the record and
	// must be preserved by every transition.
	Budgets []BudgetConfig `json:"budgets"`

	Status   ScopeStatus    `json:"status"`
	Recovery *RecoveryState `json:"recovery,omitempty"`

	// ContestCount survives round trips through RecoveryPending so that
	// repeated contestations can eventually be overridden.
	ContestCount int `json:"contest_count"`
}

// BudgetFor returns the budget config for an asset, if tracked.
func (s *Scope) BudgetFor(asset chain.AssetID) (BudgetConfig, bool) {
	for _, b := range s.Budgets {
		if b.Asset == asset {
			return b, true
		}
	}
	return BudgetConfig{}, false
}

// StructuralEqual reports whether two scopes agree on everything an
// ordinary spend must keep fixed: name, owner, status, recovery state,
// contest count, and the structural half of every budget, in order.
func (s *Scope) StructuralEqual(other *Scope) bool {
	if s.Name != other.Name || !s.Owner.Equal(other.Owner) {
		return false
	}
	if s.Status != other.Status || s.ContestCount != other.ContestCount {
		return false
	}
	if (s.Recovery == nil) != (other.Recovery == nil) {
		return false
	}
	if s.Recovery != nil && *s.Recovery != *other.Recovery {
		return false
	}
	if len(s.Budgets) != len(other.Budgets) {
		return false
	}
	for i := range s.Budgets {
		if !s.Budgets[i].StructuralEqual(other.Budgets[i]) {
			return false
		}
	}
	return true
}

// ScopeRecordDatum is the on-ledger datum of a scope record. The previous
// record index is the anti-double-satisfaction link: every accepted
// transition must name the exact input position of the record it replaces.
// Only the initialization transition produces records without one.
type ScopeRecordDatum struct {
	_                   struct{} `cbor:",toarray"`
	PreviousRecordIndex *int     `json:"previous_record_index,omitempty"`
	Scope               Scope    `json:"scope"`
}

// RootDatum is the on-ledger datum of the root record: the ordered list of
// all scope names in the treasury.
type RootDatum struct {
	_          struct{} `cbor:",toarray"`
	ScopeNames []string `json:"scope_names"`
}

// Contains reports whether the root lists the given scope name.
func (r *RootDatum) Contains(name string) bool {
	for _, n := range r.ScopeNames {
		if n == name {
			return true
		}
	}
	return false
}

// DecodeScopeRecordDatum decodes a scope record datum from raw CBOR.
func DecodeScopeRecordDatum(data []byte) (*ScopeRecordDatum, error) {
	var datum ScopeRecordDatum
	if err := chain.UnmarshalDatum(data, &datum); err != nil {
		return nil, err
	}
	return &datum, nil
}

// DecodeRootDatum decodes a root datum from raw CBOR.
func DecodeRootDatum(data []byte) (*RootDatum, error) {
	var datum RootDatum
	if err := chain.UnmarshalDatum(data, &datum); err != nil {
		return nil, err
	}
	return &datum, nil
}
