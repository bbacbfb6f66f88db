package treasury

import (
	"tesoro-api/internal/chain"
)

// Withdrawal is one recorded outflow: the amount and the finite validity
// range of the transition that moved it. Immutable once recorded; it leaves
// the history only when its upper bound falls behind the rolling cutoff.
type Withdrawal struct {
	_             struct{}          `cbor:",toarray"`
	Amount        int64             `json:"amount"`
	ValidityRange chain.FiniteRange `json:"validity_range"`
}

// BudgetConfig is the per-asset rolling-limit configuration of a scope plus
// its live bookkeeping. LimitAmount and LimitWindowMillis are structural:
// an ordinary spend may never change them.
type BudgetConfig struct {
	_                 struct{}      `cbor:",toarray"`
	Asset             chain.AssetID `json:"asset"`
	LimitAmount       int64         `json:"limit_amount"`
	LimitWindowMillis int64         `json:"limit_window_millis"`

	// RecentWithdrawals holds the withdrawals still inside the rolling
	// window, most recent first.
	RecentWithdrawals []Withdrawal `json:"recent_withdrawals"`
}

// StructuralEqual reports whether the spend-immutable part of two configs
// matches: same asset, same limit, same window.
func (b BudgetConfig) StructuralEqual(other BudgetConfig) bool {
	return b.Asset == other.Asset &&
		b.LimitAmount == other.LimitAmount &&
		b.LimitWindowMillis == other.LimitWindowMillis
}

// WithdrawalsEqual reports whether two withdrawal histories are identical
// entry for entry, in order.
func WithdrawalsEqual(a, b []Withdrawal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Amount != b[i].Amount || a[i].ValidityRange != b[i].ValidityRange {
			return false
		}
	}
	return true
}

// PruneWithdrawals retains, in original order, every withdrawal whose upper
// validity bound is still at or past the cutoff.
func PruneWithdrawals(history []Withdrawal, cutoff int64) []Withdrawal {
	var kept []Withdrawal
	for _, w := range history {
		if w.ValidityRange.Upper >= cutoff {
			kept = append(kept, w)
		}
	}
	return kept
}

// SumWithdrawals totals the amounts in a history.
func SumWithdrawals(history []Withdrawal) int64 {
	var sum int64
	for _, w := range history {
		sum += w.Amount
	}
	return sum
}
