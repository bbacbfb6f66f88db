package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/treasury"
)

// CheckBudget runs the rolling-limit spend check for one asset of one scope.
// It compares the consumed record's budget config against the produced one:
// the structural half must be untouched, the withdrawal history must be
// exactly the pruned old history with the current spend prepended (or just
// pruned, for a zero spend), and the surviving sum must fit under the cap
// scaled by the number of co-signing owners.
//
// The window must already be validated by CheckWindow; it is passed here as
// the finite range recorded into the new history entry.
func CheckBudget(policy Policy, activeOwners, totalOwners int, spendAmount int64, window chain.FiniteRange, old, updated treasury.BudgetConfig) error {
	// Limit and window are structural, not spend-mutable.
	if !old.StructuralEqual(updated) {
		return rejectf(KindStructuralMismatch,
			"budget config for %q changed under spend", string(old.Asset))
	}

	cutoff := window.Lower - old.LimitWindowMillis
	pruned := treasury.PruneWithdrawals(old.RecentWithdrawals, cutoff)

	if spendAmount == 0 {
		// Zero spend prunes expired entries and nothing else.
		if !treasury.WithdrawalsEqual(updated.RecentWithdrawals, pruned) {
			return rejectf(KindStructuralMismatch,
				"zero spend for %q must only prune expired withdrawals", string(old.Asset))
		}
		return nil
	}

	if spendAmount < 0 {
		return rejectf(KindStructuralMismatch,
			"negative spend %d for %q", spendAmount, string(old.Asset))
	}

	expected := append([]treasury.Withdrawal{{Amount: spendAmount, ValidityRange: window}}, pruned...)
	if !treasury.WithdrawalsEqual(updated.RecentWithdrawals, expected) {
		return rejectf(KindStructuralMismatch,
			"withdrawal history for %q is not pruned-then-prepended", string(old.Asset))
	}

	allowed, unconditional := policy.SpendCap(activeOwners, totalOwners, old.LimitAmount)
	if unconditional {
		return nil
	}
	if sum := treasury.SumWithdrawals(updated.RecentWithdrawals); sum > allowed {
		return rejectf(KindBudgetExceeded,
			"rolling sum %d over cap %d (%d of %d owners, limit %d) for %q",
			sum, allowed, activeOwners, totalOwners, old.LimitAmount, string(old.Asset))
	}
	return nil
}

// CheckWindow validates the transition's validity window: finite on both
// ends and spanning at most the configured maximum. A wide window would let
// a spender slide the rolling-accounting cutoff; bounding it bounds the
// attack.
func CheckWindow(interval chain.Interval, maxSpanMillis int64) (chain.FiniteRange, error) {
	window, ok := interval.ToFinite()
	if !ok {
		return chain.FiniteRange{}, rejectf(KindStructuralMismatch,
			"validity window must be finite on both ends")
	}
	if span := window.Upper - window.Lower; span > maxSpanMillis {
		return chain.FiniteRange{}, rejectf(KindStructuralMismatch,
			"validity window spans %dms, maximum is %dms", span, maxSpanMillis)
	}
	return window, nil
}
