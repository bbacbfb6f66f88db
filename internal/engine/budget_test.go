package engine

import (
	"testing"

	"tesoro-api/internal/chain"
	"tesoro-api/internal/treasury"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	dayMillis       = int64(24 * 60 * 60 * 1000)
	monthMillis     = 30 * dayMillis
	testWindowLower = int64(1_700_000_000_000)
)

func testWindow() chain.FiniteRange {
	return chain.FiniteRange{Lower: testWindowLower, Upper: testWindowLower + 3_600_000}
}

// budgetWith builds a base-currency budget of limit 100 per 30 days with the
// given history.
func budgetWith(history []treasury.Withdrawal) treasury.BudgetConfig {
	return treasury.BudgetConfig{
		Asset:             chain.BaseCurrency,
		LimitAmount:       100,
		LimitWindowMillis: monthMillis,
		RecentWithdrawals: history,
	}
}

// recentSpend is a prior 80-unit withdrawal still inside the rolling window.
func recentSpend() treasury.Withdrawal {
	return treasury.Withdrawal{
		Amount: 80,
		ValidityRange: chain.FiniteRange{
			Lower: testWindowLower - 7*dayMillis,
			Upper: testWindowLower - 7*dayMillis + 3_600_000,
		},
	}
}

// expiredSpend is a withdrawal whose validity bound fell behind the cutoff.
func expiredSpend() treasury.Withdrawal {
	return treasury.Withdrawal{
		Amount: 50,
		ValidityRange: chain.FiniteRange{
			Lower: testWindowLower - 40*dayMillis,
			Upper: testWindowLower - 40*dayMillis + 3_600_000,
		},
	}
}

func TestCheckWindow(t *testing.T) {
	t.Run("finite within bound", func(t *testing.T) {
		window, err := CheckWindow(chain.FiniteInterval(0, dayMillis), dayMillis)
		require.NoError(t, err)
		assert.Equal(t, int64(0), window.Lower)
		assert.Equal(t, dayMillis, window.Upper)
	})

	t.Run("unbounded below", func(t *testing.T) {
		upper := int64(1000)
		_, err := CheckWindow(chain.Interval{Upper: &upper}, dayMillis)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindStructuralMismatch, kind)
	})

	t.Run("span over maximum", func(t *testing.T) {
		_, err := CheckWindow(chain.FiniteInterval(0, dayMillis+1), dayMillis)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindStructuralMismatch, kind)
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := CheckWindow(chain.FiniteInterval(1000, 0), dayMillis)
		_, ok := KindOf(err)
		assert.True(t, ok)
	})
}

func TestCheckBudgetPruneThenPrepend(t *testing.T) {
	old := budgetWith([]treasury.Withdrawal{recentSpend(), expiredSpend()})
	updated := budgetWith([]treasury.Withdrawal{
		{Amount: 30, ValidityRange: testWindow()},
		recentSpend(),
	})

	err := CheckBudget(LinearPolicy{}, 2, 3, 30, testWindow(), old, updated)
	assert.NoError(t, err)
}

func TestCheckBudgetRejectsUnprunedHistory(t *testing.T) {
	old := budgetWith([]treasury.Withdrawal{recentSpend(), expiredSpend()})
	// Expired entry kept: the history is not pruned-then-prepended.
	updated := budgetWith([]treasury.Withdrawal{
		{Amount: 30, ValidityRange: testWindow()},
		recentSpend(),
		expiredSpend(),
	})

	err := CheckBudget(LinearPolicy{}, 2, 3, 30, testWindow(), old, updated)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindStructuralMismatch, kind)
}

func TestCheckBudgetZeroSpendPrunesOnly(t *testing.T) {
	old := budgetWith([]treasury.Withdrawal{recentSpend(), expiredSpend()})

	t.Run("pruned history accepted", func(t *testing.T) {
		updated := budgetWith([]treasury.Withdrawal{recentSpend()})
		assert.NoError(t, CheckBudget(LinearPolicy{}, 1, 3, 0, testWindow(), old, updated))
	})

	t.Run("zero entry prepended rejected", func(t *testing.T) {
		updated := budgetWith([]treasury.Withdrawal{
			{Amount: 0, ValidityRange: testWindow()},
			recentSpend(),
		})
		err := CheckBudget(LinearPolicy{}, 1, 3, 0, testWindow(), old, updated)
		kind, ok := KindOf(err)
		require.True(t, ok)
		assert.Equal(t, KindStructuralMismatch, kind)
	})
}

func TestCheckBudgetRejectsNegativeSpend(t *testing.T) {
	old := budgetWith(nil)
	err := CheckBudget(LinearPolicy{}, 1, 3, -10, testWindow(), old, old)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindStructuralMismatch, kind)
}

func TestCheckBudgetCapScalesWithCoSigners(t *testing.T) {
	old := budgetWith([]treasury.Withdrawal{recentSpend()})
	updated := budgetWith([]treasury.Withdrawal{
		{Amount: 30, ValidityRange: testWindow()},
		recentSpend(),
	})

	// 80 already inside the window plus 30 now: a single owner is capped
	// at 100, two owners at 200.
	err := CheckBudget(LinearPolicy{}, 1, 3, 30, testWindow(), old, updated)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindBudgetExceeded, kind)

	assert.NoError(t, CheckBudget(LinearPolicy{}, 2, 3, 30, testWindow(), old, updated))
}

func TestCheckBudgetFullConsensusUncapped(t *testing.T) {
	old := budgetWith([]treasury.Withdrawal{recentSpend()})
	updated := budgetWith([]treasury.Withdrawal{
		{Amount: 100_000, ValidityRange: testWindow()},
		recentSpend(),
	})

	assert.NoError(t, CheckBudget(LinearPolicy{}, 3, 3, 100_000, testWindow(), old, updated))
}

func TestCheckBudgetRejectsStructuralChange(t *testing.T) {
	old := budgetWith(nil)
	updated := budgetWith([]treasury.Withdrawal{{Amount: 30, ValidityRange: testWindow()}})
	updated.LimitAmount = 1_000_000

	err := CheckBudget(LinearPolicy{}, 1, 3, 30, testWindow(), old, updated)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindStructuralMismatch, kind)
}

func TestLinearPolicy(t *testing.T) {
	policy := LinearPolicy{}

	t.Run("spend cap", func(t *testing.T) {
		allowed, unconditional := policy.SpendCap(2, 3, 100)
		assert.False(t, unconditional)
		assert.Equal(t, int64(200), allowed)

		_, unconditional = policy.SpendCap(3, 3, 100)
		assert.True(t, unconditional)

		_, unconditional = policy.SpendCap(0, 0, 100)
		assert.False(t, unconditional)
	})

	t.Run("recovery start needs majority but not all", func(t *testing.T) {
		assert.False(t, policy.AllowsRecoveryStart(1, 3))
		assert.True(t, policy.AllowsRecoveryStart(2, 3))
		assert.False(t, policy.AllowsRecoveryStart(3, 3))
		assert.False(t, policy.AllowsRecoveryStart(1, 1))
	})

	t.Run("recovery complete needs majority", func(t *testing.T) {
		assert.False(t, policy.AllowsRecoveryComplete(1, 3))
		assert.True(t, policy.AllowsRecoveryComplete(2, 3))
		assert.True(t, policy.AllowsRecoveryComplete(3, 3))
	})

	t.Run("structural change needs all", func(t *testing.T) {
		assert.False(t, policy.AllowsStructuralChange(2, 3))
		assert.True(t, policy.AllowsStructuralChange(3, 3))
		assert.False(t, policy.AllowsStructuralChange(0, 0))
	})
}
