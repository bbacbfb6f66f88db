package treasury

import (
	"testing"

	"tesoro-api/internal/chain"

	"github.com/stretchr/testify/assert"
)

func withdrawal(amount, lower, upper int64) Withdrawal {
	return Withdrawal{Amount: amount, ValidityRange: chain.FiniteRange{Lower: lower, Upper: upper}}
}

func TestPruneWithdrawals(t *testing.T) {
	history := []Withdrawal{
		withdrawal(30, 900, 1000),
		withdrawal(80, 400, 500),
		withdrawal(50, 90, 100),
	}

	t.Run("drops entries behind the cutoff", func(t *testing.T) {
		kept := PruneWithdrawals(history, 400)
		assert.True(t, WithdrawalsEqual(kept, history[:2]))
	})

	t.Run("keeps an entry exactly at the cutoff", func(t *testing.T) {
		kept := PruneWithdrawals(history, 100)
		assert.True(t, WithdrawalsEqual(kept, history))
	})

	t.Run("empty history", func(t *testing.T) {
		assert.Empty(t, PruneWithdrawals(nil, 100))
	})
}

func TestSumWithdrawals(t *testing.T) {
	assert.Equal(t, int64(0), SumWithdrawals(nil))
	assert.Equal(t, int64(110), SumWithdrawals([]Withdrawal{
		withdrawal(30, 900, 1000),
		withdrawal(80, 400, 500),
	}))
}

func TestWithdrawalsEqual(t *testing.T) {
	a := []Withdrawal{withdrawal(30, 900, 1000)}

	assert.True(t, WithdrawalsEqual(a, []Withdrawal{withdrawal(30, 900, 1000)}))
	assert.False(t, WithdrawalsEqual(a, []Withdrawal{withdrawal(31, 900, 1000)}))
	assert.False(t, WithdrawalsEqual(a, []Withdrawal{withdrawal(30, 901, 1000)}))
	assert.False(t, WithdrawalsEqual(a, nil))
	assert.True(t, WithdrawalsEqual(nil, []Withdrawal{}))
}

func TestBudgetConfigStructuralEqual(t *testing.T) {
	base := BudgetConfig{Asset: chain.BaseCurrency, LimitAmount: 100, LimitWindowMillis: 1000}

	same := base
	same.RecentWithdrawals = []Withdrawal{withdrawal(30, 900, 1000)}
	assert.True(t, base.StructuralEqual(same), "history is not structural")

	changed := base
	changed.LimitAmount = 200
	assert.False(t, base.StructuralEqual(changed))
}
