package treasury

import (
	"testing"

	"tesoro-api/internal/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScope() Scope {
	return Scope{
		Name:  "ops",
		Owner: OwnerCredential{Kind: OwnerKey, Hash: chain.MustHex("a1a1")},
		Budgets: []BudgetConfig{
			{Asset: chain.BaseCurrency, LimitAmount: 100, LimitWindowMillis: 1000},
		},
		Status: StatusActive,
	}
}

func TestScopeStructuralEqual(t *testing.T) {
	base := sampleScope()

	t.Run("history differences are not structural", func(t *testing.T) {
		other := sampleScope()
		other.Budgets[0].RecentWithdrawals = []Withdrawal{withdrawal(30, 900, 1000)}
		assert.True(t, base.StructuralEqual(&other))
	})

	t.Run("owner change is structural", func(t *testing.T) {
		other := sampleScope()
		other.Owner = OwnerCredential{Kind: OwnerKey, Hash: chain.MustHex("b2b2")}
		assert.False(t, base.StructuralEqual(&other))
	})

	t.Run("status change is structural", func(t *testing.T) {
		other := sampleScope()
		other.Status = StatusRecoveryPending
		other.Recovery = &RecoveryState{DeadlineMillis: 5}
		assert.False(t, base.StructuralEqual(&other))
	})

	t.Run("contest count is structural", func(t *testing.T) {
		other := sampleScope()
		other.ContestCount = 1
		assert.False(t, base.StructuralEqual(&other))
	})

	t.Run("budget limit change is structural", func(t *testing.T) {
		other := sampleScope()
		other.Budgets[0].LimitAmount = 200
		assert.False(t, base.StructuralEqual(&other))
	})
}

func TestScopeBudgetFor(t *testing.T) {
	scope := sampleScope()

	budget, ok := scope.BudgetFor(chain.BaseCurrency)
	require.True(t, ok)
	assert.Equal(t, int64(100), budget.LimitAmount)

	_, ok = scope.BudgetFor(chain.AssetID("aa.bb"))
	assert.False(t, ok)
}

func TestScopeRecordDatumRoundTrip(t *testing.T) {
	prev := 2
	datum := ScopeRecordDatum{
		PreviousRecordIndex: &prev,
		Scope:               sampleScope(),
	}
	datum.Scope.Budgets[0].RecentWithdrawals = []Withdrawal{withdrawal(30, 900, 1000)}
	datum.Scope.Recovery = &RecoveryState{DeadlineMillis: 12345}
	datum.Scope.Status = StatusRecoveryPending

	encoded, err := chain.MarshalDatum(datum)
	require.NoError(t, err)

	decoded, err := DecodeScopeRecordDatum(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded.PreviousRecordIndex)
	assert.Equal(t, 2, *decoded.PreviousRecordIndex)
	assert.Equal(t, "ops", decoded.Scope.Name)
	assert.Equal(t, StatusRecoveryPending, decoded.Scope.Status)
	require.NotNil(t, decoded.Scope.Recovery)
	assert.Equal(t, int64(12345), decoded.Scope.Recovery.DeadlineMillis)
	assert.True(t, WithdrawalsEqual(
		datum.Scope.Budgets[0].RecentWithdrawals,
		decoded.Scope.Budgets[0].RecentWithdrawals,
	))
}

func TestRootDatumContains(t *testing.T) {
	root := RootDatum{ScopeNames: []string{"ops", "eng"}}
	assert.True(t, root.Contains("ops"))
	assert.False(t, root.Contains("mkt"))

	encoded, err := chain.MarshalDatum(root)
	require.NoError(t, err)
	decoded, err := DecodeRootDatum(encoded)
	require.NoError(t, err)
	assert.Equal(t, root.ScopeNames, decoded.ScopeNames)
}

func TestDecodeRejectsWrongShape(t *testing.T) {
	// A root datum is not a scope record.
	encoded, err := chain.MarshalDatum(RootDatum{ScopeNames: []string{"ops"}})
	require.NoError(t, err)
	_, err = DecodeScopeRecordDatum(encoded)
	assert.Error(t, err)
}
