package engine

import (
	"bytes"
	"testing"

	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHash builds a 28-byte hash filled with one byte, enough to stand in
// for key hashes, script hashes and policy ids in fixtures.
func testHash(b byte) chain.HexBytes {
	return bytes.Repeat([]byte{b}, 28)
}

func testCfg() config.Engine {
	defaults := config.Defaults{
		RootMarkerName:       []byte(config.DefaultRootMarkerName),
		RootReserve:          config.DefaultRootReserve,
		ScopeReserve:         config.DefaultScopeReserve,
		MaxWindowSpanMillis:  config.DefaultMaxWindowSpanMillis,
		ContestWindowMillis:  config.DefaultContestWindowMillis,
		ContestOverrideCount: config.DefaultContestOverrideCount,
	}
	return config.EngineFor(defaults, testHash(0x01), testHash(0x02),
		chain.OutRef{TxHash: testHash(0x03), Index: 0})
}

func mustDatum(t *testing.T, v any) []byte {
	t.Helper()
	data, err := chain.MarshalDatum(v)
	require.NoError(t, err)
	return data
}

// scopeOutput builds a scope record output at the treasury address carrying
// the scope's own marker.
func scopeOutput(t *testing.T, cfg config.Engine, prev *int, scope treasury.Scope, baseAmount int64) chain.Output {
	t.Helper()
	return chain.Output{
		Address: cfg.Address(),
		Value: chain.Value{
			chain.BaseCurrency:          baseAmount,
			cfg.ScopeMarker(scope.Name): 1,
		},
		Datum: mustDatum(t, treasury.ScopeRecordDatum{PreviousRecordIndex: prev, Scope: scope}),
	}
}

// rootOutput builds the root record output listing the given scopes.
func rootOutput(t *testing.T, cfg config.Engine, names []string) chain.Output {
	t.Helper()
	return chain.Output{
		Address: cfg.Address(),
		Value: chain.Value{
			chain.BaseCurrency: cfg.RootReserve,
			cfg.RootMarker():   1,
		},
		Datum: mustDatum(t, treasury.RootDatum{ScopeNames: names}),
	}
}

func keyOwner(b byte) treasury.OwnerCredential {
	return treasury.OwnerCredential{Kind: treasury.OwnerKey, Hash: testHash(b)}
}

func keyBadge(b byte) treasury.Badge {
	return treasury.Badge{Kind: treasury.BadgeKeySignature, KeyHash: testHash(b)}
}

func intPtr(i int) *int { return &i }

func TestParseEntryPoint(t *testing.T) {
	for _, name := range []string{"initialize", "spend", "withdraw"} {
		entry, ok := ParseEntryPoint(name)
		assert.True(t, ok)
		assert.Equal(t, name, entry.String())
	}
	_, ok := ParseEntryPoint("mint")
	assert.False(t, ok)
}

func TestValidateRejectsMissingView(t *testing.T) {
	err := Validate(testCfg(), LinearPolicy{}, nil, EntrySpend, Redeemer{Spend: &treasury.SpendRedeemer{}})
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindStructuralMismatch, kind)
}

func TestValidateRejectsRedeemerEntrypointMismatch(t *testing.T) {
	view := &chain.TxView{}
	tests := []struct {
		name     string
		entry    EntryPoint
		redeemer Redeemer
	}{
		{"spend without spend redeemer", EntrySpend, Redeemer{Withdraw: &treasury.WithdrawRedeemer{}}},
		{"initialize without mint redeemer", EntryInitialize, Redeemer{Spend: &treasury.SpendRedeemer{}}},
		{"withdraw without withdraw redeemer", EntryWithdraw, Redeemer{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(testCfg(), LinearPolicy{}, view, tt.entry, tt.redeemer)
			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, KindStructuralMismatch, kind)
		})
	}
}

func TestKindOfNonEngineError(t *testing.T) {
	_, ok := KindOf(assert.AnError)
	assert.False(t, ok)
}
