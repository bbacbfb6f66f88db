package config

import (
	"testing"

	"tesoro-api/internal/chain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		defaults, err := DefaultsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, []byte(DefaultRootMarkerName), defaults.RootMarkerName)
		assert.Equal(t, DefaultMaxWindowSpanMillis, defaults.MaxWindowSpanMillis)
		assert.Equal(t, DefaultContestOverrideCount, defaults.ContestOverrideCount)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("TESORO_SCOPE_RESERVE", "3000000")
		t.Setenv("TESORO_CONTEST_OVERRIDE_COUNT", "5")
		defaults, err := DefaultsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(3_000_000), defaults.ScopeReserve)
		assert.Equal(t, 5, defaults.ContestOverrideCount)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Setenv("TESORO_MAX_WINDOW_MILLIS", "soon")
		_, err := DefaultsFromEnv()
		assert.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		t.Setenv("TESORO_CONTEST_WINDOW_MILLIS", "-1")
		_, err := DefaultsFromEnv()
		assert.Error(t, err)
	})
}

func TestEngineFor(t *testing.T) {
	defaults, err := DefaultsFromEnv()
	require.NoError(t, err)

	script := chain.MustHex("aa11")
	seed := chain.OutRef{TxHash: chain.MustHex("bb22"), Index: 3}

	t.Run("marker policy falls back to the script hash", func(t *testing.T) {
		engine := EngineFor(defaults, script, nil, seed)
		assert.True(t, engine.MarkerPolicy.Equal(script))
	})

	t.Run("markers", func(t *testing.T) {
		engine := EngineFor(defaults, script, chain.MustHex("cc33"), seed)
		assert.Equal(t, chain.NewAssetID(chain.MustHex("cc33"), []byte(DefaultRootMarkerName)), engine.RootMarker())
		assert.Equal(t, chain.NewAssetID(chain.MustHex("cc33"), []byte("ops")), engine.ScopeMarker("ops"))
		assert.True(t, engine.Address().Payment.Hash.Equal(script))
	})
}
