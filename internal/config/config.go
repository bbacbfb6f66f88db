package config

import (
	"fmt"
	"os"
	"strconv"

	"tesoro-api/internal/chain"
)

// Default deployment constants. Overridable per environment; never mutable
// at runtime.
const (
	// DefaultMaxWindowSpanMillis bounds the validity window of any
	// transition evaluated against rolling budgets (24 hours).
	DefaultMaxWindowSpanMillis = int64(24 * 60 * 60 * 1000)

	// DefaultContestWindowMillis is how long a started recovery stays
	// contestable (7 days).
	DefaultContestWindowMillis = int64(7 * 24 * 60 * 60 * 1000)

	// DefaultRootReserve and DefaultScopeReserve are the base-currency
	// amounts pinned to the root and each scope record.
	DefaultRootReserve  = int64(5_000_000)
	DefaultScopeReserve = int64(2_000_000)

	// DefaultRootMarkerName is the asset name of the root authenticity
	// marker.
	DefaultRootMarkerName = "TESORO"

	// DefaultContestOverrideCount is how many contestations a scope can
	// absorb before a majority recovery proceeds regardless.
	DefaultContestOverrideCount = 3
)

// Defaults holds the environment-wide constants shared by every treasury
// this deployment serves. The per-treasury identity (script hash, marker
// policy, seed input) comes from the treasury registry instead.
type Defaults struct {
	RootMarkerName       []byte
	RootReserve          int64
	ScopeReserve         int64
	MaxWindowSpanMillis  int64
	ContestWindowMillis  int64
	ContestOverrideCount int
}

// Engine holds the deployment-time constants of one treasury's policy
// engine. The engine receives it by value and never mutates it.
type Engine struct {
	// ScriptHash is the treasury's own controlling script credential;
	// every record lives at an address paying to it, and the funding
	// entrypoint's reward withdrawals are attributed to it.
	ScriptHash chain.HexBytes

	// MarkerPolicy is the minting policy of the authenticity markers.
	MarkerPolicy chain.HexBytes

	// RootMarkerName is the asset name of the root marker; each scope's
	// marker uses the scope name as its asset name.
	RootMarkerName []byte

	// SeedRef is the designated unique input whose consumption gates the
	// one-shot initialization.
	SeedRef chain.OutRef

	// RootReserve and ScopeReserve are the base-currency amounts that
	// must sit on the root and scope records.
	RootReserve  int64
	ScopeReserve int64

	// MaxWindowSpanMillis bounds a transition's validity window.
	MaxWindowSpanMillis int64

	// ContestWindowMillis is the contestation countdown started by
	// a recovery.
	ContestWindowMillis int64

	// ContestOverrideCount is the contestation count past which further
	// contests no longer cancel a majority recovery.
	ContestOverrideCount int
}

// Address returns the treasury's own address.
func (e Engine) Address() chain.Address {
	return chain.Address{Payment: chain.ScriptCredential(e.ScriptHash)}
}

// RootMarker returns the asset id of the root authenticity marker.
func (e Engine) RootMarker() chain.AssetID {
	return chain.NewAssetID(e.MarkerPolicy, e.RootMarkerName)
}

// ScopeMarker returns the asset id of a scope's authenticity marker.
func (e Engine) ScopeMarker(name string) chain.AssetID {
	return chain.NewAssetID(e.MarkerPolicy, []byte(name))
}

// EngineFor combines deployment defaults with one treasury's identity.
func EngineFor(defaults Defaults, scriptHash, markerPolicy chain.HexBytes, seed chain.OutRef) Engine {
	if len(markerPolicy) == 0 {
		markerPolicy = scriptHash
	}
	return Engine{
		ScriptHash:           scriptHash,
		MarkerPolicy:         markerPolicy,
		RootMarkerName:       defaults.RootMarkerName,
		SeedRef:              seed,
		RootReserve:          defaults.RootReserve,
		ScopeReserve:         defaults.ScopeReserve,
		MaxWindowSpanMillis:  defaults.MaxWindowSpanMillis,
		ContestWindowMillis:  defaults.ContestWindowMillis,
		ContestOverrideCount: defaults.ContestOverrideCount,
	}
}

// DefaultsFromEnv builds the shared Defaults from environment variables,
// falling back to the constants above.
func DefaultsFromEnv() (Defaults, error) {
	defaults := Defaults{
		RootMarkerName:       []byte(envOr("TESORO_ROOT_MARKER_NAME", DefaultRootMarkerName)),
		RootReserve:          DefaultRootReserve,
		ScopeReserve:         DefaultScopeReserve,
		MaxWindowSpanMillis:  DefaultMaxWindowSpanMillis,
		ContestWindowMillis:  DefaultContestWindowMillis,
		ContestOverrideCount: DefaultContestOverrideCount,
	}

	for _, override := range []struct {
		env    string
		target *int64
	}{
		{"TESORO_ROOT_RESERVE", &defaults.RootReserve},
		{"TESORO_SCOPE_RESERVE", &defaults.ScopeReserve},
		{"TESORO_MAX_WINDOW_MILLIS", &defaults.MaxWindowSpanMillis},
		{"TESORO_CONTEST_WINDOW_MILLIS", &defaults.ContestWindowMillis},
	} {
		raw := os.Getenv(override.env)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return Defaults{}, fmt.Errorf("invalid %s: %q", override.env, raw)
		}
		*override.target = parsed
	}

	if raw := os.Getenv("TESORO_CONTEST_OVERRIDE_COUNT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return Defaults{}, fmt.Errorf("invalid TESORO_CONTEST_OVERRIDE_COUNT: %q", raw)
		}
		defaults.ContestOverrideCount = parsed
	}

	return defaults, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
