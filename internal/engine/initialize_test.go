package engine

import (
	"testing"

	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"

	"github.com/stretchr/testify/assert"
)

// initFixture assembles a valid two-scope initialization transition.
type initFixture struct {
	cfg      config.Engine
	scopes   []treasury.Scope
	seed     chain.OutRef
	certs    []chain.Certificate
	mint     chain.Value
	redeemer *treasury.InitialMintRedeemer
}

func newInitFixture() *initFixture {
	cfg := testCfg()
	scopes := []treasury.Scope{
		namedScope("ops", 0xa1, nil),
		namedScope("eng", 0xb2, nil),
	}
	mint := chain.Value{cfg.RootMarker(): 1}
	for _, scope := range scopes {
		mint[cfg.ScopeMarker(scope.Name)] = 1
	}
	return &initFixture{
		cfg:    cfg,
		scopes: scopes,
		seed:   cfg.SeedRef,
		certs: []chain.Certificate{
			{Kind: chain.CertRegisterCredential, Credential: chain.ScriptCredential(cfg.ScriptHash)},
		},
		mint: mint,
		redeemer: &treasury.InitialMintRedeemer{
			Scopes:            scopes,
			RegisterCertIndex: 0,
		},
	}
}

func (f *initFixture) build(t *testing.T) *chain.TxView {
	t.Helper()

	names := make([]string, len(f.scopes))
	for i, scope := range f.scopes {
		names[i] = scope.Name
	}
	root := rootOutput(t, f.cfg, names)
	root.ReferenceScript = &f.cfg.ScriptHash

	outputs := []chain.Output{root}
	for _, scope := range f.scopes {
		outputs = append(outputs, scopeOutput(t, f.cfg, nil, scope, f.cfg.ScopeReserve))
	}

	return &chain.TxView{
		Inputs: []chain.TxInput{
			{OutRef: f.seed, Output: chain.Output{
				Address: chain.Address{Payment: chain.KeyCredential(testHash(0xa1))},
				Value:   chain.Value{chain.BaseCurrency: 20_000_000},
			}},
		},
		Outputs:      outputs,
		Certificates: f.certs,
		Mint:         f.mint,
	}
}

func TestValidateInitializeHappyPath(t *testing.T) {
	f := newInitFixture()
	view := f.build(t)
	assert.NoError(t, ValidateInitialize(f.cfg, view, f.redeemer))
}

func TestValidateInitializeRequiresSeed(t *testing.T) {
	f := newInitFixture()
	f.seed = chain.OutRef{TxHash: testHash(0x42), Index: 7}
	view := f.build(t)
	requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
}

func TestValidateInitializeRequiresRegistration(t *testing.T) {
	t.Run("certificate index out of range", func(t *testing.T) {
		f := newInitFixture()
		f.redeemer.RegisterCertIndex = 2
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindIndexOutOfRange)
	})

	t.Run("registers a different credential", func(t *testing.T) {
		f := newInitFixture()
		f.certs[0].Credential = chain.ScriptCredential(testHash(0x42))
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("wrong certificate kind", func(t *testing.T) {
		f := newInitFixture()
		f.certs[0].Kind = chain.CertDeregisterCredential
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})
}

func TestValidateInitializeScopeNames(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		f := newInitFixture()
		f.scopes[1].Name = "ops"
		f.redeemer.Scopes = f.scopes
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		f := newInitFixture()
		f.scopes[1].Name = ""
		f.redeemer.Scopes = f.scopes
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})
}

func TestValidateInitializeMintSet(t *testing.T) {
	t.Run("extra marker minted", func(t *testing.T) {
		f := newInitFixture()
		f.mint[f.cfg.ScopeMarker("rogue")] = 1
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindDuplicateOrMissingMint)
	})

	t.Run("marker minted twice", func(t *testing.T) {
		f := newInitFixture()
		f.mint[f.cfg.ScopeMarker("ops")] = 2
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindDuplicateOrMissingMint)
	})

	t.Run("root marker missing", func(t *testing.T) {
		f := newInitFixture()
		delete(f.mint, f.cfg.RootMarker())
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindDuplicateOrMissingMint)
	})
}

func TestValidateInitializeRootOutput(t *testing.T) {
	t.Run("missing reference script", func(t *testing.T) {
		f := newInitFixture()
		view := f.build(t)
		view.Outputs[0].ReferenceScript = nil
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("inflated reserve", func(t *testing.T) {
		f := newInitFixture()
		view := f.build(t)
		view.Outputs[0].Value[chain.BaseCurrency] = f.cfg.RootReserve + 1
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("names out of order", func(t *testing.T) {
		f := newInitFixture()
		view := f.build(t)
		view.Outputs[0].Datum = mustDatum(t, treasury.RootDatum{ScopeNames: []string{"eng", "ops"}})
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})
}

func TestValidateInitializeScopeOutputs(t *testing.T) {
	t.Run("record claims a prior record", func(t *testing.T) {
		f := newInitFixture()
		view := f.build(t)
		view.Outputs[1] = scopeOutput(t, f.cfg, intPtr(0), f.scopes[0], f.cfg.ScopeReserve)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("record starts with spend history", func(t *testing.T) {
		f := newInitFixture()
		dirty := f.scopes[0]
		dirty.Budgets = []treasury.BudgetConfig{budgetWith([]treasury.Withdrawal{recentSpend()})}
		view := f.build(t)
		view.Outputs[1] = scopeOutput(t, f.cfg, nil, dirty, f.cfg.ScopeReserve)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("record starts in recovery", func(t *testing.T) {
		f := newInitFixture()
		pending := f.scopes[0]
		pending.Status = treasury.StatusRecoveryPending
		pending.Recovery = &treasury.RecoveryState{DeadlineMillis: 1}
		view := f.build(t)
		view.Outputs[1] = scopeOutput(t, f.cfg, nil, pending, f.cfg.ScopeReserve)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("negative limit", func(t *testing.T) {
		f := newInitFixture()
		f.scopes[0].Budgets = []treasury.BudgetConfig{{
			Asset:             chain.BaseCurrency,
			LimitAmount:       -1,
			LimitWindowMillis: monthMillis,
		}}
		f.redeemer.Scopes = f.scopes
		view := f.build(t)
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})

	t.Run("too few outputs", func(t *testing.T) {
		f := newInitFixture()
		view := f.build(t)
		view.Outputs = view.Outputs[:2]
		requireKind(t, ValidateInitialize(f.cfg, view, f.redeemer), KindStructuralMismatch)
	})
}
