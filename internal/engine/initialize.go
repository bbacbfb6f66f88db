package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"
)

// ValidateInitialize validates the one-shot setup transition that mints the
// root record and every scope record. It can only ever fire once: it is
// gated on consuming the deployment's designated seed input.
func ValidateInitialize(cfg config.Engine, view *chain.TxView, redeemer *treasury.InitialMintRedeemer) error {
	if !view.ConsumesRef(cfg.SeedRef) {
		return rejectf(KindStructuralMismatch,
			"initialization does not consume the designated seed input")
	}

	// The treasury's withdrawal credential must be registered in the same
	// transition so the funding entrypoint is usable afterwards.
	if redeemer.RegisterCertIndex < 0 || redeemer.RegisterCertIndex >= len(view.Certificates) {
		return rejectf(KindIndexOutOfRange,
			"register certificate index %d outside %d certificates",
			redeemer.RegisterCertIndex, len(view.Certificates))
	}
	cert := view.Certificates[redeemer.RegisterCertIndex]
	if cert.Kind != chain.CertRegisterCredential ||
		cert.Credential.Kind != chain.ScriptHash ||
		!cert.Credential.Hash.Equal(cfg.ScriptHash) {
		return rejectf(KindStructuralMismatch,
			"certificate %d does not register the treasury credential", redeemer.RegisterCertIndex)
	}

	names := make(map[string]bool, len(redeemer.Scopes))
	for _, scope := range redeemer.Scopes {
		if scope.Name == "" {
			return rejectf(KindStructuralMismatch, "scope with empty name")
		}
		if names[scope.Name] {
			return rejectf(KindStructuralMismatch, "duplicate scope name %q", scope.Name)
		}
		names[scope.Name] = true
	}

	if len(view.Outputs) < 1+len(redeemer.Scopes) {
		return rejectf(KindStructuralMismatch,
			"initialization needs %d outputs, transition has %d",
			1+len(redeemer.Scopes), len(view.Outputs))
	}

	if err := checkRootOutput(cfg, view.Outputs[0], redeemer.Scopes); err != nil {
		return err
	}
	for i, scope := range redeemer.Scopes {
		if err := checkInitialScopeOutput(cfg, view.Outputs[i+1], scope); err != nil {
			return err
		}
	}

	return checkInitialMint(cfg, view.Mint, redeemer.Scopes)
}

// checkRootOutput validates output 0: the root authenticity marker plus the
// minimum reserve at the treasury's own address, a datum listing all scope
// names in order, and the validation logic attached as a reusable reference.
func checkRootOutput(cfg config.Engine, record chain.Output, scopes []treasury.Scope) error {
	if !record.Address.Equal(cfg.Address()) {
		return rejectf(KindStructuralMismatch, "root record not at treasury address")
	}

	want := chain.Value{
		chain.BaseCurrency: cfg.RootReserve,
		cfg.RootMarker():   1,
	}
	if !record.Value.Equal(want) {
		return rejectf(KindStructuralMismatch,
			"root record must carry exactly the root marker and %d reserve", cfg.RootReserve)
	}

	datum, err := treasury.DecodeRootDatum(record.Datum)
	if err != nil {
		return rejectf(KindStructuralMismatch, "undecodable root datum: %v", err)
	}
	if len(datum.ScopeNames) != len(scopes) {
		return rejectf(KindStructuralMismatch,
			"root datum lists %d scopes, redeemer declares %d", len(datum.ScopeNames), len(scopes))
	}
	for i, scope := range scopes {
		if datum.ScopeNames[i] != scope.Name {
			return rejectf(KindStructuralMismatch,
				"root datum lists %q at position %d, expected %q", datum.ScopeNames[i], i, scope.Name)
		}
	}

	if record.ReferenceScript == nil || !record.ReferenceScript.Equal(cfg.ScriptHash) {
		return rejectf(KindStructuralMismatch,
			"root record must carry the treasury script as a reference")
	}
	return nil
}

// checkInitialScopeOutput validates one scope record minted at setup: its
// marker plus the minimum reserve, a datum carrying the declared initial
// scope with no prior-record link, an empty spend history, and an active
// status.
func checkInitialScopeOutput(cfg config.Engine, record chain.Output, scope treasury.Scope) error {
	datum, err := decodeScopeRecord(cfg, record)
	if err != nil {
		return err
	}
	if datum.PreviousRecordIndex != nil {
		return rejectf(KindStructuralMismatch,
			"initial record of %q claims a prior record", scope.Name)
	}
	if datum.Scope.Name != scope.Name || !datum.Scope.Owner.Equal(scope.Owner) {
		return rejectf(KindStructuralMismatch,
			"record datum does not match declared scope %q", scope.Name)
	}
	if datum.Scope.Status != treasury.StatusActive || datum.Scope.Recovery != nil ||
		datum.Scope.ContestCount != 0 {
		return rejectf(KindStructuralMismatch,
			"initial record of %q must start active", scope.Name)
	}
	if len(datum.Scope.Budgets) != len(scope.Budgets) {
		return rejectf(KindStructuralMismatch,
			"initial record of %q tracks %d assets, declared %d",
			scope.Name, len(datum.Scope.Budgets), len(scope.Budgets))
	}
	for i, budget := range datum.Scope.Budgets {
		if !budget.StructuralEqual(scope.Budgets[i]) {
			return rejectf(KindStructuralMismatch,
				"initial budget %d of %q differs from declaration", i, scope.Name)
		}
		if len(budget.RecentWithdrawals) != 0 {
			return rejectf(KindStructuralMismatch,
				"initial record of %q has spend history", scope.Name)
		}
		if budget.LimitAmount < 0 || budget.LimitWindowMillis < 0 {
			return rejectf(KindStructuralMismatch,
				"initial budget %d of %q has negative limits", i, scope.Name)
		}
	}

	want := chain.Value{
		chain.BaseCurrency:          cfg.ScopeReserve,
		cfg.ScopeMarker(scope.Name): 1,
	}
	if !record.Value.Equal(want) {
		return rejectf(KindStructuralMismatch,
			"record of %q must carry exactly its marker and %d reserve", scope.Name, cfg.ScopeReserve)
	}
	return nil
}

// checkInitialMint verifies the minted set is exactly {root marker} plus one
// marker per scope, quantity one each.
func checkInitialMint(cfg config.Engine, mint chain.Value, scopes []treasury.Scope) error {
	want := chain.Value{cfg.RootMarker(): 1}
	for _, scope := range scopes {
		want[cfg.ScopeMarker(scope.Name)] = 1
	}
	if !mint.Equal(want) {
		return rejectf(KindDuplicateOrMissingMint,
			"minted set is not exactly the root marker plus one marker per scope")
	}
	return nil
}
