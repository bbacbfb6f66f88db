package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"
)

// resolveRoot locates and decodes the treasury's root record among the
// transition's referenced inputs.
func resolveRoot(cfg config.Engine, view *chain.TxView, rootRefIndex int) (*treasury.RootDatum, error) {
	if rootRefIndex < 0 || rootRefIndex >= len(view.ReferenceInputs) {
		return nil, rejectf(KindIndexOutOfRange,
			"root reference index %d outside %d reference inputs",
			rootRefIndex, len(view.ReferenceInputs))
	}
	record := view.ReferenceInputs[rootRefIndex].Output
	if !record.Address.Equal(cfg.Address()) {
		return nil, rejectf(KindStructuralMismatch,
			"root record not at treasury address")
	}
	if record.Value.Get(cfg.RootMarker()) != 1 {
		return nil, rejectf(KindStructuralMismatch,
			"root record does not carry the root authenticity marker")
	}
	root, err := treasury.DecodeRootDatum(record.Datum)
	if err != nil {
		return nil, rejectf(KindStructuralMismatch, "undecodable root datum: %v", err)
	}
	return root, nil
}

// decodeScopeRecord interprets an output as a scope record: it must sit at
// the treasury address and carry exactly one authenticity marker whose asset
// name is the scope's own name.
func decodeScopeRecord(cfg config.Engine, record chain.Output) (*treasury.ScopeRecordDatum, error) {
	if !record.Address.Equal(cfg.Address()) {
		return nil, rejectf(KindStructuralMismatch, "scope record not at treasury address")
	}
	datum, err := treasury.DecodeScopeRecordDatum(record.Datum)
	if err != nil {
		return nil, rejectf(KindStructuralMismatch, "undecodable scope datum: %v", err)
	}
	marker := cfg.ScopeMarker(datum.Scope.Name)
	if record.Value.Get(marker) != 1 {
		return nil, rejectf(KindStructuralMismatch,
			"scope record %q does not carry its authenticity marker", datum.Scope.Name)
	}
	// Exactly one marker: a record smuggling a second scope's marker (or
	// the root's) could impersonate it in a later transition.
	for _, asset := range record.Value.AssetsUnderPolicy(cfg.MarkerPolicy) {
		if asset != marker && record.Value.Get(asset) != 0 {
			return nil, rejectf(KindStructuralMismatch,
				"scope record %q carries a foreign authenticity marker", datum.Scope.Name)
		}
	}
	return datum, nil
}

// resolveAuthRecord resolves a ScopeAuth location to the output it names.
func resolveAuthRecord(view *chain.TxView, location treasury.RecordLocation) (chain.Output, error) {
	switch location.Kind {
	case treasury.SpentIndex:
		if location.Index < 0 || location.Index >= len(view.Inputs) {
			return chain.Output{}, rejectf(KindIndexOutOfRange,
				"spent index %d outside %d inputs", location.Index, len(view.Inputs))
		}
		return view.Inputs[location.Index].Output, nil
	case treasury.RefIndex:
		if location.Index < 0 || location.Index >= len(view.ReferenceInputs) {
			return chain.Output{}, rejectf(KindIndexOutOfRange,
				"reference index %d outside %d reference inputs",
				location.Index, len(view.ReferenceInputs))
		}
		return view.ReferenceInputs[location.Index].Output, nil
	default:
		return chain.Output{}, rejectf(KindIndexOutOfRange,
			"unknown record location kind %d", location.Kind)
	}
}

// collectOwners resolves the owner credential of every scope the root lists
// that is visible in this transition, scanning consumed then referenced
// inputs for records at the treasury address. Scopes not visible stay
// unresolved: their owners simply cannot be counted active.
func collectOwners(cfg config.Engine, view *chain.TxView, root *treasury.RootDatum) map[string]treasury.OwnerCredential {
	owners := make(map[string]treasury.OwnerCredential, len(root.ScopeNames))
	scan := func(record chain.Output) {
		datum, err := decodeScopeRecord(cfg, record)
		if err != nil {
			return
		}
		if !root.Contains(datum.Scope.Name) {
			return
		}
		if _, seen := owners[datum.Scope.Name]; seen {
			return
		}
		owners[datum.Scope.Name] = datum.Scope.Owner
	}
	for _, in := range view.Inputs {
		scan(in.Output)
	}
	for _, ref := range view.ReferenceInputs {
		scan(ref.Output)
	}
	return owners
}

// countActiveOwners verifies every presented badge and counts how many of
// the treasury's owner seats presented a matching one. Each badge is
// consumed by at most one seat (first match in root order wins), so a
// credential shared by several scopes still holds a single seat and cannot
// self-escalate. Any invalid or duplicate badge rejects the whole
// transition: the engine is fail-closed, a partially bogus authorization
// set is not an authorization set.
func countActiveOwners(cfg config.Engine, view *chain.TxView, root *treasury.RootDatum, badges []treasury.Badge) (active map[string]bool, total int, err error) {
	for i, badge := range badges {
		if err := VerifyBadge(view, badge); err != nil {
			return nil, 0, err
		}
		for _, prior := range badges[:i] {
			if badge.Credential().Equal(prior.Credential()) {
				return nil, 0, rejectf(KindCredentialProofInvalid,
					"duplicate badge for credential %s", badge.Credential().Hash)
			}
		}
	}

	owners := collectOwners(cfg, view, root)
	active = make(map[string]bool)
	claimed := make([]bool, len(badges))
	for _, name := range root.ScopeNames {
		owner, ok := owners[name]
		if !ok {
			continue
		}
		for i, badge := range badges {
			if claimed[i] || !BadgeMatchesOwner(owner, badge) {
				continue
			}
			claimed[i] = true
			active[name] = true
			break
		}
	}
	return active, len(root.ScopeNames), nil
}
