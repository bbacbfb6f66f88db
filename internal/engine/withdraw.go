package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"
)

// ValidateWithdraw validates the reward-withdrawal entrypoint in either of
// its two modes: distributing an external inflow across scopes, or merely
// asserting a list of scope authorizations to gate an unrelated certificate
// or governance action.
func ValidateWithdraw(cfg config.Engine, view *chain.TxView, redeemer *treasury.WithdrawRedeemer) error {
	root, err := resolveRoot(cfg, view, redeemer.RootRefIndex)
	if err != nil {
		return err
	}

	switch redeemer.Action.Kind {
	case treasury.ActionFundingViaWithdrawal:
		return validateFunding(cfg, view, root, redeemer.Action.Targets)
	case treasury.ActionCheckBadges:
		return validateCheckBadges(cfg, view, root, redeemer.Action.Auths)
	default:
		return rejectf(KindUnsupportedTransition,
			"unknown withdraw action %d", redeemer.Action.Kind)
	}
}

// validateFunding distributes the amount withdrawn from the treasury's
// reward account across scopes. Each funded scope authorizes its share
// independently, its record is reproduced unchanged except for the
// base-currency delta, and the declared deltas must sum to the withdrawn
// amount exactly.
func validateFunding(cfg config.Engine, view *chain.TxView, root *treasury.RootDatum, targets []treasury.FundingTarget) error {
	withdrawal, ok := view.WithdrawalFor(chain.ScriptCredential(cfg.ScriptHash))
	if !ok {
		return rejectf(KindStructuralMismatch,
			"transition exercises no withdrawal for the treasury credential")
	}
	if len(targets) == 0 {
		return rejectf(KindStructuralMismatch, "funding declares no targets")
	}

	var distributed int64
	seen := make(map[string]bool, len(targets))
	for i, target := range targets {
		// Funding consumes and reproduces each funded record, so the
		// authorization must point at a spent input.
		if target.Auth.Location.Kind != treasury.SpentIndex {
			return rejectf(KindStructuralMismatch,
				"funding target %d must locate a consumed record", i)
		}
		consumed, err := resolveAuthRecord(view, target.Auth.Location)
		if err != nil {
			return err
		}
		oldRecord, err := decodeScopeRecord(cfg, consumed)
		if err != nil {
			return err
		}
		if !root.Contains(oldRecord.Scope.Name) {
			return rejectf(KindStructuralMismatch,
				"scope %q is not listed by the root record", oldRecord.Scope.Name)
		}
		if seen[oldRecord.Scope.Name] {
			return rejectf(KindStructuralMismatch,
				"scope %q funded twice", oldRecord.Scope.Name)
		}
		seen[oldRecord.Scope.Name] = true

		if err := VerifyBadge(view, target.Auth.Badge); err != nil {
			return err
		}
		if !BadgeMatchesOwner(oldRecord.Scope.Owner, target.Auth.Badge) {
			return rejectf(KindOwnerMismatch,
				"badge does not match the owner of %q", oldRecord.Scope.Name)
		}

		if target.OutputIndex < 0 || target.OutputIndex >= len(view.Outputs) {
			return rejectf(KindIndexOutOfRange,
				"funding output index %d outside %d outputs", target.OutputIndex, len(view.Outputs))
		}
		produced := view.Outputs[target.OutputIndex]
		newRecord, err := decodeScopeRecord(cfg, produced)
		if err != nil {
			return err
		}
		if newRecord.PreviousRecordIndex == nil ||
			*newRecord.PreviousRecordIndex != target.Auth.Location.Index {
			return rejectf(KindStructuralMismatch,
				"funded record of %q does not link to its consumed record", oldRecord.Scope.Name)
		}
		if newRecord.Scope.Name != oldRecord.Scope.Name {
			return rejectf(KindStructuralMismatch,
				"funded record renames %q to %q", oldRecord.Scope.Name, newRecord.Scope.Name)
		}
		if produced.ReferenceScript != nil {
			return rejectf(KindStructuralMismatch,
				"funded record of %q carries a reference script", oldRecord.Scope.Name)
		}

		// The record is preserved verbatim apart from the inflow.
		if !oldRecord.Scope.StructuralEqual(&newRecord.Scope) {
			return rejectf(KindStructuralMismatch,
				"funding changed the scope configuration of %q", oldRecord.Scope.Name)
		}
		for j := range oldRecord.Scope.Budgets {
			if !treasury.WithdrawalsEqual(
				oldRecord.Scope.Budgets[j].RecentWithdrawals,
				newRecord.Scope.Budgets[j].RecentWithdrawals) {
				return rejectf(KindStructuralMismatch,
					"funding changed the spend history of %q", oldRecord.Scope.Name)
			}
		}

		delta := produced.Value.Sub(consumed.Value)
		for asset, qty := range delta {
			if asset != chain.BaseCurrency && qty != 0 {
				return rejectf(KindStructuralMismatch,
					"funding moved non-currency asset %q on %q", string(asset), oldRecord.Scope.Name)
			}
		}
		share := delta.Get(chain.BaseCurrency)
		if share < 0 {
			return rejectf(KindStructuralMismatch,
				"funding drained %d from %q", -share, oldRecord.Scope.Name)
		}
		distributed += share
	}

	if distributed != withdrawal.Amount {
		return rejectf(KindStructuralMismatch,
			"declared deltas sum to %d, withdrawal moved %d", distributed, withdrawal.Amount)
	}
	return nil
}

// validateCheckBadges asserts each scope authorization independently without
// moving value. Records are typically referenced read-only here.
func validateCheckBadges(cfg config.Engine, view *chain.TxView, root *treasury.RootDatum, auths []treasury.ScopeAuth) error {
	if len(auths) == 0 {
		return rejectf(KindStructuralMismatch, "badge check declares no authorizations")
	}
	for _, auth := range auths {
		record, err := resolveAuthRecord(view, auth.Location)
		if err != nil {
			return err
		}
		datum, err := decodeScopeRecord(cfg, record)
		if err != nil {
			return err
		}
		if !root.Contains(datum.Scope.Name) {
			return rejectf(KindStructuralMismatch,
				"scope %q is not listed by the root record", datum.Scope.Name)
		}
		if err := VerifyBadge(view, auth.Badge); err != nil {
			return err
		}
		if !BadgeMatchesOwner(datum.Scope.Owner, auth.Badge) {
			return rejectf(KindOwnerMismatch,
				"badge does not match the owner of %q", datum.Scope.Name)
		}
	}
	return nil
}
