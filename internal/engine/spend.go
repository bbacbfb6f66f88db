package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/treasury"
)

// rationaleHashLen is the byte length of the rationale content hash.
const rationaleHashLen = 32

// ValidateSpend validates one scope-record transition end to end: an
// ordinary spend, a recovery start, a contestation, or a recovery
// completion. Any single failed check rejects the whole transition.
func ValidateSpend(cfg config.Engine, policy Policy, view *chain.TxView, redeemer *treasury.SpendRedeemer) error {
	window, err := CheckWindow(view.ValidRange, cfg.MaxWindowSpanMillis)
	if err != nil {
		return err
	}

	root, err := resolveRoot(cfg, view, redeemer.RootRefIndex)
	if err != nil {
		return err
	}

	if redeemer.SpentInputIndex < 0 || redeemer.SpentInputIndex >= len(view.Inputs) {
		return rejectf(KindIndexOutOfRange,
			"spent input index %d outside %d inputs", redeemer.SpentInputIndex, len(view.Inputs))
	}
	consumed := view.Inputs[redeemer.SpentInputIndex].Output
	oldRecord, err := decodeScopeRecord(cfg, consumed)
	if err != nil {
		return err
	}
	if !root.Contains(oldRecord.Scope.Name) {
		return rejectf(KindStructuralMismatch,
			"scope %q is not listed by the root record", oldRecord.Scope.Name)
	}

	if redeemer.NextOutputIndex < 0 || redeemer.NextOutputIndex >= len(view.Outputs) {
		return rejectf(KindIndexOutOfRange,
			"next output index %d outside %d outputs", redeemer.NextOutputIndex, len(view.Outputs))
	}
	produced := view.Outputs[redeemer.NextOutputIndex]
	newRecord, err := decodeScopeRecord(cfg, produced)
	if err != nil {
		return err
	}

	// Anti-double-satisfaction: the produced record must link to the
	// exact input position of the record it replaces. Authorization for
	// this transition cannot be reused to justify another.
	if newRecord.PreviousRecordIndex == nil || *newRecord.PreviousRecordIndex != redeemer.SpentInputIndex {
		return rejectf(KindStructuralMismatch,
			"produced record does not link to consumed record at input %d", redeemer.SpentInputIndex)
	}
	if newRecord.Scope.Name != oldRecord.Scope.Name {
		return rejectf(KindStructuralMismatch,
			"scope name changed from %q to %q", oldRecord.Scope.Name, newRecord.Scope.Name)
	}

	if err := checkMarkerContinuity(cfg, view, oldRecord.Scope.Name, redeemer.NextOutputIndex); err != nil {
		return err
	}
	if produced.ReferenceScript != nil {
		return rejectf(KindStructuralMismatch,
			"produced scope record carries a reference script")
	}

	activeSet, totalOwners, err := countActiveOwners(cfg, view, root, redeemer.Badges)
	if err != nil {
		return err
	}
	activeCount := len(activeSet)

	switch redeemer.Action.Kind {
	case treasury.ActionSpend:
		return validateOrdinarySpend(cfg, policy, view, redeemer, window,
			oldRecord, newRecord, consumed, produced, activeCount, totalOwners)
	case treasury.ActionStartRecover:
		return validateStartRecover(cfg, policy, window,
			oldRecord, newRecord, consumed, produced, activeCount, totalOwners)
	case treasury.ActionContest:
		return validateContest(cfg, oldRecord, newRecord, consumed, produced, activeCount)
	case treasury.ActionCompleteRecover:
		return validateCompleteRecover(cfg, policy, redeemer.Action, window,
			oldRecord, newRecord, consumed, produced, activeCount, totalOwners)
	default:
		return rejectf(KindUnsupportedTransition,
			"unknown spend action %d", redeemer.Action.Kind)
	}
}

// checkMarkerContinuity ensures the scope's authenticity marker appears in
// exactly one output (the declared one) and is neither minted nor burned
// by this transition.
func checkMarkerContinuity(cfg config.Engine, view *chain.TxView, scopeName string, declaredOutput int) error {
	marker := cfg.ScopeMarker(scopeName)
	if view.Mint.Get(marker) != 0 {
		return rejectf(KindStructuralMismatch,
			"transition mints or burns the authenticity marker of %q", scopeName)
	}
	for i, out := range view.Outputs {
		qty := out.Value.Get(marker)
		if i == declaredOutput {
			if qty != 1 {
				return rejectf(KindStructuralMismatch,
					"declared output %d does not carry the marker of %q", i, scopeName)
			}
			continue
		}
		if qty != 0 {
			return rejectf(KindStructuralMismatch,
				"marker of %q duplicated at output %d", scopeName, i)
		}
	}
	return nil
}

// validateOrdinarySpend checks an Active -> Active budgeted spend.
func validateOrdinarySpend(cfg config.Engine, policy Policy, view *chain.TxView, redeemer *treasury.SpendRedeemer, window chain.FiniteRange, oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output, activeCount, totalOwners int) error {
	if oldRecord.Scope.Status != treasury.StatusActive {
		return rejectf(KindUnsupportedTransition,
			"scope %q is not active", oldRecord.Scope.Name)
	}
	if activeCount == 0 {
		return rejectf(KindUnsupportedTransition,
			"spend without any active owner")
	}

	// Every scope spend carries an auditable rationale. Its content is
	// not mechanically checked here, only that the pointer is complete.
	if redeemer.Rationale == nil || redeemer.Rationale.URL == "" ||
		len(redeemer.Rationale.ContentHash) != rationaleHashLen {
		return rejectf(KindStructuralMismatch,
			"spend requires a rationale with URL and %d-byte content hash", rationaleHashLen)
	}

	_, unconditional := policy.SpendCap(activeCount, totalOwners, 0)
	if !unconditional {
		// Under partial authorization the spending scope's own owner
		// must be among the signers; co-signers only widen the cap.
		ownerActive := false
		for _, badge := range redeemer.Badges {
			if BadgeMatchesOwner(oldRecord.Scope.Owner, badge) {
				ownerActive = true
				break
			}
		}
		if !ownerActive {
			return rejectf(KindOwnerMismatch,
				"no presented badge matches the owner of %q", oldRecord.Scope.Name)
		}
	}

	if err := checkDeclaredDelta(redeemer.Action.Amounts, oldRecord.Scope.Budgets, consumed, produced); err != nil {
		return err
	}
	if produced.Value.Get(chain.BaseCurrency) < cfg.ScopeReserve {
		return rejectf(KindStructuralMismatch,
			"produced record falls below the %d base-currency reserve", cfg.ScopeReserve)
	}

	if unconditional && policy.AllowsStructuralChange(activeCount, totalOwners) {
		// Full consensus overrides every limit and immutability rule;
		// only the structural spine checked above still binds.
		return nil
	}

	if !oldRecord.Scope.StructuralEqual(&newRecord.Scope) {
		return rejectf(KindStructuralMismatch,
			"scope %q changed immutable fields under partial authorization", oldRecord.Scope.Name)
	}
	for i := range oldRecord.Scope.Budgets {
		spendAmount := redeemer.Action.Amounts[i].Amount
		err := CheckBudget(policy, activeCount, totalOwners, spendAmount, window,
			oldRecord.Scope.Budgets[i], newRecord.Scope.Budgets[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// checkDeclaredDelta verifies the declared per-asset amounts line up with
// the scope's budget list and equal the value difference between consumed
// and produced record, asset by asset. Zero flows are declared, never
// omitted, and nothing may move undeclared.
func checkDeclaredDelta(amounts []treasury.AssetAmount, budgets []treasury.BudgetConfig, consumed, produced chain.Output) error {
	if len(amounts) != len(budgets) {
		return rejectf(KindStructuralMismatch,
			"declared %d per-asset amounts for %d tracked assets", len(amounts), len(budgets))
	}
	delta := consumed.Value.Sub(produced.Value)
	declared := make(map[chain.AssetID]bool, len(amounts))
	for i, amount := range amounts {
		if amount.Asset != budgets[i].Asset {
			return rejectf(KindStructuralMismatch,
				"declared asset %q at position %d, budget tracks %q",
				string(amount.Asset), i, string(budgets[i].Asset))
		}
		if delta.Get(amount.Asset) != amount.Amount {
			return rejectf(KindStructuralMismatch,
				"declared flow %d for %q, record moved %d",
				amount.Amount, string(amount.Asset), delta.Get(amount.Asset))
		}
		declared[amount.Asset] = true
	}
	for asset, qty := range delta {
		if qty != 0 && !declared[asset] {
			return rejectf(KindStructuralMismatch,
				"undeclared flow of %d in %q", qty, string(asset))
		}
	}
	return nil
}

// validateStartRecover checks Active -> RecoveryPending. The scope's own
// credential is presumed unable to act, so its badge is not required; a
// majority of the other owner seats is.
func validateStartRecover(cfg config.Engine, policy Policy, window chain.FiniteRange, oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output, activeCount, totalOwners int) error {
	if oldRecord.Scope.Status != treasury.StatusActive {
		return rejectf(KindUnsupportedTransition,
			"scope %q is not active", oldRecord.Scope.Name)
	}
	_, unconditional := policy.SpendCap(activeCount, totalOwners, 0)
	if !policy.AllowsRecoveryStart(activeCount, totalOwners) && !unconditional {
		return rejectf(KindUnsupportedTransition,
			"recovery start needs a majority of owner seats, got %d of %d", activeCount, totalOwners)
	}

	if err := checkRecordPreserved(oldRecord, newRecord, consumed, produced); err != nil {
		return err
	}
	if newRecord.Scope.Status != treasury.StatusRecoveryPending || newRecord.Scope.Recovery == nil {
		return rejectf(KindStructuralMismatch,
			"recovery start must move scope %q to recovery_pending", oldRecord.Scope.Name)
	}
	wantDeadline := window.Upper + cfg.ContestWindowMillis
	if newRecord.Scope.Recovery.DeadlineMillis != wantDeadline {
		return rejectf(KindStructuralMismatch,
			"recovery deadline is %d, expected %d",
			newRecord.Scope.Recovery.DeadlineMillis, wantDeadline)
	}
	if newRecord.Scope.ContestCount != oldRecord.Scope.ContestCount {
		return rejectf(KindStructuralMismatch, "recovery start must preserve the contest count")
	}
	return nil
}

// validateContest checks RecoveryPending -> Active. Any single configured
// owner cancels a pending recovery, until the contest counter exhausts the
// override allowance.
func validateContest(cfg config.Engine, oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output, activeCount int) error {
	if oldRecord.Scope.Status != treasury.StatusRecoveryPending {
		return rejectf(KindUnsupportedTransition,
			"scope %q has no pending recovery to contest", oldRecord.Scope.Name)
	}
	if activeCount == 0 {
		return rejectf(KindUnsupportedTransition,
			"contest requires at least one owner seat")
	}
	if oldRecord.Scope.ContestCount >= cfg.ContestOverrideCount {
		return rejectf(KindUnsupportedTransition,
			"contest allowance exhausted after %d contestations", oldRecord.Scope.ContestCount)
	}

	if err := checkRecordPreserved(oldRecord, newRecord, consumed, produced); err != nil {
		return err
	}
	if newRecord.Scope.Status != treasury.StatusActive || newRecord.Scope.Recovery != nil {
		return rejectf(KindStructuralMismatch,
			"contest must return scope %q to active", oldRecord.Scope.Name)
	}
	if newRecord.Scope.ContestCount != oldRecord.Scope.ContestCount+1 {
		return rejectf(KindStructuralMismatch, "contest must increment the contest count")
	}
	return nil
}

// validateCompleteRecover checks RecoveryPending -> Active with the owner
// credential rotated. The contestation window must have run out.
func validateCompleteRecover(cfg config.Engine, policy Policy, action treasury.SpendAction, window chain.FiniteRange, oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output, activeCount, totalOwners int) error {
	if oldRecord.Scope.Status != treasury.StatusRecoveryPending || oldRecord.Scope.Recovery == nil {
		return rejectf(KindUnsupportedTransition,
			"scope %q has no pending recovery to complete", oldRecord.Scope.Name)
	}
	_, unconditional := policy.SpendCap(activeCount, totalOwners, 0)
	if !policy.AllowsRecoveryComplete(activeCount, totalOwners) && !unconditional {
		return rejectf(KindUnsupportedTransition,
			"recovery completion needs a majority of owner seats, got %d of %d", activeCount, totalOwners)
	}
	if window.Lower < oldRecord.Scope.Recovery.DeadlineMillis {
		return rejectf(KindUnsupportedTransition,
			"contestation window open until %d, transition starts at %d",
			oldRecord.Scope.Recovery.DeadlineMillis, window.Lower)
	}
	if action.NewOwner == nil {
		return rejectf(KindStructuralMismatch, "recovery completion must name a new owner")
	}

	if err := checkValueAndBudgetsPreserved(oldRecord, newRecord, consumed, produced); err != nil {
		return err
	}
	if newRecord.Scope.Status != treasury.StatusActive || newRecord.Scope.Recovery != nil {
		return rejectf(KindStructuralMismatch,
			"completed recovery must return scope %q to active", oldRecord.Scope.Name)
	}
	if !newRecord.Scope.Owner.Equal(*action.NewOwner) {
		return rejectf(KindStructuralMismatch,
			"produced record's owner is not the declared new owner")
	}
	if newRecord.Scope.ContestCount != 0 {
		return rejectf(KindStructuralMismatch,
			"completed recovery must reset the contest count")
	}
	return nil
}

// checkRecordPreserved verifies a recovery-flow transition changed nothing
// but the lifecycle fields: same owner, same budgets including histories,
// same value.
func checkRecordPreserved(oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output) error {
	if !newRecord.Scope.Owner.Equal(oldRecord.Scope.Owner) {
		return rejectf(KindStructuralMismatch, "owner changed during recovery flow")
	}
	return checkValueAndBudgetsPreserved(oldRecord, newRecord, consumed, produced)
}

// checkValueAndBudgetsPreserved verifies the record's value and budget
// bookkeeping carried over untouched.
func checkValueAndBudgetsPreserved(oldRecord, newRecord *treasury.ScopeRecordDatum, consumed, produced chain.Output) error {
	if !consumed.Value.Equal(produced.Value) {
		return rejectf(KindStructuralMismatch, "record value changed during recovery flow")
	}
	if len(oldRecord.Scope.Budgets) != len(newRecord.Scope.Budgets) {
		return rejectf(KindStructuralMismatch, "budget list changed during recovery flow")
	}
	for i := range oldRecord.Scope.Budgets {
		oldBudget, newBudget := oldRecord.Scope.Budgets[i], newRecord.Scope.Budgets[i]
		if !oldBudget.StructuralEqual(newBudget) ||
			!treasury.WithdrawalsEqual(oldBudget.RecentWithdrawals, newBudget.RecentWithdrawals) {
			return rejectf(KindStructuralMismatch, "budget bookkeeping changed during recovery flow")
		}
	}
	return nil
}
