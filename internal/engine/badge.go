package engine

import (
	"tesoro-api/internal/chain"
	"tesoro-api/internal/treasury"
)

// VerifyBadge decides whether the badge is a valid proof that a specific
// credential holder authorized this transition. A verified badge proves only
// that someone acted; whether that someone is a scope's configured owner is
// BadgeMatchesOwner's job.
func VerifyBadge(view *chain.TxView, badge treasury.Badge) error {
	switch badge.Kind {
	case treasury.BadgeKeySignature:
		if !view.SignedBy(badge.KeyHash) {
			return rejectCause(KindCredentialProofInvalid, ErrMissingSignature,
				"key %s", badge.KeyHash)
		}
	case treasury.BadgeScriptWithdrawal:
		if badge.WithdrawalSlot < 0 || badge.WithdrawalSlot >= len(view.Withdrawals) {
			return rejectCause(KindCredentialProofInvalid, ErrWithdrawalSlotMismatch,
				"slot %d outside %d withdrawals", badge.WithdrawalSlot, len(view.Withdrawals))
		}
		exercised := view.Withdrawals[badge.WithdrawalSlot].Credential
		if exercised.Kind != chain.ScriptHash || !exercised.Hash.Equal(badge.ScriptHash) {
			return rejectCause(KindCredentialProofInvalid, ErrWithdrawalSlotMismatch,
				"slot %d exercises %s, badge claims script %s",
				badge.WithdrawalSlot, exercised.Hash, badge.ScriptHash)
		}
	default:
		return rejectf(KindCredentialProofInvalid, "unknown badge kind %d", badge.Kind)
	}

	if badge.TokenProof != nil {
		return verifyTokenProof(view, badge.Credential(), *badge.TokenProof)
	}
	return nil
}

// verifyTokenProof checks that the referenced read-only input (a) carries a
// token of the claimed policy and (b) is payable to the credential the badge
// exercised.
func verifyTokenProof(view *chain.TxView, exercised chain.Credential, proof treasury.TokenProof) error {
	if proof.RefInputIndex < 0 || proof.RefInputIndex >= len(view.ReferenceInputs) {
		return rejectCause(KindCredentialProofInvalid, ErrTokenNotFound,
			"token proof index %d outside %d reference inputs",
			proof.RefInputIndex, len(view.ReferenceInputs))
	}
	holder := view.ReferenceInputs[proof.RefInputIndex].Output

	found := false
	for _, asset := range holder.Value.AssetsUnderPolicy(proof.PolicyID) {
		if holder.Value.Get(asset) > 0 {
			found = true
			break
		}
	}
	if !found {
		return rejectCause(KindCredentialProofInvalid, ErrTokenNotFound,
			"no token of policy %s in reference input %d", proof.PolicyID, proof.RefInputIndex)
	}

	if !holder.Address.Payment.Equal(exercised) {
		return rejectCause(KindCredentialProofInvalid, ErrTokenOwnerMismatch,
			"token held by %s, badge exercised %s", holder.Address.Payment.Hash, exercised.Hash)
	}
	return nil
}

// BadgeMatchesOwner is the structural match between a scope's configured
// owner and a presented badge: key against key signature, script against
// script withdrawal, token against either badge kind carrying a token proof
// of the same policy.
func BadgeMatchesOwner(owner treasury.OwnerCredential, badge treasury.Badge) bool {
	switch owner.Kind {
	case treasury.OwnerKey:
		return badge.Kind == treasury.BadgeKeySignature && badge.KeyHash.Equal(owner.Hash)
	case treasury.OwnerScript:
		return badge.Kind == treasury.BadgeScriptWithdrawal && badge.ScriptHash.Equal(owner.Hash)
	case treasury.OwnerToken:
		return badge.TokenProof != nil && badge.TokenProof.PolicyID.Equal(owner.Hash)
	default:
		return false
	}
}
