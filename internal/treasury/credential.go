package treasury

import (
	"tesoro-api/internal/chain"
)

// OwnerKind discriminates the closed set of credential kinds that can govern
// a scope. Adding a kind is a deliberate extension point: every switch over
// OwnerKind in the engine is exhaustive with an explicit default rejection.
type OwnerKind uint8

const (
	// OwnerKey ties the scope to a signing-key hash
	OwnerKey OwnerKind = iota
	// OwnerScript ties the scope to a validator-script hash
	OwnerScript
	// OwnerToken ties the scope to whoever holds a token of a policy
	OwnerToken
)

// String returns "key", "script" or "token"
func (k OwnerKind) String() string {
	switch k {
	case OwnerKey:
		return "key"
	case OwnerScript:
		return "script"
	case OwnerToken:
		return "token"
	default:
		return "unknown"
	}
}

// OwnerCredential is the single credential governing a scope. Exactly one
// kind is active at a time; Hash holds the key hash, script hash, or token
// policy id depending on Kind.
type OwnerCredential struct {
	_    struct{}       `cbor:",toarray"`
	Kind OwnerKind      `json:"kind"`
	Hash chain.HexBytes `json:"hash"`
}

// Equal reports whether two owner credentials are identical.
func (o OwnerCredential) Equal(other OwnerCredential) bool {
	return o.Kind == other.Kind && o.Hash.Equal(other.Hash)
}

// BadgeKind discriminates the two ways a credential holder can prove they
// acted in a transition.
type BadgeKind uint8

const (
	// BadgeKeySignature proves use of a key credential by a transaction
	// signature
	BadgeKeySignature BadgeKind = iota
	// BadgeScriptWithdrawal proves use of a script credential by a
	// zero-or-more reward withdrawal exercised at a declared slot
	BadgeScriptWithdrawal
)

// TokenProof supplements a badge when the governing credential is
// token-based: it points at a referenced read-only input that must carry a
// token of the claimed policy and be owned by the credential the badge
// exercises.
type TokenProof struct {
	_             struct{}       `cbor:",toarray"`
	PolicyID      chain.HexBytes `json:"policy_id"`
	RefInputIndex int            `json:"ref_input_index"`
}

// Badge is a redeemer-supplied claim of which credential is being exercised
// and how. A verified badge establishes only that some credential holder
// acted; matching it against a scope's configured owner is a separate check.
type Badge struct {
	_    struct{}  `cbor:",toarray"`
	Kind BadgeKind `json:"kind"`

	// KeyHash is set for BadgeKeySignature
	KeyHash chain.HexBytes `json:"key_hash,omitempty"`

	// ScriptHash and WithdrawalSlot are set for BadgeScriptWithdrawal;
	// the slot is a position into the transition's withdrawal list
	ScriptHash     chain.HexBytes `json:"script_hash,omitempty"`
	WithdrawalSlot int            `json:"withdrawal_slot,omitempty"`

	// TokenProof is present when the badge claims a token-governed
	// credential
	TokenProof *TokenProof `json:"token_proof,omitempty"`
}

// Credential returns the ledger credential the badge claims to exercise.
func (b Badge) Credential() chain.Credential {
	if b.Kind == BadgeScriptWithdrawal {
		return chain.ScriptCredential(b.ScriptHash)
	}
	return chain.KeyCredential(b.KeyHash)
}

// LocationKind says which ordered list of the transition a record location
// indexes into.
type LocationKind uint8

const (
	// SpentIndex locates a record among consumed inputs
	SpentIndex LocationKind = iota
	// RefIndex locates a record among referenced read-only inputs
	RefIndex
)

// RecordLocation is an arena-style index into the transition's consumed or
// referenced inputs.
type RecordLocation struct {
	_     struct{}     `cbor:",toarray"`
	Kind  LocationKind `json:"kind"`
	Index int          `json:"index"`
}

// ScopeAuth claims that a badge authorizes the scope whose current record
// sits at the given location.
type ScopeAuth struct {
	_        struct{}       `cbor:",toarray"`
	Badge    Badge          `json:"badge"`
	Location RecordLocation `json:"location"`
}
