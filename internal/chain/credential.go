package chain

// CredentialKind discriminates payment credentials on the ledger side.
type CredentialKind uint8

const (
	// KeyHash marks a credential controlled by a signing key
	KeyHash CredentialKind = iota
	// ScriptHash marks a credential controlled by a validator script
	ScriptHash
)

// String returns "key" or "script"
func (k CredentialKind) String() string {
	if k == ScriptHash {
		return "script"
	}
	return "key"
}

// Credential is a payment or staking credential: a 28-byte hash of either a
// verification key or a script.
type Credential struct {
	_    struct{}       `cbor:",toarray"`
	Kind CredentialKind `json:"kind"`
	Hash HexBytes       `json:"hash"`
}

// KeyCredential builds a key-hash credential
func KeyCredential(hash HexBytes) Credential {
	return Credential{Kind: KeyHash, Hash: hash}
}

// ScriptCredential builds a script-hash credential
func ScriptCredential(hash HexBytes) Credential {
	return Credential{Kind: ScriptHash, Hash: hash}
}

// Equal reports whether two credentials have the same kind and hash
func (c Credential) Equal(other Credential) bool {
	return c.Kind == other.Kind && c.Hash.Equal(other.Hash)
}

// Address is a ledger address: a payment credential plus an optional staking
// credential. Only the payment part decides who can spend an output.
type Address struct {
	_       struct{}    `cbor:",toarray"`
	Payment Credential  `json:"payment"`
	Staking *Credential `json:"staking,omitempty"`
}

// Equal compares the payment parts only; two addresses that differ just in
// their staking credential still belong to the same spending authority.
func (a Address) Equal(other Address) bool {
	return a.Payment.Equal(other.Payment)
}
