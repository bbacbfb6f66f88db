package chain

// OutRef points at a transaction output by transaction hash and index.
type OutRef struct {
	_      struct{} `cbor:",toarray"`
	TxHash HexBytes `json:"tx_hash"`
	Index  uint32   `json:"index"`
}

// Equal reports whether two references name the same output.
func (r OutRef) Equal(other OutRef) bool {
	return r.Index == other.Index && r.TxHash.Equal(other.TxHash)
}

// Output is a produced (or previously produced) ledger output: an address,
// a value bundle, an optional inline datum, and an optional reference
// script hash.
type Output struct {
	_               struct{}  `cbor:",toarray"`
	Address         Address   `json:"address"`
	Value           Value     `json:"value"`
	Datum           []byte    `json:"datum,omitempty"`
	ReferenceScript *HexBytes `json:"reference_script,omitempty"`
}

// TxInput is a consumed or referenced output together with the reference
// that located it.
type TxInput struct {
	_      struct{} `cbor:",toarray"`
	OutRef OutRef   `json:"out_ref"`
	Output Output   `json:"output"`
}

// AccountWithdrawal is one exercised reward-account withdrawal: the staking
// credential drawn from and the amount moved.
type AccountWithdrawal struct {
	_          struct{}   `cbor:",toarray"`
	Credential Credential `json:"credential"`
	Amount     int64      `json:"amount"`
}

// CertificateKind discriminates the certificates the engine cares about.
type CertificateKind uint8

const (
	// CertRegisterCredential registers a staking credential for future
	// reward withdrawals
	CertRegisterCredential CertificateKind = iota
	// CertDeregisterCredential retires a staking credential
	CertDeregisterCredential
	// CertOther covers certificate kinds the engine does not interpret
	CertOther
)

// Certificate is one certificate processed in the transition.
type Certificate struct {
	_          struct{}        `cbor:",toarray"`
	Kind       CertificateKind `json:"kind"`
	Credential Credential      `json:"credential"`
}

// TxView is the immutable snapshot of one candidate transition, exactly as
// the underlying ledger presents it: everything the policy engine is allowed
// to see, nothing it can mutate. All index fields in redeemers resolve into
// the ordered lists here.
type TxView struct {
	_               struct{}            `cbor:",toarray"`
	Inputs          []TxInput           `json:"inputs"`
	ReferenceInputs []TxInput           `json:"reference_inputs"`
	Outputs         []Output            `json:"outputs"`
	Signatories     []HexBytes          `json:"signatories"`
	Withdrawals     []AccountWithdrawal `json:"withdrawals"`
	Certificates    []Certificate       `json:"certificates"`
	Mint            Value               `json:"mint"`
	ValidRange      Interval            `json:"valid_range"`
}

// SignedBy reports whether the given key hash is in the authorizing-signer
// set.
func (v *TxView) SignedBy(keyHash HexBytes) bool {
	for _, signer := range v.Signatories {
		if signer.Equal(keyHash) {
			return true
		}
	}
	return false
}

// WithdrawalFor returns the exercised withdrawal for a credential, if any.
func (v *TxView) WithdrawalFor(credential Credential) (AccountWithdrawal, bool) {
	for _, w := range v.Withdrawals {
		if w.Credential.Equal(credential) {
			return w, true
		}
	}
	return AccountWithdrawal{}, false
}

// ConsumesRef reports whether the transition spends the given output
// reference.
func (v *TxView) ConsumesRef(ref OutRef) bool {
	for _, in := range v.Inputs {
		if in.OutRef.Equal(ref) {
			return true
		}
	}
	return false
}
