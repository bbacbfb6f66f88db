package treasury

import (
	"tesoro-api/internal/chain"
)

// Rationale points at an off-ledger justification document. The engine only
// requires it to be present and well-formed on scope spends; the surrounding
// service verifies the content hash when the document is supplied.
type Rationale struct {
	_           struct{}       `cbor:",toarray"`
	URL         string         `json:"url"`
	ContentHash chain.HexBytes `json:"content_hash"`
}

// AssetAmount is one declared per-asset flow of a spend. Zero amounts are
// declared explicitly, never omitted, so the declared list always lines up
// with the scope's budget list.
type AssetAmount struct {
	_      struct{}      `cbor:",toarray"`
	Asset  chain.AssetID `json:"asset"`
	Amount int64         `json:"amount"`
}

// SpendActionKind discriminates what a spend-entrypoint transition intends.
type SpendActionKind uint8

const (
	// ActionSpend moves funds out of the scope within its rolling budget
	ActionSpend SpendActionKind = iota
	// ActionStartRecover puts the scope into RecoveryPending
	ActionStartRecover
	// ActionContest cancels a pending recovery and returns to Active
	ActionContest
	// ActionCompleteRecover finishes a recovery by rotating the owner
	ActionCompleteRecover
)

// String names the action for logs and audit rows.
func (k SpendActionKind) String() string {
	switch k {
	case ActionSpend:
		return "spend"
	case ActionStartRecover:
		return "start_recover"
	case ActionContest:
		return "contest"
	case ActionCompleteRecover:
		return "complete_recover"
	default:
		return "unknown"
	}
}

// SpendAction is the tagged action variant of a spend redeemer.
type SpendAction struct {
	_    struct{}        `cbor:",toarray"`
	Kind SpendActionKind `json:"kind"`

	// Amounts is set for ActionSpend: the declared per-asset flows.
	Amounts []AssetAmount `json:"amounts,omitempty"`

	// NewOwner is set for ActionCompleteRecover: the credential the
	// recovered scope is handed to.
	NewOwner *OwnerCredential `json:"new_owner,omitempty"`
}

// SpendRedeemer drives the scope state machine entrypoint.
type SpendRedeemer struct {
	_ struct{} `cbor:",toarray"`

	// Badges is the full set of credential proofs presented with the
	// transition, across all scopes' owners.
	Badges []Badge `json:"badges"`

	// RootRefIndex locates the root record among referenced inputs.
	RootRefIndex int `json:"root_ref_index"`

	// SpentInputIndex locates the consumed scope record among inputs.
	SpentInputIndex int `json:"spent_input_index"`

	// NextOutputIndex locates the produced scope record among outputs.
	NextOutputIndex int `json:"next_output_index"`

	// Rationale must accompany ActionSpend.
	Rationale *Rationale `json:"rationale,omitempty"`

	Action SpendAction `json:"action"`
}

// FundingTarget pairs one scope authorization with the output position of
// that scope's reproduced record.
type FundingTarget struct {
	_           struct{}  `cbor:",toarray"`
	Auth        ScopeAuth `json:"auth"`
	OutputIndex int       `json:"output_index"`
}

// WithdrawActionKind discriminates the withdraw entrypoint's two modes.
type WithdrawActionKind uint8

const (
	// ActionFundingViaWithdrawal distributes a reward withdrawal across
	// scopes
	ActionFundingViaWithdrawal WithdrawActionKind = iota
	// ActionCheckBadges asserts a list of scope authorizations without
	// moving value
	ActionCheckBadges
)

// String names the withdraw mode for logs and audit rows.
func (k WithdrawActionKind) String() string {
	if k == ActionCheckBadges {
		return "check_badges"
	}
	return "funding_via_withdrawal"
}

// WithdrawAction is the tagged action variant of a withdraw redeemer.
type WithdrawAction struct {
	_    struct{}           `cbor:",toarray"`
	Kind WithdrawActionKind `json:"kind"`

	// Targets is set for ActionFundingViaWithdrawal.
	Targets []FundingTarget `json:"targets,omitempty"`

	// Auths is set for ActionCheckBadges.
	Auths []ScopeAuth `json:"auths,omitempty"`
}

// WithdrawRedeemer drives the funding/badge-check entrypoint.
type WithdrawRedeemer struct {
	_            struct{}       `cbor:",toarray"`
	RootRefIndex int            `json:"root_ref_index"`
	Action       WithdrawAction `json:"action"`
}

// InitialMintRedeemer drives the one-shot initialization entrypoint.
type InitialMintRedeemer struct {
	_ struct{} `cbor:",toarray"`

	// Scopes lists the initial scope records, in output order.
	Scopes []Scope `json:"scopes"`

	// RegisterCertIndex locates the certificate registering the
	// treasury's withdrawal credential.
	RegisterCertIndex int `json:"register_cert_index"`
}
