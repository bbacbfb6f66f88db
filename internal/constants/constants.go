package constants

// Entrypoint wire names
const (
	EntrypointInitialize = "initialize"
	EntrypointSpend      = "spend"
	EntrypointWithdraw   = "withdraw"
)

// Decision verdicts recorded in the audit log
const (
	VerdictAccepted = "accepted"
	VerdictRejected = "rejected"
)

// Pagination bounds for list endpoints
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)
