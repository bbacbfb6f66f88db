package handlers

import (
	"net/http"
	"strconv"

	"tesoro-api/internal/constants"
	"tesoro-api/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DecisionHandler handles audit-log reads
type DecisionHandler struct {
	common *CommonServices
}

// NewDecisionHandler creates a new DecisionHandler instance
func NewDecisionHandler(common *CommonServices) *DecisionHandler {
	return &DecisionHandler{common: common}
}

// DecisionResponse represents the standardized API response for one
// recorded decision
type DecisionResponse struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	TreasuryID   string `json:"treasury_id"`
	Entrypoint   string `json:"entrypoint"`
	Action       string `json:"action,omitempty"`
	ScopeName    string `json:"scope_name,omitempty"`
	Verdict      string `json:"verdict"`
	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorDetail  string `json:"error_detail,omitempty"`
	RationaleURL string `json:"rationale_url,omitempty"`
	RequestHash  string `json:"request_hash"`
	CreatedAt    int64  `json:"created_at"`
}

func toDecisionResponse(decision db.Decision) DecisionResponse {
	verdict := constants.VerdictRejected
	if decision.Accepted {
		verdict = constants.VerdictAccepted
	}
	return DecisionResponse{
		ID:           decision.ID.String(),
		Object:       "decision",
		TreasuryID:   decision.TreasuryID.String(),
		Entrypoint:   decision.Entrypoint,
		Action:       decision.Action.String,
		ScopeName:    decision.ScopeName.String,
		Verdict:      verdict,
		ErrorKind:    decision.ErrorKind.String,
		ErrorDetail:  decision.ErrorDetail.String,
		RationaleURL: decision.RationaleUrl.String,
		RequestHash:  decision.RequestHash,
		CreatedAt:    decision.CreatedAt.Time.Unix(),
	}
}

// ListDecisions godoc
// @Summary      List decisions
// @Description  Returns the treasury's decision audit log, most recent first
// @Tags         decisions
// @Produce      json
// @Param        treasury_id  path   string  true   "Treasury ID"
// @Param        limit        query  int     false  "Page size"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /treasuries/{treasury_id}/decisions [get]
func (h *DecisionHandler) ListDecisions(c *gin.Context) {
	treasuryID, err := uuid.Parse(c.Param("treasury_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid treasury ID", err)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	decisions, err := h.common.queries.ListDecisions(c.Request.Context(), db.ListDecisionsParams{
		TreasuryID: treasuryID,
		Limit:      int32(limit),
		Offset:     int32(offset),
	})
	if err != nil {
		handleDBError(c, err, "Treasury not found")
		return
	}

	responses := make([]DecisionResponse, 0, len(decisions))
	for _, decision := range decisions {
		responses = append(responses, toDecisionResponse(decision))
	}
	sendList(c, responses)
}
