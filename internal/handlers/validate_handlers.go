package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"tesoro-api/internal/chain"
	"tesoro-api/internal/config"
	"tesoro-api/internal/db"
	"tesoro-api/internal/engine"
	"tesoro-api/internal/helpers"
	"tesoro-api/internal/logger"
	"tesoro-api/internal/notify"
	"tesoro-api/internal/queue"
	"tesoro-api/internal/treasury"

	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
)

// ValidationHandler handles candidate-transition validation
type ValidationHandler struct {
	common *CommonServices
}

// NewValidationHandler creates a new ValidationHandler instance
func NewValidationHandler(common *CommonServices) *ValidationHandler {
	return &ValidationHandler{common: common}
}

// ValidateTransitionRequest is the request body for transition validation.
// RationaleDocument optionally carries the justification document itself;
// when present it must hash to the content hash declared in the redeemer.
type ValidateTransitionRequest struct {
	Entrypoint        string          `json:"entrypoint" binding:"required"`
	View              *chain.TxView   `json:"view" binding:"required"`
	Redeemer          engine.Redeemer `json:"redeemer"`
	RationaleDocument string          `json:"rationale_document,omitempty"`
}

// ValidateTransitionResponse is the verdict returned for a candidate
// transition. A rejection is a successful validation run, not an HTTP error.
type ValidateTransitionResponse struct {
	DecisionID string `json:"decision_id"`
	Accepted   bool   `json:"accepted"`
	ErrorKind  string `json:"error_kind,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// ValidateTransition godoc
// @Summary      Validate a candidate transition
// @Description  Runs the policy engine over an immutable snapshot of one proposed treasury transition and records the decision
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        treasury_id  path      string                      true  "Treasury ID"
// @Param        request      body      ValidateTransitionRequest   true  "Candidate transition"
// @Success      200          {object}  ValidateTransitionResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Router       /treasuries/{treasury_id}/validate [post]
func (h *ValidationHandler) ValidateTransition(c *gin.Context) {
	treasuryID, err := uuid.Parse(c.Param("treasury_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid treasury ID", err)
		return
	}

	record, err := h.common.queries.GetTreasury(c.Request.Context(), treasuryID)
	if err != nil {
		handleDBError(c, err, "Treasury not found")
		return
	}

	var req ValidateTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, ok := engine.ParseEntryPoint(req.Entrypoint)
	if !ok {
		sendError(c, http.StatusBadRequest, "Unknown entrypoint", nil)
		return
	}

	engineCfg, err := engineConfigFor(h.common.defaults, record)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Treasury record is malformed", err)
		return
	}

	if msg := checkRationaleDocument(req); msg != "" {
		sendError(c, http.StatusBadRequest, msg, nil)
		return
	}

	requestHash := hashRequest(req)
	verdictErr := engine.Validate(engineCfg, h.common.policy, req.View, entry, req.Redeemer)
	if verdictErr != nil && gin.Mode() != gin.ReleaseMode {
		logger.Debug("Transition rejected",
			zap.String("request_hash", helpers.ShortHash(requestHash)),
			zap.String("view", spew.Sdump(req.View)),
		)
	}

	action, scopeName := describeTransition(entry, req.Redeemer, req.View)
	decision, err := h.recordDecision(c, record, entry, action, scopeName, requestHash, req.Redeemer, verdictErr)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to record decision", err)
		return
	}

	if verdictErr == nil {
		h.persistAcceptedSnapshots(c, record, entry, req)
	}
	h.emitDecisionEvent(c, record, decision, action, scopeName, verdictErr)

	resp := ValidateTransitionResponse{
		DecisionID: decision.ID.String(),
		Accepted:   verdictErr == nil,
	}
	if verdictErr != nil {
		if kind, ok := engine.KindOf(verdictErr); ok {
			resp.ErrorKind = kind.String()
		}
		resp.Detail = verdictErr.Error()
	}
	sendSuccess(c, http.StatusOK, resp)
}

// engineConfigFor builds a per-treasury engine configuration from the stored
// treasury record and the deployment defaults.
func engineConfigFor(defaults config.Defaults, record db.Treasury) (config.Engine, error) {
	var scriptHash, markerPolicy chain.HexBytes
	if err := scriptHash.UnmarshalJSON([]byte(`"` + record.ScriptHash + `"`)); err != nil {
		return config.Engine{}, err
	}
	if record.MarkerPolicy != "" {
		if err := markerPolicy.UnmarshalJSON([]byte(`"` + record.MarkerPolicy + `"`)); err != nil {
			return config.Engine{}, err
		}
	}

	var seed chain.OutRef
	if record.SeedTxHash.Valid {
		if err := seed.TxHash.UnmarshalJSON([]byte(`"` + record.SeedTxHash.String + `"`)); err != nil {
			return config.Engine{}, err
		}
		if record.SeedTxIndex.Valid {
			seed.Index = uint32(record.SeedTxIndex.Int32)
		}
	}
	return config.EngineFor(defaults, scriptHash, markerPolicy, seed), nil
}

// checkRationaleDocument verifies a submitted rationale document against the
// content hash declared in the spend redeemer. Returns a non-empty message
// on mismatch.
func checkRationaleDocument(req ValidateTransitionRequest) string {
	if req.RationaleDocument == "" {
		return ""
	}
	spend := req.Redeemer.Spend
	if spend == nil || spend.Rationale == nil {
		return "Rationale document submitted without a rationale in the redeemer"
	}
	digest := blake3.Sum256([]byte(req.RationaleDocument))
	if !spend.Rationale.ContentHash.Equal(digest[:]) {
		return "Rationale document does not match the declared content hash"
	}
	return ""
}

// hashRequest digests the candidate transition for the audit trail, so a
// resubmission of the same candidate is recognizable across decisions.
func hashRequest(req ValidateTransitionRequest) string {
	payload, err := json.Marshal(struct {
		Entrypoint string          `json:"entrypoint"`
		View       *chain.TxView   `json:"view"`
		Redeemer   engine.Redeemer `json:"redeemer"`
	}{req.Entrypoint, req.View, req.Redeemer})
	if err != nil {
		return ""
	}
	digest := blake3.Sum256(payload)
	return chain.HexBytes(digest[:]).String()
}

// describeTransition extracts the action name and affected scope for the
// audit row, best-effort: a malformed transition still gets a decision row,
// just a sparser one.
func describeTransition(entry engine.EntryPoint, redeemer engine.Redeemer, view *chain.TxView) (action, scopeName string) {
	switch entry {
	case engine.EntryInitialize:
		return "initial_mint", ""
	case engine.EntrySpend:
		if redeemer.Spend == nil {
			return "", ""
		}
		action = redeemer.Spend.Action.Kind.String()
		idx := redeemer.Spend.SpentInputIndex
		if view != nil && idx >= 0 && idx < len(view.Inputs) {
			if datum, err := treasury.DecodeScopeRecordDatum(view.Inputs[idx].Output.Datum); err == nil {
				scopeName = datum.Scope.Name
			}
		}
		return action, scopeName
	case engine.EntryWithdraw:
		if redeemer.Withdraw == nil {
			return "", ""
		}
		return redeemer.Withdraw.Action.Kind.String(), ""
	default:
		return "", ""
	}
}

// recordDecision writes the audit row for this validation run.
func (h *ValidationHandler) recordDecision(c *gin.Context, record db.Treasury, entry engine.EntryPoint, action, scopeName, requestHash string, redeemer engine.Redeemer, verdictErr error) (db.Decision, error) {
	params := db.CreateDecisionParams{
		TreasuryID:  record.ID,
		Entrypoint:  entry.String(),
		Accepted:    verdictErr == nil,
		RequestHash: requestHash,
	}
	if action != "" {
		params.Action = pgtype.Text{String: action, Valid: true}
	}
	if scopeName != "" {
		params.ScopeName = pgtype.Text{String: scopeName, Valid: true}
	}
	if redeemer.Spend != nil && redeemer.Spend.Rationale != nil {
		params.RationaleUrl = pgtype.Text{String: redeemer.Spend.Rationale.URL, Valid: true}
	}
	if verdictErr != nil {
		if kind, ok := engine.KindOf(verdictErr); ok {
			params.ErrorKind = pgtype.Text{String: kind.String(), Valid: true}
		}
		params.ErrorDetail = pgtype.Text{String: verdictErr.Error(), Valid: true}
	}
	return h.common.queries.CreateDecision(c.Request.Context(), params)
}

// persistAcceptedSnapshots refreshes the stored scope snapshots from the
// records an accepted transition produced.
func (h *ValidationHandler) persistAcceptedSnapshots(c *gin.Context, record db.Treasury, entry engine.EntryPoint, req ValidateTransitionRequest) {
	var produced []treasury.Scope
	switch entry {
	case engine.EntryInitialize:
		produced = req.Redeemer.InitialMint.Scopes
	case engine.EntrySpend:
		idx := req.Redeemer.Spend.NextOutputIndex
		if datum, err := treasury.DecodeScopeRecordDatum(req.View.Outputs[idx].Datum); err == nil {
			produced = []treasury.Scope{datum.Scope}
		}
	case engine.EntryWithdraw:
		if req.Redeemer.Withdraw.Action.Kind != treasury.ActionFundingViaWithdrawal {
			return
		}
		for _, target := range req.Redeemer.Withdraw.Action.Targets {
			if datum, err := treasury.DecodeScopeRecordDatum(req.View.Outputs[target.OutputIndex].Datum); err == nil {
				produced = append(produced, datum.Scope)
			}
		}
	}

	for _, scope := range produced {
		encoded, err := json.Marshal(scope)
		if err != nil {
			logger.Error("Failed to encode scope snapshot", zap.Error(err), zap.String("scope", scope.Name))
			continue
		}
		_, err = h.common.queries.UpsertScope(c.Request.Context(), db.UpsertScopeParams{
			TreasuryID: record.ID,
			Name:       scope.Name,
			Status:     scope.Status.String(),
			Record:     encoded,
		})
		if err != nil {
			logger.Error("Failed to persist scope snapshot", zap.Error(err), zap.String("scope", scope.Name))
		}
	}
}

// emitDecisionEvent publishes the decision to the queue and, for recovery
// actions, alerts the treasury's owner contacts.
func (h *ValidationHandler) emitDecisionEvent(c *gin.Context, record db.Treasury, decision db.Decision, action, scopeName string, verdictErr error) {
	event := queue.DecisionEvent{
		DecisionID:  decision.ID.String(),
		TreasuryID:  record.ID.String(),
		Entrypoint:  decision.Entrypoint,
		Action:      action,
		ScopeName:   scopeName,
		Accepted:    verdictErr == nil,
		RequestHash: decision.RequestHash,
		Timestamp:   time.Now().UTC(),
	}
	if verdictErr != nil {
		if kind, ok := engine.KindOf(verdictErr); ok {
			event.ErrorKind = kind.String()
		}
	}
	h.common.publisher.Publish(c.Request.Context(), event)

	switch action {
	case treasury.ActionStartRecover.String(), treasury.ActionContest.String(), treasury.ActionCompleteRecover.String():
		h.common.notifier.SendRecoveryAlert(record.OwnerEmails, notify.RecoveryEvent{
			TreasuryName: record.Name,
			ScopeName:    scopeName,
			Action:       action,
			Accepted:     verdictErr == nil,
		})
	}
}
