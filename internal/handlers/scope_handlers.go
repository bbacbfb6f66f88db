package handlers

import (
	"encoding/json"
	"net/http"

	"tesoro-api/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScopeHandler handles stored scope snapshot reads
type ScopeHandler struct {
	common *CommonServices
}

// NewScopeHandler creates a new ScopeHandler instance
func NewScopeHandler(common *CommonServices) *ScopeHandler {
	return &ScopeHandler{common: common}
}

// ScopeResponse represents the standardized API response for a scope
// snapshot. Record is the full scope document as last accepted.
type ScopeResponse struct {
	ID         string          `json:"id"`
	Object     string          `json:"object"`
	TreasuryID string          `json:"treasury_id"`
	Name       string          `json:"name"`
	Status     string          `json:"status"`
	Record     json.RawMessage `json:"record"`
	UpdatedAt  int64           `json:"updated_at"`
}

func toScopeResponse(snapshot db.ScopeSnapshot) ScopeResponse {
	return ScopeResponse{
		ID:         snapshot.ID.String(),
		Object:     "scope",
		TreasuryID: snapshot.TreasuryID.String(),
		Name:       snapshot.Name,
		Status:     snapshot.Status,
		Record:     json.RawMessage(snapshot.Record),
		UpdatedAt:  snapshot.UpdatedAt.Time.Unix(),
	}
}

// ListScopes godoc
// @Summary      List scope snapshots
// @Description  Returns the last accepted record of every scope in the treasury
// @Tags         scopes
// @Produce      json
// @Param        treasury_id  path  string  true  "Treasury ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /treasuries/{treasury_id}/scopes [get]
func (h *ScopeHandler) ListScopes(c *gin.Context) {
	treasuryID, err := uuid.Parse(c.Param("treasury_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid treasury ID", err)
		return
	}

	snapshots, err := h.common.queries.ListScopes(c.Request.Context(), treasuryID)
	if err != nil {
		handleDBError(c, err, "Treasury not found")
		return
	}

	responses := make([]ScopeResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, toScopeResponse(snapshot))
	}
	sendList(c, responses)
}

// GetScope godoc
// @Summary      Get a scope snapshot
// @Description  Returns the last accepted record of one scope by name
// @Tags         scopes
// @Produce      json
// @Param        treasury_id  path  string  true  "Treasury ID"
// @Param        name         path  string  true  "Scope name"
// @Success      200  {object}  ScopeResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /treasuries/{treasury_id}/scopes/{name} [get]
func (h *ScopeHandler) GetScope(c *gin.Context) {
	treasuryID, err := uuid.Parse(c.Param("treasury_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid treasury ID", err)
		return
	}

	snapshot, err := h.common.queries.GetScopeByName(c.Request.Context(), db.GetScopeByNameParams{
		TreasuryID: treasuryID,
		Name:       c.Param("name"),
	})
	if err != nil {
		handleDBError(c, err, "Scope not found")
		return
	}
	sendSuccess(c, http.StatusOK, toScopeResponse(snapshot))
}
