package handlers

import (
	"net/http"

	"tesoro-api/internal/chain"

	"github.com/gin-gonic/gin"
	"github.com/zeebo/blake3"
)

// RationaleHandler helps clients build spend redeemers: every scope spend
// must declare a rationale pointer, and its content hash has to match the
// document it points at.
type RationaleHandler struct {
	common *CommonServices
}

// NewRationaleHandler creates a new RationaleHandler instance
func NewRationaleHandler(common *CommonServices) *RationaleHandler {
	return &RationaleHandler{common: common}
}

// HashRationaleRequest is the request body for rationale hashing
type HashRationaleRequest struct {
	Document string `json:"document" binding:"required"`
}

// HashRationaleResponse carries the content hash to embed in a redeemer
type HashRationaleResponse struct {
	ContentHash string `json:"content_hash"`
}

// HashRationale godoc
// @Summary      Hash a rationale document
// @Description  Computes the content hash a spend redeemer must declare for the given rationale document
// @Tags         rationale
// @Accept       json
// @Produce      json
// @Param        request  body      HashRationaleRequest  true  "Rationale document"
// @Success      200      {object}  HashRationaleResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /rationale/hash [post]
func (h *RationaleHandler) HashRationale(c *gin.Context) {
	var req HashRationaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	digest := blake3.Sum256([]byte(req.Document))
	sendSuccess(c, http.StatusOK, HashRationaleResponse{
		ContentHash: chain.HexBytes(digest[:]).String(),
	})
}
