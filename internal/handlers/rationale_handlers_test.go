package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tesoro-api/internal/chain"
	"tesoro-api/internal/engine"
	"tesoro-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"go.uber.org/mock/gomock"
)

func newRationaleRouter(t *testing.T) *gin.Engine {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	handler := NewRationaleHandler(NewCommonServices(mocks.NewMockQuerier(ctrl), testDefaults(), engine.LinearPolicy{}, nil, nil))
	router := gin.New()
	router.POST("/api/v1/rationale/hash", handler.HashRationale)
	return router
}

func TestHashRationale(t *testing.T) {
	document := "quarterly infrastructure invoice"
	digest := blake3.Sum256([]byte(document))

	router := newRationaleRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rationale/hash",
		strings.NewReader(`{"document":"`+document+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp HashRationaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chain.HexBytes(digest[:]).String(), resp.ContentHash)
}

func TestHashRationaleRequiresDocument(t *testing.T) {
	router := newRationaleRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rationale/hash", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
