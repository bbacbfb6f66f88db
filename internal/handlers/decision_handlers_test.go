package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tesoro-api/internal/constants"
	"tesoro-api/internal/db"
	"tesoro-api/internal/engine"
	"tesoro-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDecisionRouter(querier db.Querier) *gin.Engine {
	handler := NewDecisionHandler(NewCommonServices(querier, testDefaults(), engine.LinearPolicy{}, nil, nil))
	router := gin.New()
	router.GET("/api/v1/treasuries/:treasury_id/decisions", handler.ListDecisions)
	return router
}

func TestListDecisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	treasuryID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListDecisions(gomock.Any(), db.ListDecisionsParams{
			TreasuryID: treasuryID,
			Limit:      int32(constants.DefaultPageSize),
			Offset:     0,
		}).
		Return([]db.Decision{
			{
				ID:          uuid.New(),
				TreasuryID:  treasuryID,
				Entrypoint:  "spend",
				Action:      pgtype.Text{String: "spend", Valid: true},
				ScopeName:   pgtype.Text{String: "ops", Valid: true},
				Accepted:    true,
				RequestHash: "abc123",
			},
			{
				ID:          uuid.New(),
				TreasuryID:  treasuryID,
				Entrypoint:  "spend",
				Accepted:    false,
				ErrorKind:   pgtype.Text{String: "budget_exceeded", Valid: true},
				RequestHash: "def456",
			},
		}, nil)

	router := newDecisionRouter(mockQuerier)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/treasuries/"+treasuryID.String()+"/decisions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []DecisionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, constants.VerdictAccepted, resp.Data[0].Verdict)
	assert.Equal(t, "ops", resp.Data[0].ScopeName)
	assert.Equal(t, constants.VerdictRejected, resp.Data[1].Verdict)
	assert.Equal(t, "budget_exceeded", resp.Data[1].ErrorKind)
}

func TestListDecisionsClampsPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	treasuryID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListDecisions(gomock.Any(), db.ListDecisionsParams{
			TreasuryID: treasuryID,
			Limit:      int32(constants.MaxPageSize),
			Offset:     25,
		}).
		Return([]db.Decision{}, nil)

	router := newDecisionRouter(mockQuerier)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/treasuries/"+treasuryID.String()+"/decisions?limit=100000&offset=25", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
