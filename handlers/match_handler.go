package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dosada05/bracket-editor/services"
)

type MatchHandler struct {
	editor services.EditorService
}

func NewMatchHandler(editor services.EditorService) *MatchHandler {
	return &MatchHandler{editor: editor}
}

type forfeitRequest struct {
	Slot *int `json:"slot"`
}

type quickScoreRequest struct {
	Scores [2]int `json:"scores"`
}

// UpdateMatch godoc
// @Summary Update a match
// @Tags matches
// @Description Edits status, scores and details of a match. Completing a match advances its winner and loser; reopening it resets every match fed by it.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param matchID path string true "Match ID"
// @Param body body services.MatchUpdateInput true "Fields to change"
// @Success 200 {object} map[string]interface{} "Session state"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session or match not found"
// @Failure 409 {object} map[string]string "Match is missing a team"
// @Router /sessions/{sessionID}/matches/{matchID} [put]
func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getParamFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchUpdateInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.UpdateMatch(ctx, sessionID, matchID, input)
	})
}

func (h *MatchHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	matchID, err := getParamFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input forfeitRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Slot == nil {
		badRequestResponse(w, r, errors.New("slot of the forfeiting team is required"))
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.ForfeitMatch(ctx, sessionID, matchID, *input.Slot)
	})
}

func (h *MatchHandler) QuickScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := getParamFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input quickScoreRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.QuickScoreMatch(ctx, sessionID, matchID, input.Scores[0], input.Scores[1])
	})
}

func (h *MatchHandler) Swap(w http.ResponseWriter, r *http.Request) {
	matchID, err := getParamFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.SwapMatchTeams(ctx, sessionID, matchID)
	})
}
