package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/bracket-editor/middleware"
	"github.com/Dosada05/bracket-editor/models"
	"github.com/Dosada05/bracket-editor/services"
)

type SessionHandler struct {
	editor services.EditorService
}

func NewSessionHandler(editor services.EditorService) *SessionHandler {
	return &SessionHandler{editor: editor}
}

type sizeRequest struct {
	Size int `json:"size"`
}

type groupMatchRequest struct {
	Scores [2]int             `json:"scores"`
	Status models.MatchStatus `json:"status"`
}

// CreateSession godoc
// @Summary Create an editing session
// @Tags sessions
// @Description Builds a double-elimination bracket from the given teams, or from the team pool when none are given.
// @Accept json
// @Produce json
// @Param body body services.CreateSessionInput false "Teams, size and best-of"
// @Success 201 {object} map[string]interface{} "Session state"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input services.CreateSessionInput
	if err := readOptionalJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.editor.CreateSession(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/sessions/%s", state.ID))
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": state}, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSession godoc
// @Summary Get a session
// @Tags sessions
// @Description Returns the bracket with validation errors, schedule conflicts and team stats.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} map[string]interface{} "Session state"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.editor.GetSession(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.editor.DeleteSession(r.Context(), sessionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	runSessionAction(w, r, h.editor.Reset)
}

func (h *SessionHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	runSessionAction(w, r, h.editor.Shuffle)
}

func (h *SessionHandler) SeedByRank(w http.ResponseWriter, r *http.Request) {
	runSessionAction(w, r, h.editor.SeedByRank)
}

func (h *SessionHandler) Undo(w http.ResponseWriter, r *http.Request) {
	runSessionAction(w, r, h.editor.Undo)
}

func (h *SessionHandler) Redo(w http.ResponseWriter, r *http.Request) {
	runSessionAction(w, r, h.editor.Redo)
}

// ChangeSize godoc
// @Summary Change the bracket size
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body sizeRequest true "4, 8, 16, 32 or 64"
// @Success 200 {object} map[string]interface{} "Session state"
// @Failure 400 {object} map[string]string "Unsupported size"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionID}/size [post]
func (h *SessionHandler) ChangeSize(w http.ResponseWriter, r *http.Request) {
	var input sizeRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.ChangeSize(ctx, sessionID, input.Size)
	})
}

func (h *SessionHandler) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	var input services.ScheduleInput
	if err := readOptionalJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.AutoSchedule(ctx, sessionID, input)
	})
}

func (h *SessionHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input services.SettingsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.BestOf == nil && input.ConnectorStyle == nil {
		badRequestResponse(w, r, errors.New("no fields provided for update"))
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.UpdateSettings(ctx, sessionID, input)
	})
}

func (h *SessionHandler) GenerateGroupStage(w http.ResponseWriter, r *http.Request) {
	var input services.GroupStageInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.GenerateGroupStage(ctx, sessionID, input)
	})
}

func (h *SessionHandler) UpdateGroupMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getParamFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input groupMatchRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.UpdateGroupMatch(ctx, sessionID, matchID, input.Scores, input.Status)
	})
}

func (h *SessionHandler) SingleElimination(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.editor.SingleElimination(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"bracket": bracket}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Import godoc
// @Summary Import a bracket snapshot
// @Tags sessions
// @Description Replaces the fields present in the snapshot. Nothing changes when any part of the payload is invalid.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body models.SnapshotPatch true "Exported snapshot"
// @Success 200 {object} map[string]interface{} "Session state"
// @Failure 422 {object} map[string]string "Invalid snapshot"
// @Router /sessions/{sessionID}/import [post]
func (h *SessionHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readRawBody(w, r, maxImportBytes)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.Import(ctx, sessionID, data)
	})
}

func (h *SessionHandler) ImportSingleElimination(w http.ResponseWriter, r *http.Request) {
	data, err := readRawBody(w, r, maxImportBytes)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.ImportSingleElimination(ctx, sessionID, data)
	})
}

// Export writes the snapshot without an envelope so that it can be fed back
// to Import as is.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snapshot, err := h.editor.Export(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bracket-"+sessionID+".json"))
	if err := writeJSON(w, http.StatusOK, snapshot, headers); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// runSessionAction resolves the session from the context, runs fn and
// writes the resulting state.
func runSessionAction(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sessionID string) (*services.SessionState, error)) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := fn(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"session": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
