package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dosada05/bracket-editor/middleware"
	"github.com/Dosada05/bracket-editor/services"
)

type TeamHandler struct {
	editor   services.EditorService
	archives services.ArchiveService
}

func NewTeamHandler(editor services.EditorService, archives services.ArchiveService) *TeamHandler {
	return &TeamHandler{
		editor:   editor,
		archives: archives,
	}
}

// AddTeam godoc
// @Summary Add a team
// @Tags teams
// @Description Adds a named team, or the next team from the pool when no name is given, and rebuilds the bracket.
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param body body services.AddTeamInput false "Team name and seed"
// @Success 201 {object} map[string]interface{} "Session state"
// @Failure 400 {object} map[string]string "Invalid input or roster full"
// @Router /sessions/{sessionID}/teams [post]
func (h *TeamHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.AddTeamInput
	if err := readOptionalJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	state, err := h.editor.AddTeam(r.Context(), sessionID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"session": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == nil && input.Seed == nil {
		badRequestResponse(w, r, errors.New("no fields provided for update"))
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.UpdateTeam(ctx, sessionID, teamID, input)
	})
}

func (h *TeamHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.editor.RemoveTeam(ctx, sessionID, teamID)
	})
}

// UploadTeamLogo принимает multipart форму с полем "logo".
func (h *TeamHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	teamID, err := getParamFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoBytes)
	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content type required"))
		return
	}

	runSessionAction(w, r, func(ctx context.Context, sessionID string) (*services.SessionState, error) {
		return h.archives.UploadTeamLogo(ctx, sessionID, teamID, file, contentType)
	})
}
