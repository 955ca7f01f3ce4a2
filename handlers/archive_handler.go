package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/bracket-editor/middleware"
	"github.com/Dosada05/bracket-editor/services"
	"github.com/google/uuid"
)

const defaultArchiveListLimit = 20

type ArchiveHandler struct {
	archives services.ArchiveService
}

func NewArchiveHandler(archives services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archives: archives}
}

// ArchiveSession godoc
// @Summary Archive a session
// @Tags archives
// @Description Stores the current export in the database and uploads it to object storage when configured.
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} map[string]interface{} "Archive"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 503 {object} map[string]string "Archive not configured"
// @Router /sessions/{sessionID}/archive [post]
func (h *ArchiveHandler) ArchiveSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	archive, err := h.archives.ArchiveSession(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"archive": archive}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ArchiveHandler) ListArchives(w http.ResponseWriter, r *http.Request) {
	sessionID, err := middleware.GetSessionIDFromContext(r.Context())
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	limit := defaultArchiveListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
	}

	archives, err := h.archives.ListArchives(r.Context(), sessionID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"archives": archives}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ArchiveHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	archiveID, err := getParamFromURL(r, "archiveID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := uuid.Parse(archiveID); err != nil {
		badRequestResponse(w, r, errors.New("invalid archive ID format"))
		return
	}

	archive, err := h.archives.GetArchive(r.Context(), archiveID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"archive": archive}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
