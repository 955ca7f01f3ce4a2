package services

import (
	"errors"

	"github.com/Dosada05/bracket-editor/models"
)

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrValidationFailed = errors.New("validation failed")

	ErrSessionNotFound = errors.New("editor session not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrArchiveNotFound = errors.New("archive not found")

	// Ошибки валидации и бизнес-правил
	ErrUnsupportedBracketSize = models.ErrUnsupportedBracketSize
	ErrTooFewTeams            = errors.New("a bracket needs at least 2 teams")
	ErrTooManyTeams           = errors.New("the largest bracket holds 64 teams")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrInvalidBestOf          = errors.New("best-of must be a positive number")
	ErrInvalidConnectorStyle  = errors.New("unknown connector style")
	ErrInvalidScore           = errors.New("scores must not be negative")
	ErrInvalidSlot            = errors.New("slot must be 0 or 1")
	ErrInvalidMatchStatus     = errors.New("unknown match status")
	ErrMatchNotReady          = errors.New("match does not have both teams yet")
	ErrSwapNotAllowed         = errors.New("only teams placed by the draw can be swapped")
	ErrInvalidLogo            = errors.New("logo must be an image")
	ErrImportFailed           = errors.New("failed to import bracket")

	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")

	// Ошибки конфликтов
	ErrArchiveConflict = errors.New("archive already exists")

	// Внешние зависимости не сконфигурированы
	ErrArchiveDisabled = errors.New("snapshot archive is not configured")
	ErrUploadsDisabled = errors.New("file uploads are not configured")
)
