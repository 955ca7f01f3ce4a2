package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Dosada05/bracket-editor/models"
	"github.com/Dosada05/bracket-editor/repositories"
	"github.com/Dosada05/bracket-editor/storage"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const exportContentType = "application/json"

type ArchiveService interface {
	ArchiveSession(ctx context.Context, sessionID string) (*models.Archive, error)
	GetArchive(ctx context.Context, archiveID string) (*models.Archive, error)
	ListArchives(ctx context.Context, sessionID string, limit int) ([]*models.Archive, error)
	UploadTeamLogo(ctx context.Context, sessionID, teamID string, file io.Reader, contentType string) (*SessionState, error)
}

type archiveService struct {
	editor   EditorService
	repo     repositories.ArchiveRepository
	uploader storage.FileUploader
	logger   *slog.Logger
}

// NewArchiveService wires snapshot archiving and logo uploads. repo and
// uploader may be nil, which disables the operations that need them.
func NewArchiveService(editor EditorService, repo repositories.ArchiveRepository, uploader storage.FileUploader, logger *slog.Logger) ArchiveService {
	return &archiveService{
		editor:   editor,
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

// ArchiveSession stores the current export of a session in the database and,
// when uploads are configured, as a JSON object in the bucket. Both writes
// run concurrently; when one fails the other is rolled back.
func (s *archiveService) ArchiveSession(ctx context.Context, sessionID string) (*models.Archive, error) {
	if s.repo == nil {
		return nil, ErrArchiveDisabled
	}

	snapshot, err := s.editor.Export(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	archive := &models.Archive{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Payload:   payload,
		Snapshot:  snapshot,
	}
	if s.uploader != nil {
		key := storage.ExportKey(sessionID, archive.ID)
		archive.ExportKey = &key
	}

	var stored, uploaded bool
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.repo.Create(gCtx, archive); err != nil {
			if errors.Is(err, repositories.ErrArchiveConflict) {
				return fmt.Errorf("%w: %w", ErrArchiveConflict, err)
			}
			return fmt.Errorf("failed to store archive %s: %w", archive.ID, err)
		}
		stored = true
		return nil
	})

	if archive.ExportKey != nil {
		g.Go(func() error {
			result, err := s.uploader.Upload(gCtx, *archive.ExportKey, exportContentType, bytes.NewReader(payload))
			if err != nil {
				return fmt.Errorf("failed to upload export for archive %s: %w", archive.ID, err)
			}
			archive.ExportURL = &result.Location
			uploaded = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.rollbackArchive(archive, stored, uploaded)
		return nil, err
	}

	s.logger.InfoContext(ctx, "session archived",
		slog.String("session_id", sessionID),
		slog.String("archive_id", archive.ID),
		slog.Bool("uploaded", uploaded),
	)
	return archive, nil
}

// rollbackArchive undoes the half of an archive that succeeded. It runs on a
// fresh context since the request context may already be cancelled.
func (s *archiveService) rollbackArchive(archive *models.Archive, stored, uploaded bool) {
	ctx := context.Background()
	if stored {
		if err := s.repo.Delete(ctx, archive.ID); err != nil {
			s.logger.Error("failed to roll back archive row", slog.String("archive_id", archive.ID), slog.Any("error", err))
		}
	}
	if uploaded && archive.ExportKey != nil {
		if err := s.uploader.Delete(ctx, *archive.ExportKey); err != nil {
			s.logger.Error("failed to roll back export object", slog.String("key", *archive.ExportKey), slog.Any("error", err))
		}
	}
}

func (s *archiveService) GetArchive(ctx context.Context, archiveID string) (*models.Archive, error) {
	if s.repo == nil {
		return nil, ErrArchiveDisabled
	}
	archive, err := s.repo.GetByID(ctx, archiveID)
	if err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, fmt.Errorf("failed to load archive %s: %w", archiveID, err)
	}
	if err := s.populateArchive(archive); err != nil {
		return nil, err
	}
	return archive, nil
}

func (s *archiveService) ListArchives(ctx context.Context, sessionID string, limit int) ([]*models.Archive, error) {
	if s.repo == nil {
		return nil, ErrArchiveDisabled
	}
	archives, err := s.repo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives of session %s: %w", sessionID, err)
	}
	for _, a := range archives {
		// списку достаточно ссылки на экспорт
		a.Snapshot = nil
		if a.ExportKey != nil && s.uploader != nil {
			if u := s.uploader.GetPublicURL(*a.ExportKey); u != "" {
				a.ExportURL = &u
			}
		}
	}
	return archives, nil
}

func (s *archiveService) populateArchive(archive *models.Archive) error {
	var snapshot models.Snapshot
	if err := json.Unmarshal(archive.Payload, &snapshot); err != nil {
		return fmt.Errorf("failed to decode archive %s: %w", archive.ID, err)
	}
	archive.Snapshot = &snapshot
	if archive.ExportKey != nil && s.uploader != nil {
		if u := s.uploader.GetPublicURL(*archive.ExportKey); u != "" {
			archive.ExportURL = &u
		}
	}
	return nil
}

// UploadTeamLogo stores an image in the bucket and points the team at it.
// The previous logo object is removed once the team is updated.
func (s *archiveService) UploadTeamLogo(ctx context.Context, sessionID, teamID string, file io.Reader, contentType string) (*SessionState, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidLogo, contentType)
	}
	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLogo, err)
	}

	// Проверяем сессию и команду до загрузки файла
	current, err := s.editor.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !hasTeam(current.Teams, teamID) {
		return nil, ErrTeamNotFound
	}

	key := storage.LogoKey(sessionID, teamID, uuid.NewString(), ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for team %s: %w", teamID, err)
	}

	state, previous, err := s.editor.SetTeamLogo(ctx, sessionID, teamID, &result.Location)
	if err != nil {
		if delErr := s.uploader.Delete(context.Background(), key); delErr != nil {
			s.logger.Error("failed to remove orphaned logo", slog.String("key", key), slog.Any("error", delErr))
		}
		return nil, err
	}

	if oldKey := s.keyFromURL(previous); oldKey != "" && oldKey != key {
		if err := s.uploader.Delete(ctx, oldKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous logo", slog.String("key", oldKey), slog.Any("error", err))
		}
	}
	return state, nil
}

// keyFromURL recovers the object key of a logo URL this service issued.
func (s *archiveService) keyFromURL(u string) string {
	if u == "" {
		return ""
	}
	base := s.uploader.GetPublicURL("logos")
	if base == "" {
		return ""
	}
	prefix := base + "/"
	if !strings.HasPrefix(u, prefix) {
		return ""
	}
	return "logos/" + strings.TrimPrefix(u, prefix)
}

func hasTeam(teams []models.Team, teamID string) bool {
	for _, t := range teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}
