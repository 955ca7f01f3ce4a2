package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Dosada05/bracket-editor/models"
	"github.com/lib/pq"
)

var (
	ErrArchiveNotFound = errors.New("archive not found")
	ErrArchiveConflict = errors.New("archive id already exists")
	ErrArchiveInvalid  = errors.New("archive payload is not valid JSON")
)

type ArchiveRepository interface {
	Create(ctx context.Context, archive *models.Archive) error
	GetByID(ctx context.Context, id string) (*models.Archive, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*models.Archive, error)
	Delete(ctx context.Context, id string) error
}

type postgresArchiveRepository struct {
	db *sql.DB
}

func NewPostgresArchiveRepository(db *sql.DB) ArchiveRepository {
	return &postgresArchiveRepository{db: db}
}

func (r *postgresArchiveRepository) Create(ctx context.Context, archive *models.Archive) error {
	query := `
		INSERT INTO bracket_archives (id, session_id, payload, export_key)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		archive.ID,
		archive.SessionID,
		archive.Payload,
		archive.ExportKey,
	).Scan(&archive.CreatedAt)

	return r.handleArchiveError(err)
}

func (r *postgresArchiveRepository) GetByID(ctx context.Context, id string) (*models.Archive, error) {
	query := `
		SELECT id, session_id, payload, export_key, created_at
		FROM bracket_archives
		WHERE id = $1`

	archive := &models.Archive{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&archive.ID,
		&archive.SessionID,
		&archive.Payload,
		&archive.ExportKey,
		&archive.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArchiveNotFound
		}
		return nil, r.handleArchiveError(err)
	}
	return archive, nil
}

func (r *postgresArchiveRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*models.Archive, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, session_id, payload, export_key, created_at
		FROM bracket_archives
		WHERE session_id = $1
		ORDER BY created_at DESC`)

	args := []interface{}{sessionID}
	if limit > 0 {
		queryBuilder.WriteString(" LIMIT $")
		queryBuilder.WriteString(strconv.Itoa(len(args) + 1))
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	archives := make([]*models.Archive, 0)
	for rows.Next() {
		archive := &models.Archive{}
		if err := rows.Scan(
			&archive.ID,
			&archive.SessionID,
			&archive.Payload,
			&archive.ExportKey,
			&archive.CreatedAt,
		); err != nil {
			return nil, err
		}
		archives = append(archives, archive)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return archives, nil
}

func (r *postgresArchiveRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bracket_archives WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete archive %s: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrArchiveNotFound
	}
	return nil
}

func (r *postgresArchiveRepository) handleArchiveError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "bracket_archives_pkey" {
				return ErrArchiveConflict
			}
		case "22P02": // invalid_text_representation (bad uuid or json)
			if strings.Contains(pqErr.Message, "json") {
				return ErrArchiveInvalid
			}
			return ErrArchiveNotFound
		}
	}
	return err
}
