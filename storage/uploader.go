package storage

import (
	"context"
	"fmt"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// ExportKey is the object key of an archived snapshot export.
func ExportKey(sessionID, archiveID string) string {
	return fmt.Sprintf("exports/%s/%s.json", sessionID, archiveID)
}

// LogoKey is the object key of a team logo. ext includes the leading dot.
func LogoKey(sessionID, teamID, uploadID, ext string) string {
	return fmt.Sprintf("logos/%s/%s-%s%s", sessionID, teamID, uploadID, ext)
}
