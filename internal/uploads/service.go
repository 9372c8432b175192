package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/open-sedori/sedori/internal/compliance/model"
)

// ErrUnknownDocument is returned when the named document is not one the check requires.
var ErrUnknownDocument = errors.New("document is not required by this check")

// ErrNotCheckOwner is returned when a user uploads against someone else's check.
var ErrNotCheckOwner = errors.New("check belongs to another user")

// DocumentService stores compliance documents: the binary goes to the storage
// driver, the record goes to the database, and the owning check's
// required-document entry is flagged as uploaded. The verdict fields of a
// check are never touched.
type DocumentService struct {
	db     *gorm.DB
	driver StorageDriver
}

// NewDocumentService creates a new DocumentService instance
func NewDocumentService(db *gorm.DB, driver StorageDriver) *DocumentService {
	return &DocumentService{db: db, driver: driver}
}

// UploadDocument stores one document for a check. documentName must match a
// required-document entry of the check verbatim.
func (s *DocumentService) UploadDocument(ctx context.Context, userID, checkID uuid.UUID, documentName, filename string, reader io.Reader, size int64, mime string) (*DocumentFile, error) {
	var check model.ComplianceCheck
	if err := s.db.WithContext(ctx).First(&check, "id = ?", checkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("compliance check %s not found: %w", checkID, err)
		}
		return nil, fmt.Errorf("failed to query compliance check: %w", err)
	}
	if check.UserID != userID {
		return nil, ErrNotCheckOwner
	}

	required := false
	for _, doc := range check.RequiredDocuments {
		if doc.Name == documentName {
			required = true
			break
		}
	}
	if !required {
		return nil, ErrUnknownDocument
	}

	key, url, err := s.storeBinary(ctx, filename, reader, mime)
	if err != nil {
		return nil, err
	}

	doc := &DocumentFile{
		CheckID:      checkID,
		UserID:       userID,
		DocumentName: documentName,
		FileName:     filename,
		Key:          key,
		URL:          url,
		Size:         size,
		MimeType:     mime,
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		s.cleanup(ctx, key)
		return nil, fmt.Errorf("failed to record document: %w", err)
	}

	if err := s.markUploaded(ctx, &check, documentName); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "compliance document uploaded",
		"check_id", checkID, "document", documentName, "key", key)
	return doc, nil
}

// storeBinary writes the content via the storage driver and resolves its URL.
func (s *DocumentService) storeBinary(ctx context.Context, filename string, reader io.Reader, mime string) (string, string, error) {
	if mime == "" {
		mime = "application/octet-stream"
	}
	key := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))

	if err := s.driver.Save(ctx, key, reader, mime); err != nil {
		return "", "", fmt.Errorf("storage driver failed: %w", err)
	}

	url, err := s.driver.GenerateURL(ctx, key, 0)
	if err != nil {
		s.cleanup(ctx, key)
		return "", "", fmt.Errorf("failed to generate URL: %w", err)
	}
	return key, url, nil
}

func (s *DocumentService) cleanup(ctx context.Context, key string) {
	if err := s.driver.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to cleanup orphaned file", "key", key, "error", err)
	}
}

// markUploaded flips the uploaded flag of the matching required-document
// entry. This is upload bookkeeping; status, score and rule results stay as
// evaluated.
func (s *DocumentService) markUploaded(ctx context.Context, check *model.ComplianceCheck, documentName string) error {
	for i := range check.RequiredDocuments {
		if check.RequiredDocuments[i].Name == documentName {
			check.RequiredDocuments[i].Uploaded = true
		}
	}
	if err := s.db.WithContext(ctx).
		Model(check).
		Update("required_documents", check.RequiredDocuments).Error; err != nil {
		return fmt.Errorf("failed to mark document uploaded: %w", err)
	}
	return nil
}

// ListByCheck returns the documents uploaded against one check.
func (s *DocumentService) ListByCheck(ctx context.Context, checkID uuid.UUID) ([]DocumentFile, error) {
	var docs []DocumentFile
	if err := s.db.WithContext(ctx).
		Where("check_id = ?", checkID).
		Order("created_at ASC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	return docs, nil
}

// Download retrieves the file content and its MIME type by storage key.
func (s *DocumentService) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.driver.Get(ctx, key)
}
