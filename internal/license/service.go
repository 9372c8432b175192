package license

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LicenseService provides business logic for license-management operations.
// The compliance engine consumes its read methods; the write methods back the
// license administration endpoints.
type LicenseService struct {
	db *gorm.DB
}

// NewLicenseService creates a new LicenseService instance
func NewLicenseService(db *gorm.DB) *LicenseService {
	return &LicenseService{db: db}
}

// CreateLicenseDTO is the request payload for registering a license.
type CreateLicenseDTO struct {
	Number     string    `json:"number" binding:"required"`
	Categories []string  `json:"categories" binding:"required,min=1"`
	IssuedAt   time.Time `json:"issuedAt" binding:"required"`
	ExpiresAt  time.Time `json:"expiresAt" binding:"required"`
}

// Create registers a new active license for the user.
func (s *LicenseService) Create(ctx context.Context, userID uuid.UUID, createReq *CreateLicenseDTO) (*License, error) {
	if createReq == nil {
		return nil, fmt.Errorf("create request cannot be nil")
	}
	if !createReq.ExpiresAt.After(createReq.IssuedAt) {
		return nil, fmt.Errorf("license expiry must be after issuance")
	}

	lic := &License{
		UserID:     userID,
		Number:     createReq.Number,
		Status:     StatusActive,
		Categories: createReq.Categories,
		IssuedAt:   createReq.IssuedAt,
		ExpiresAt:  createReq.ExpiresAt,
	}

	if err := s.db.WithContext(ctx).Create(lic).Error; err != nil {
		return nil, fmt.Errorf("failed to create license: %w", err)
	}

	return lic, nil
}

// GetByID retrieves a single license.
func (s *LicenseService) GetByID(ctx context.Context, licenseID uuid.UUID) (*License, error) {
	var lic License
	if err := s.db.WithContext(ctx).First(&lic, "id = ?", licenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("license %s not found: %w", licenseID, err)
		}
		return nil, fmt.Errorf("failed to query license: %w", err)
	}
	return &lic, nil
}

// ListByUser returns every license held by the user, newest first.
func (s *LicenseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]License, error) {
	var licenses []License
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&licenses).Error; err != nil {
		return nil, fmt.Errorf("failed to query licenses: %w", err)
	}
	return licenses, nil
}

// ListUsableByUser returns the user's licenses that can satisfy a coverage
// check: ACTIVE status and not past expiry at the given instant. The
// compliance engine treats an empty result as insufficient coverage.
func (s *LicenseService) ListUsableByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]License, error) {
	var licenses []License
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND expires_at > ?", userID, StatusActive, now).
		Find(&licenses).Error; err != nil {
		return nil, fmt.Errorf("failed to query usable licenses: %w", err)
	}
	return licenses, nil
}

// Revoke marks a license as revoked. Revoked licenses never cover a category again.
func (s *LicenseService) Revoke(ctx context.Context, licenseID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Model(&License{}).
		Where("id = ?", licenseID).
		Update("status", StatusRevoked)
	if result.Error != nil {
		return fmt.Errorf("failed to revoke license: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("license %s not found", licenseID)
	}
	return nil
}
