package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/utils"
)

// ErrCheckNotFound is returned when no compliance check matches the query.
var ErrCheckNotFound = errors.New("compliance check not found")

// CheckStore persists compliance check records. Records are append-only:
// the store exposes no update or delete.
type CheckStore interface {
	Save(ctx context.Context, check *model.ComplianceCheck) error
	GetByID(ctx context.Context, checkID uuid.UUID) (*model.ComplianceCheck, error)
	List(ctx context.Context, filter model.ComplianceCheckFilter) (*model.ComplianceCheckListResult, error)
	LatestForProduct(ctx context.Context, productID uuid.UUID) (*model.ComplianceCheck, error)
}

// GormCheckStore is the postgres-backed CheckStore.
type GormCheckStore struct {
	db *gorm.DB
}

// NewGormCheckStore creates a new GormCheckStore instance
func NewGormCheckStore(db *gorm.DB) *GormCheckStore {
	return &GormCheckStore{db: db}
}

func (s *GormCheckStore) Save(ctx context.Context, check *model.ComplianceCheck) error {
	if err := s.db.WithContext(ctx).Create(check).Error; err != nil {
		return fmt.Errorf("failed to save compliance check: %w", err)
	}
	return nil
}

func (s *GormCheckStore) GetByID(ctx context.Context, checkID uuid.UUID) (*model.ComplianceCheck, error) {
	var check model.ComplianceCheck
	if err := s.db.WithContext(ctx).First(&check, "id = ?", checkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckNotFound
		}
		return nil, fmt.Errorf("failed to query compliance check: %w", err)
	}
	return &check, nil
}

func (s *GormCheckStore) List(ctx context.Context, filter model.ComplianceCheckFilter) (*model.ComplianceCheckListResult, error) {
	offset, limit := utils.GetPaginationParams(filter.Offset, filter.Limit)

	query := s.db.WithContext(ctx).Model(&model.ComplianceCheck{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count compliance checks: %w", err)
	}

	var checks []model.ComplianceCheck
	if err := query.Order("performed_at DESC").Offset(offset).Limit(limit).Find(&checks).Error; err != nil {
		return nil, fmt.Errorf("failed to query compliance checks: %w", err)
	}

	return &model.ComplianceCheckListResult{
		TotalCount: totalCount,
		Checks:     checks,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

func (s *GormCheckStore) LatestForProduct(ctx context.Context, productID uuid.UUID) (*model.ComplianceCheck, error) {
	var check model.ComplianceCheck
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("performed_at DESC").
		First(&check).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckNotFound
		}
		return nil, fmt.Errorf("failed to query latest compliance check: %w", err)
	}
	return &check, nil
}
