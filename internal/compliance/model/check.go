package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/models"
)

// ComplianceCheck is the persisted, immutable outcome of one evaluation run
// for a product/user pair. New evaluations create new records; existing
// records are never mutated. NextCheckAt is nil for PROHIBITED verdicts,
// which are terminal and never re-queued.
type ComplianceCheck struct {
	models.BaseModel
	ProductID         uuid.UUID          `gorm:"type:uuid;column:product_id;not null;index" json:"productId"`
	UserID            uuid.UUID          `gorm:"type:uuid;column:user_id;not null;index" json:"userId"`
	Status            CheckStatus        `gorm:"type:varchar(20);column:status;not null" json:"status"`
	RiskScore         float64            `gorm:"type:double precision;column:risk_score;not null" json:"riskScore"`
	RuleResults       []RuleResult       `gorm:"type:jsonb;column:rule_results;serializer:json;not null" json:"ruleResults"`
	RequiredLicenses  []RequiredLicense  `gorm:"type:jsonb;column:required_licenses;serializer:json;not null" json:"requiredLicenses"`
	RequiredDocuments []RequiredDocument `gorm:"type:jsonb;column:required_documents;serializer:json;not null" json:"requiredDocuments"`
	ProhibitedReasons []ProhibitedReason `gorm:"type:jsonb;column:prohibited_reasons;serializer:json;not null" json:"prohibitedReasons"`
	Recommendations   []Recommendation   `gorm:"type:jsonb;column:recommendations;serializer:json;not null" json:"recommendations"`
	OriginCountry     string             `gorm:"type:varchar(100);column:origin_country" json:"originCountry,omitempty"`
	PerformedAt       time.Time          `gorm:"type:timestamptz;column:performed_at;not null" json:"performedAt"`
	NextCheckAt       *time.Time         `gorm:"type:timestamptz;column:next_check_at" json:"nextCheckAt,omitempty"`
}

func (c *ComplianceCheck) TableName() string {
	return "compliance_checks"
}

// ComplianceCheckFilter will be used when querying checks as a batch
type ComplianceCheckFilter struct {
	ProductID *uuid.UUID `json:"productId,omitempty"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Offset    *int       `json:"offset,omitempty"`
	Limit     *int       `json:"limit,omitempty"`
}

// ComplianceCheckListResult represents the result of querying checks with pagination
type ComplianceCheckListResult struct {
	TotalCount int64             `json:"totalCount"`
	Checks     []ComplianceCheck `json:"checks"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
}
