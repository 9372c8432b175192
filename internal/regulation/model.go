package regulation

import (
	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/models"
)

// RegulationRule is a freeform regulation rule maintained by compliance staff.
// Rules carry their own static risk level and are matched against product text
// by keyword overlap before being handed to the compliance combiner.
type RegulationRule struct {
	models.BaseModel
	RuleType          string          `gorm:"type:varchar(50);column:rule_type;not null" json:"ruleType"`
	Title             string          `gorm:"type:varchar(255);column:title;not null" json:"title"`
	Description       string          `gorm:"type:text;column:description" json:"description"`
	RiskLevel         model.RiskLevel `gorm:"type:varchar(20);column:risk_level;not null" json:"riskLevel"`
	Keywords          []string        `gorm:"type:jsonb;column:keywords;serializer:json;not null" json:"keywords"`
	RequiredDocuments []string        `gorm:"type:jsonb;column:required_documents;serializer:json" json:"requiredDocuments"`
	LegalBasis        string          `gorm:"type:varchar(255);column:legal_basis" json:"legalBasis"`
	Active            bool            `gorm:"type:boolean;column:active;not null;default:true" json:"active"`
}

func (r *RegulationRule) TableName() string {
	return "regulation_rules"
}
