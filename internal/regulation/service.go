package regulation

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/open-sedori/sedori/internal/compliance/engine"
)

// RuleService provides access to the freeform regulation rule store.
type RuleService struct {
	db *gorm.DB
}

// NewRuleService creates a new RuleService instance
func NewRuleService(db *gorm.DB) *RuleService {
	return &RuleService{db: db}
}

// ListActive returns every active regulation rule.
func (s *RuleService) ListActive(ctx context.Context) ([]RegulationRule, error) {
	var rules []RegulationRule
	if err := s.db.WithContext(ctx).Where("active = ?", true).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to query regulation rules: %w", err)
	}
	return rules, nil
}

// MatchCorpus returns the active rules whose keywords overlap the given
// case-folded product corpus. This is the pre-filter step: rules returned
// here are treated as matched unconditionally by the combiner.
func (s *RuleService) MatchCorpus(ctx context.Context, corpus string) ([]RegulationRule, error) {
	rules, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]RegulationRule, 0, len(rules))
	for _, rule := range rules {
		if engine.MatchesAny(corpus, rule.Keywords) {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

// ToFreeformRules converts stored rules to the engine's input representation.
func ToFreeformRules(rules []RegulationRule) []engine.FreeformRule {
	out := make([]engine.FreeformRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, engine.FreeformRule{
			ID:                rule.ID.String(),
			RuleType:          rule.RuleType,
			Title:             rule.Title,
			Description:       rule.Description,
			LegalBasis:        rule.LegalBasis,
			RiskLevel:         rule.RiskLevel,
			RequiredDocuments: rule.RequiredDocuments,
		})
	}
	return out
}
