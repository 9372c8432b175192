package regulation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/open-sedori/sedori/internal/compliance/engine"
	"github.com/open-sedori/sedori/internal/compliance/model"
)

func TestToFreeformRules(t *testing.T) {
	rule := RegulationRule{
		RuleType:          "AVIATION",
		Title:             "Drone registration",
		Description:       "Drones of 100g or more must be registered",
		RiskLevel:         model.RiskLevelHigh,
		Keywords:          []string{"drone"},
		RequiredDocuments: []string{"registration confirmation"},
		LegalBasis:        "Civil Aeronautics Act",
		Active:            true,
	}
	rule.ID = uuid.New()

	out := ToFreeformRules([]RegulationRule{rule})

	assert.Len(t, out, 1)
	assert.Equal(t, rule.ID.String(), out[0].ID)
	assert.Equal(t, rule.RuleType, out[0].RuleType)
	assert.Equal(t, rule.Title, out[0].Title)
	assert.Equal(t, rule.Description, out[0].Description)
	assert.Equal(t, rule.LegalBasis, out[0].LegalBasis)
	assert.Equal(t, rule.RiskLevel, out[0].RiskLevel)
	assert.Equal(t, rule.RequiredDocuments, out[0].RequiredDocuments)
}

func TestToFreeformRulesEmpty(t *testing.T) {
	out := ToFreeformRules(nil)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestSeedRulesMatchExpectedProducts(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		ruleType string
	}{
		{"drone listing", "dji quadcopter drone with 4k camera", "AVIATION"},
		{"japanese drone listing", "ドローン 空撮用 カメラ付き", "AVIATION"},
		{"knife listing", "アウトドア ナイフ セット", "BLADES"},
		{"transceiver listing", "handheld walkie-talkie pair", "RADIO"},
		{"vape listing", "電子タバコ スターターキット", "TOBACCO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var matched []string
			for _, rule := range seedRules {
				if engine.MatchesAny(tt.corpus, rule.Keywords) {
					matched = append(matched, rule.RuleType)
				}
			}
			assert.Contains(t, matched, tt.ruleType)
		})
	}
}

func TestSeedRulesAreWellFormed(t *testing.T) {
	for _, rule := range seedRules {
		assert.NotEmpty(t, rule.RuleType)
		assert.NotEmpty(t, rule.Title)
		assert.NotEmpty(t, rule.Keywords)
		assert.True(t, rule.Active)
		assert.Greater(t, rule.RiskLevel.Ordinal(), model.RiskLevelNone.Ordinal())
	}
}
