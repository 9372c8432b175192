package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/license"
)

func compliantAntique() model.AntiqueResult {
	return model.AntiqueResult{
		Compliant:         true,
		RiskLevel:         model.RiskLevelNone,
		MatchedCategories: []string{},
		Violations:        []string{},
		Warnings:          []string{},
		Recommendations:   []string{},
	}
}

func compliantImport() model.ImportResult {
	return model.ImportResult{
		Compliant:         true,
		RiskLevel:         model.RiskLevelNone,
		ProhibitedReasons: []string{},
		RestrictedReasons: []string{},
		RequiredDocuments: []string{},
		RequiredLicenses:  []string{},
		Recommendations:   []string{},
	}
}

func TestCombine(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())

	t.Run("Prohibition Dominates Regardless Of Other Rules", func(t *testing.T) {
		antique := compliantAntique()
		antique.Compliant = false
		antique.RiskLevel = model.RiskLevelProhibited
		antique.RequiresLicense = true
		antique.Violations = []string{"禁制品該当 拳銃"}

		outcome := ev.Combine(antique, compliantImport(), nil)

		assert.Equal(t, model.CheckStatusProhibited, outcome.Status)
		assert.Equal(t, 1.0, outcome.RiskScore)
		assert.NotEmpty(t, outcome.ProhibitedReasons)
	})

	t.Run("Prohibited Freeform Rule Dominates Too", func(t *testing.T) {
		rule := FreeformRule{
			ID:        "rule-1",
			RuleType:  "CUSTOMS",
			Title:     "Embargoed goods",
			RiskLevel: model.RiskLevelProhibited,
		}

		outcome := ev.Combine(compliantAntique(), compliantImport(), []FreeformRule{rule})

		assert.Equal(t, model.CheckStatusProhibited, outcome.Status)
		assert.Equal(t, 1.0, outcome.RiskScore)
	})

	t.Run("Missing License Yields Needs License", func(t *testing.T) {
		antique := compliantAntique()
		antique.Compliant = false
		antique.RiskLevel = model.RiskLevelHigh
		antique.RequiresLicense = true
		antique.HasValidLicense = false
		antique.MatchedCategories = []string{CategoryPhotoGear}
		antique.Violations = []string{"古物商許可が必要です"}

		outcome := ev.Combine(antique, compliantImport(), nil)

		assert.Equal(t, model.CheckStatusNeedsLicense, outcome.Status)
		assert.Equal(t, 0.8, outcome.RiskScore)
		assert.NotEmpty(t, outcome.RequiredLicenses)
		assert.Equal(t, ruleSourceAntique, outcome.RequiredLicenses[0].Source)
	})

	t.Run("Non Compliant Without License Issue", func(t *testing.T) {
		imp := compliantImport()
		imp.Compliant = false
		imp.RiskLevel = model.RiskLevelHigh
		imp.RestrictedReasons = []string{"foodstuffs require notification"}
		imp.RequiredDocuments = []string{"食品等輸入届出書"}

		outcome := ev.Combine(compliantAntique(), imp, nil)

		assert.Equal(t, model.CheckStatusNonCompliant, outcome.Status)
		assert.Len(t, outcome.RequiredDocuments, 1)
		assert.False(t, outcome.RequiredDocuments[0].Uploaded)
	})

	t.Run("Import License Requirement Yields Needs License", func(t *testing.T) {
		imp := compliantImport()
		imp.Compliant = false
		imp.RiskLevel = model.RiskLevelHigh
		imp.RestrictedReasons = []string{"alcoholic beverages require a liquor license"}
		imp.RequiredLicenses = []string{"酒類販売業免許 (Liquor Sales License)"}

		outcome := ev.Combine(compliantAntique(), imp, nil)

		assert.Equal(t, model.CheckStatusNeedsLicense, outcome.Status)
		assert.Equal(t, ruleSourceImport, outcome.RequiredLicenses[0].Source)
	})

	t.Run("Score Above Threshold Requires Review", func(t *testing.T) {
		rule := FreeformRule{
			ID:        "rule-2",
			RuleType:  "ADVISORY",
			Title:     "Category under review",
			RiskLevel: model.RiskLevelMedium,
		}

		outcome := ev.Combine(compliantAntique(), compliantImport(), []FreeformRule{rule})

		assert.Equal(t, model.CheckStatusRequiresReview, outcome.Status)
		assert.Equal(t, 0.5, outcome.RiskScore)
	})

	t.Run("Fully Compliant", func(t *testing.T) {
		outcome := ev.Combine(compliantAntique(), compliantImport(), nil)

		assert.Equal(t, model.CheckStatusCompliant, outcome.Status)
		assert.LessOrEqual(t, outcome.RiskScore, 0.3)
		assert.Len(t, outcome.RuleResults, 2)
	})

	t.Run("Score Is A Ceiling Not An Average", func(t *testing.T) {
		// Many mild rules must not dilute one severe rule.
		mild := FreeformRule{ID: "mild", RuleType: "ADVISORY", Title: "mild", RiskLevel: model.RiskLevelLow}
		severe := FreeformRule{ID: "severe", RuleType: "CUSTOMS", Title: "severe", RiskLevel: model.RiskLevelHigh}

		outcome := ev.Combine(compliantAntique(), compliantImport(),
			[]FreeformRule{mild, mild, mild, mild, severe})

		assert.Equal(t, 0.8, outcome.RiskScore)
	})

	t.Run("Score Monotonic In Worst Risk Level", func(t *testing.T) {
		base := []FreeformRule{{ID: "a", RuleType: "ADVISORY", Title: "a", RiskLevel: model.RiskLevelLow}}
		before := ev.Combine(compliantAntique(), compliantImport(), base)

		raised := append(base, FreeformRule{ID: "b", RuleType: "ADVISORY", Title: "b", RiskLevel: model.RiskLevelMedium})
		after := ev.Combine(compliantAntique(), compliantImport(), raised)

		assert.GreaterOrEqual(t, after.RiskScore, before.RiskScore)
	})

	t.Run("Recommendations Tagged By Source", func(t *testing.T) {
		antique := compliantAntique()
		antique.RequiresLicense = true
		antique.HasValidLicense = true
		antique.Recommendations = []string{"keep the dealer ledger"}
		imp := compliantImport()
		imp.Recommendations = []string{"consult a customs broker"}

		outcome := ev.Combine(antique, imp, nil)

		kinds := map[model.RecommendationKind]int{}
		for _, rec := range outcome.Recommendations {
			kinds[rec.Kind]++
		}
		assert.Equal(t, 1, kinds[model.RecommendationActionable])
		assert.Equal(t, 1, kinds[model.RecommendationInformational])
	})
}

func TestEvaluateIdempotence(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())
	p := Product{
		Name:        "中古 ウイスキー グラスセット",
		Description: "アンティーク調",
		Metadata:    map[string]string{"brand": "Baccarat", "condition": "used"},
		RetailPrice: 42000,
	}
	lic := activeLicense([]string{license.CategoryAll}, testNow.AddDate(1, 0, 0))
	rules := []FreeformRule{{ID: "r", RuleType: "ADVISORY", Title: "t", RiskLevel: model.RiskLevelLow}}

	first := ev.Evaluate(p, []license.License{lic}, "Vietnam", rules, testNow)
	second := ev.Evaluate(p, []license.License{lic}, "Vietnam", rules, testNow)

	assert.Equal(t, first, second)
}

func TestEvaluateScenarios(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())

	t.Run("Prohibited Antique Item", func(t *testing.T) {
		p := Product{Name: "中古 拳銃"}

		outcome := ev.Evaluate(p, nil, "", nil, testNow)

		assert.Equal(t, model.CheckStatusProhibited, outcome.Status)
		assert.Equal(t, 1.0, outcome.RiskScore)
	})

	t.Run("Missing License Antique Camera", func(t *testing.T) {
		p := Product{Name: "古物 カメラ"}

		outcome := ev.Evaluate(p, nil, "", nil, testNow)

		assert.Equal(t, model.CheckStatusNeedsLicense, outcome.Status)
	})

	t.Run("Compliant New Electronics", func(t *testing.T) {
		p := Product{Name: "New Bluetooth Speaker"}

		outcome := ev.Evaluate(p, nil, "", nil, testNow)

		assert.Equal(t, model.CheckStatusCompliant, outcome.Status)
		assert.LessOrEqual(t, outcome.RiskScore, 0.3)
	})

	t.Run("Sanctioned Origin Override", func(t *testing.T) {
		p := Product{Name: "plain wooden toy"}

		outcome := ev.Evaluate(p, nil, "North Korea", nil, testNow)

		assert.Equal(t, model.CheckStatusProhibited, outcome.Status)
	})
}
