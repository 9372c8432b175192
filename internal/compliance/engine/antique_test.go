package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/license"
	"github.com/open-sedori/sedori/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func activeLicense(categories []string, expiresAt time.Time) license.License {
	return license.License{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		UserID:     uuid.New(),
		Number:     "第301012345678号",
		Status:     license.StatusActive,
		Categories: categories,
		IssuedAt:   testNow.AddDate(-2, 0, 0),
		ExpiresAt:  expiresAt,
	}
}

func TestEvaluateAntique(t *testing.T) {
	ev := NewEvaluator(DefaultConfig())

	t.Run("Non Antique Passthrough", func(t *testing.T) {
		p := Product{Name: "New Bluetooth Speaker", Description: "brand new, sealed box"}

		result := ev.EvaluateAntique(p, []license.License{}, testNow)

		assert.True(t, result.Compliant)
		assert.False(t, result.RequiresLicense)
		assert.Equal(t, model.RiskLevelNone, result.RiskLevel)
		assert.Empty(t, result.Violations)
		assert.Empty(t, result.Warnings)
	})

	t.Run("Non Antique Ignores License Input", func(t *testing.T) {
		p := Product{Name: "New Bluetooth Speaker"}
		expired := activeLicense([]string{license.CategoryAll}, testNow.AddDate(-1, 0, 0))

		result := ev.EvaluateAntique(p, []license.License{expired}, testNow)

		assert.True(t, result.Compliant)
		assert.False(t, result.RequiresLicense)
	})

	t.Run("Prohibited Item Short Circuits", func(t *testing.T) {
		p := Product{Name: "中古 拳銃 モデル", Description: "レアなコレクション品"}
		lic := activeLicense([]string{license.CategoryAll}, testNow.AddDate(1, 0, 0))

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.False(t, result.Compliant)
		assert.Equal(t, model.RiskLevelProhibited, result.RiskLevel)
		assert.NotEmpty(t, result.Violations)
		// License check is skipped once prohibited, and so is dealer guidance:
		// an item that cannot be sold gets violations, not operating advice.
		assert.False(t, result.HasValidLicense)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("Missing License", func(t *testing.T) {
		p := Product{Name: "古物 カメラ"}

		result := ev.EvaluateAntique(p, nil, testNow)

		assert.False(t, result.Compliant)
		assert.True(t, result.RequiresLicense)
		assert.False(t, result.HasValidLicense)
		assert.Equal(t, model.RiskLevelHigh, result.RiskLevel)
		assert.Contains(t, result.MatchedCategories, CategoryPhotoGear)
		assert.NotEmpty(t, result.Violations)
	})

	t.Run("Wildcard License Covers Any Category", func(t *testing.T) {
		p := Product{Name: "中古 時計 セイコー"}
		lic := activeLicense([]string{license.CategoryAll}, testNow.AddDate(1, 0, 0))

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.True(t, result.Compliant)
		assert.True(t, result.HasValidLicense)
		assert.Equal(t, model.RiskLevelLow, result.RiskLevel)
	})

	t.Run("Matching Category License Covers", func(t *testing.T) {
		p := Product{Name: "中古 時計"}
		lic := activeLicense([]string{CategoryWatchesJewels}, testNow.AddDate(1, 0, 0))

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.True(t, result.HasValidLicense)
	})

	t.Run("Expired License Does Not Cover", func(t *testing.T) {
		p := Product{Name: "中古 時計"}
		lic := activeLicense([]string{CategoryWatchesJewels}, testNow.AddDate(0, -1, 0))

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.False(t, result.HasValidLicense)
		assert.Equal(t, model.RiskLevelHigh, result.RiskLevel)
	})

	t.Run("Revoked License Does Not Cover", func(t *testing.T) {
		p := Product{Name: "中古 時計"}
		lic := activeLicense([]string{CategoryWatchesJewels}, testNow.AddDate(1, 0, 0))
		lic.Status = license.StatusRevoked

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.False(t, result.HasValidLicense)
	})

	t.Run("Expiring Soon Raises Warning And Medium Risk", func(t *testing.T) {
		p := Product{Name: "中古 時計"}
		lic := activeLicense([]string{CategoryWatchesJewels}, testNow.AddDate(0, 0, 10))

		result := ev.EvaluateAntique(p, []license.License{lic}, testNow)

		assert.True(t, result.Compliant)
		assert.True(t, result.HasValidLicense)
		assert.NotEmpty(t, result.Warnings)
		assert.Equal(t, model.RiskLevelMedium, result.RiskLevel)
	})

	t.Run("Catch All Category When Nothing Specific Matches", func(t *testing.T) {
		p := Product{Name: "中古 謎の雑貨"}

		result := ev.EvaluateAntique(p, nil, testNow)

		assert.Equal(t, []string{license.CategoryAll}, result.MatchedCategories)
	})

	t.Run("Recommendations Present When License Required", func(t *testing.T) {
		p := Product{Name: "中古 宝石 指輪"}

		result := ev.EvaluateAntique(p, nil, testNow)

		assert.True(t, result.RequiresLicense)
		assert.NotEmpty(t, result.Recommendations)
	})
}
