package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelOrdering(t *testing.T) {
	ordered := []RiskLevel{RiskLevelNone, RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelProhibited}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Ordinal(), ordered[i-1].Ordinal(),
			"%s must outrank %s", ordered[i], ordered[i-1])
	}
}

func TestRiskLevelMax(t *testing.T) {
	assert.Equal(t, RiskLevelHigh, RiskLevelMedium.Max(RiskLevelHigh))
	assert.Equal(t, RiskLevelHigh, RiskLevelHigh.Max(RiskLevelMedium))
	assert.Equal(t, RiskLevelProhibited, RiskLevelProhibited.Max(RiskLevelProhibited))
}

func TestRiskLevelAtLeastNeverDemotes(t *testing.T) {
	assert.Equal(t, RiskLevelMedium, RiskLevelLow.AtLeast(RiskLevelMedium))
	assert.Equal(t, RiskLevelProhibited, RiskLevelProhibited.AtLeast(RiskLevelMedium))
}

func TestUnknownRiskLevelNeverDominates(t *testing.T) {
	unknown := RiskLevel("SEVERE")
	assert.Equal(t, 0, unknown.Ordinal())
	assert.Equal(t, RiskLevelLow, RiskLevelLow.Max(unknown))
}
