package engine

import (
	"time"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/config"
)

// Config carries the tunable constants of the rule engine. It is built once
// at startup and passed in explicitly; evaluation holds no process-wide state.
type Config struct {
	// ReviewThreshold is the risk score above which an otherwise compliant
	// check is routed to manual review.
	ReviewThreshold float64

	// RiskScores maps each risk level to its score contribution. The overall
	// score of a check is the maximum over contributing rules, not a sum, so
	// one severe rule cannot be diluted by many mild ones.
	RiskScores map[model.RiskLevel]float64

	// ExpiringSoonWindow is how close to expiry a license must be before the
	// antique rule set warns about it.
	ExpiringSoonWindow time.Duration

	// RecheckDelays maps a verdict status to the delay before the product is
	// re-queued. PROHIBITED is deliberately absent: it is terminal.
	RecheckDelays map[model.CheckStatus]time.Duration

	// DefaultRecheckDelay applies to any status without an explicit entry.
	DefaultRecheckDelay time.Duration
}

// DefaultConfig returns the engine configuration with the inherited
// calibration constants.
func DefaultConfig() Config {
	return FromAppConfig(config.ComplianceConfig{
		ReviewThreshold:        0.3,
		ScoreProhibited:        1.0,
		ScoreHigh:              0.8,
		ScoreMedium:            0.5,
		ScoreLow:               0.2,
		ExpiringSoonDays:       30,
		RecheckNonCompliantDay: 7,
		RecheckReviewDays:      30,
		RecheckCompliantDays:   90,
		RecheckDefaultDays:     30,
	})
}

// FromAppConfig builds the engine configuration from the application config section.
func FromAppConfig(cc config.ComplianceConfig) Config {
	day := 24 * time.Hour
	return Config{
		ReviewThreshold: cc.ReviewThreshold,
		RiskScores: map[model.RiskLevel]float64{
			model.RiskLevelProhibited: cc.ScoreProhibited,
			model.RiskLevelHigh:       cc.ScoreHigh,
			model.RiskLevelMedium:     cc.ScoreMedium,
			model.RiskLevelLow:        cc.ScoreLow,
			model.RiskLevelNone:       0.0,
		},
		ExpiringSoonWindow: time.Duration(cc.ExpiringSoonDays) * day,
		RecheckDelays: map[model.CheckStatus]time.Duration{
			model.CheckStatusNonCompliant:   time.Duration(cc.RecheckNonCompliantDay) * day,
			model.CheckStatusNeedsLicense:   time.Duration(cc.RecheckNonCompliantDay) * day,
			model.CheckStatusRequiresReview: time.Duration(cc.RecheckReviewDays) * day,
			model.CheckStatusCompliant:      time.Duration(cc.RecheckCompliantDays) * day,
		},
		DefaultRecheckDelay: time.Duration(cc.RecheckDefaultDays) * day,
	}
}

// Score returns the score contribution of a risk level.
func (c Config) Score(level model.RiskLevel) float64 {
	return c.RiskScores[level]
}

// Evaluator runs the compliance rule sets. It is safe for concurrent use:
// evaluation reads only the static tables and the caller-supplied inputs.
type Evaluator struct {
	cfg Config
}

// NewEvaluator creates an Evaluator with the given configuration.
func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}
