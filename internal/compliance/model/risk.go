package model

// RiskLevel is the ordinal severity classification of a compliance finding.
// Levels form a total order: NONE < LOW < MEDIUM < HIGH < PROHIBITED.
type RiskLevel string

const (
	RiskLevelNone       RiskLevel = "NONE"
	RiskLevelLow        RiskLevel = "LOW"
	RiskLevelMedium     RiskLevel = "MEDIUM"
	RiskLevelHigh       RiskLevel = "HIGH"
	RiskLevelProhibited RiskLevel = "PROHIBITED"
)

var riskOrdinals = map[RiskLevel]int{
	RiskLevelNone:       0,
	RiskLevelLow:        1,
	RiskLevelMedium:     2,
	RiskLevelHigh:       3,
	RiskLevelProhibited: 4,
}

// Ordinal returns the position of the level in the severity order.
// Unknown values map to 0 so a malformed level can never dominate a real one.
func (r RiskLevel) Ordinal() int {
	return riskOrdinals[r]
}

// Max returns the more severe of the two levels.
func (r RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.Ordinal() > r.Ordinal() {
		return other
	}
	return r
}

// AtLeast escalates the level to floor if it is currently below it,
// never demoting an already more severe level.
func (r RiskLevel) AtLeast(floor RiskLevel) RiskLevel {
	return r.Max(floor)
}

// CheckStatus represents the overall verdict of a compliance check.
type CheckStatus string

const (
	CheckStatusCompliant      CheckStatus = "COMPLIANT"
	CheckStatusNonCompliant   CheckStatus = "NON_COMPLIANT"
	CheckStatusRequiresReview CheckStatus = "REQUIRES_REVIEW"
	CheckStatusNeedsLicense   CheckStatus = "NEEDS_LICENSE"
	CheckStatusProhibited     CheckStatus = "PROHIBITED"
	CheckStatusPending        CheckStatus = "PENDING" // Evaluation has not produced a verdict yet; retried on the next scheduled check
)
