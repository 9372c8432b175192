package model

// AntiqueResult is the outcome of the antique-dealer rule set for one product.
type AntiqueResult struct {
	Compliant         bool      `json:"compliant"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	RequiresLicense   bool      `json:"requiresLicense"`
	HasValidLicense   bool      `json:"hasValidLicense"`
	MatchedCategories []string  `json:"matchedCategories"`
	Violations        []string  `json:"violations"`
	Warnings          []string  `json:"warnings"`
	Recommendations   []string  `json:"recommendations"`
}

// TariffEstimate is the estimated import duty for a matched restriction entry.
type TariffEstimate struct {
	Rate     float64 `json:"rate"`     // percent of declared retail price
	Amount   float64 `json:"amount"`   // price * rate / 100
	Currency string  `json:"currency"`
}

// ImportResult is the outcome of the import-restriction rule set for one product.
type ImportResult struct {
	Compliant         bool            `json:"compliant"`
	RiskLevel         RiskLevel       `json:"riskLevel"`
	ProhibitedReasons []string        `json:"prohibitedReasons"`
	RestrictedReasons []string        `json:"restrictedReasons"`
	RequiredDocuments []string        `json:"requiredDocuments"`
	RequiredLicenses  []string        `json:"requiredLicenses"`
	Tariff            *TariffEstimate `json:"tariff,omitempty"`
	Recommendations   []string        `json:"recommendations"`
}

// RuleResult is one contributing rule's entry in a combined compliance check.
type RuleResult struct {
	RuleID          string    `json:"ruleId"`
	RuleType        string    `json:"ruleType"`
	Title           string    `json:"title"`
	Matched         bool      `json:"matched"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Details         string    `json:"details"`
	RequiredActions []string  `json:"requiredActions"`
	Warnings        []string  `json:"warnings"`
}

// RequiredLicense names a license the user must hold before selling the product.
type RequiredLicense struct {
	Name   string `json:"name"`
	Source string `json:"source"` // which rule set demanded it
}

// RequiredDocument names paperwork the user must provide; uploads are tracked separately.
type RequiredDocument struct {
	Name     string `json:"name"`
	Uploaded bool   `json:"uploaded"`
}

// ProhibitedReason explains why a product may not be sold, tagged with its legal basis.
type ProhibitedReason struct {
	Reason     string `json:"reason"`
	LegalBasis string `json:"legalBasis"`
	Source     string `json:"source"`
}

// RecommendationKind distinguishes actionable advice from informational notes.
type RecommendationKind string

const (
	RecommendationActionable    RecommendationKind = "ACTIONABLE"
	RecommendationInformational RecommendationKind = "INFORMATIONAL"
)

// Recommendation is one piece of advice attached to a compliance check.
type Recommendation struct {
	Text string             `json:"text"`
	Kind RecommendationKind `json:"kind"`
}

// CheckOutcome is the combined verdict produced by the engine before persistence.
type CheckOutcome struct {
	Status            CheckStatus        `json:"status"`
	RiskScore         float64            `json:"riskScore"`
	RuleResults       []RuleResult       `json:"ruleResults"`
	RequiredLicenses  []RequiredLicense  `json:"requiredLicenses"`
	RequiredDocuments []RequiredDocument `json:"requiredDocuments"`
	ProhibitedReasons []ProhibitedReason `json:"prohibitedReasons"`
	Recommendations   []Recommendation   `json:"recommendations"`
}
