package engine

import "github.com/open-sedori/sedori/internal/compliance/model"

// Product is the read-only view of a catalog product used as evaluation input.
// Only its text fields and declared price feed the rule sets; the engine owns
// no part of the product lifecycle.
type Product struct {
	Name        string
	Description string
	Category    string
	Metadata    map[string]string
	RetailPrice float64
	Currency    string
}

// FreeformRule is a regulation rule selected upstream by keyword pre-filtering.
// Once selected it is considered matched unconditionally and contributes its
// own static risk level to the combined verdict.
type FreeformRule struct {
	ID                string
	RuleType          string
	Title             string
	Description       string
	LegalBasis        string
	RiskLevel         model.RiskLevel
	RequiredDocuments []string
}
