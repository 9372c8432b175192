package engine

import (
	"strings"

	"github.com/open-sedori/sedori/internal/compliance/model"
)

const (
	ruleSourceAntique  = "ANTIQUE_DEALER"
	ruleSourceImport   = "IMPORT_RESTRICTION"
	ruleSourceFreeform = "REGULATION_RULE"

	antiqueLegalBasis = "古物営業法 (Secondhand Articles Dealer Act)"
	importLegalBasis  = "関税法・輸入関連法令 (Customs Act and import regulations)"
)

// Combine merges the two rule-set results plus any pre-filtered freeform
// regulation rules into one verdict. The risk score is the maximum of the
// contributing rules' level scores — a ceiling, not an average — and a single
// prohibited rule dominates the status whatever the other rules concluded.
func (e *Evaluator) Combine(antique model.AntiqueResult, imp model.ImportResult, rules []FreeformRule) model.CheckOutcome {
	ruleResults := []model.RuleResult{
		antiqueRuleResult(antique),
		importRuleResult(imp),
	}
	for _, rule := range rules {
		ruleResults = append(ruleResults, model.RuleResult{
			RuleID:          rule.ID,
			RuleType:        rule.RuleType,
			Title:           rule.Title,
			Matched:         true, // keyword pre-filtering upstream already selected it
			RiskLevel:       rule.RiskLevel,
			Details:         rule.Description,
			RequiredActions: rule.RequiredDocuments,
			Warnings:        []string{},
		})
	}

	score := 0.0
	anyProhibited := false
	for _, rr := range ruleResults {
		if s := e.cfg.Score(rr.RiskLevel); s > score {
			score = s
		}
		if rr.RiskLevel == model.RiskLevelProhibited {
			anyProhibited = true
		}
	}

	status := e.decideStatus(anyProhibited, antique, imp, score)

	return model.CheckOutcome{
		Status:            status,
		RiskScore:         score,
		RuleResults:       ruleResults,
		RequiredLicenses:  consolidateLicenses(antique, imp),
		RequiredDocuments: consolidateDocuments(imp),
		ProhibitedReasons: consolidateProhibitedReasons(antique, imp),
		Recommendations:   consolidateRecommendations(antique, imp),
	}
}

// decideStatus applies the status priority ladder; the first matching rung wins.
func (e *Evaluator) decideStatus(anyProhibited bool, antique model.AntiqueResult, imp model.ImportResult, score float64) model.CheckStatus {
	missingLicense := (antique.RequiresLicense && !antique.HasValidLicense) || len(imp.RequiredLicenses) > 0

	switch {
	case anyProhibited:
		return model.CheckStatusProhibited
	case (!antique.Compliant || !imp.Compliant) && missingLicense:
		return model.CheckStatusNeedsLicense
	case !antique.Compliant || !imp.Compliant:
		return model.CheckStatusNonCompliant
	case score > e.cfg.ReviewThreshold:
		return model.CheckStatusRequiresReview
	default:
		return model.CheckStatusCompliant
	}
}

func antiqueRuleResult(antique model.AntiqueResult) model.RuleResult {
	details := "antique-dealer regulation does not apply"
	if antique.RequiresLicense {
		details = "product classified as used/antique goods under categories " + strings.Join(antique.MatchedCategories, ", ")
	}
	return model.RuleResult{
		RuleID:          "antique-dealer",
		RuleType:        ruleSourceAntique,
		Title:           "Antique dealer licensing check",
		Matched:         antique.RequiresLicense,
		RiskLevel:       antique.RiskLevel,
		Details:         details,
		RequiredActions: antique.Violations,
		Warnings:        antique.Warnings,
	}
}

func importRuleResult(imp model.ImportResult) model.RuleResult {
	details := "no import restriction matched"
	if !imp.Compliant {
		details = strings.Join(append(append([]string{}, imp.ProhibitedReasons...), imp.RestrictedReasons...), "; ")
	}
	return model.RuleResult{
		RuleID:          "import-restriction",
		RuleType:        ruleSourceImport,
		Title:           "Import restriction check",
		Matched:         imp.RiskLevel != model.RiskLevelNone,
		RiskLevel:       imp.RiskLevel,
		Details:         details,
		RequiredActions: imp.RequiredDocuments,
		Warnings:        []string{},
	}
}

func consolidateLicenses(antique model.AntiqueResult, imp model.ImportResult) []model.RequiredLicense {
	licenses := []model.RequiredLicense{}
	if antique.RequiresLicense && !antique.HasValidLicense && antique.RiskLevel != model.RiskLevelProhibited {
		licenses = append(licenses, model.RequiredLicense{
			Name:   "古物商許可 (Antique Dealer License)",
			Source: ruleSourceAntique,
		})
	}
	for _, name := range imp.RequiredLicenses {
		licenses = append(licenses, model.RequiredLicense{
			Name:   name,
			Source: ruleSourceImport,
		})
	}
	return licenses
}

func consolidateDocuments(imp model.ImportResult) []model.RequiredDocument {
	docs := []model.RequiredDocument{}
	for _, name := range imp.RequiredDocuments {
		docs = append(docs, model.RequiredDocument{Name: name, Uploaded: false})
	}
	return docs
}

func consolidateProhibitedReasons(antique model.AntiqueResult, imp model.ImportResult) []model.ProhibitedReason {
	reasons := []model.ProhibitedReason{}
	for _, v := range antique.Violations {
		reasons = append(reasons, model.ProhibitedReason{
			Reason:     v,
			LegalBasis: antiqueLegalBasis,
			Source:     ruleSourceAntique,
		})
	}
	for _, r := range imp.ProhibitedReasons {
		reasons = append(reasons, model.ProhibitedReason{
			Reason:     r,
			LegalBasis: importLegalBasis,
			Source:     ruleSourceImport,
		})
	}
	return reasons
}

func consolidateRecommendations(antique model.AntiqueResult, imp model.ImportResult) []model.Recommendation {
	recs := []model.Recommendation{}
	for _, r := range antique.Recommendations {
		recs = append(recs, model.Recommendation{Text: r, Kind: model.RecommendationActionable})
	}
	for _, r := range imp.Recommendations {
		recs = append(recs, model.Recommendation{Text: r, Kind: model.RecommendationInformational})
	}
	return recs
}
