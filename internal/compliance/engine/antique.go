package engine

import (
	"fmt"
	"time"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/license"
)

// EvaluateAntique runs the antique-dealer rule set against a product and the
// caller's licenses. A product whose text matches no antique keyword is out of
// scope for dealer regulation and passes trivially, whatever licenses were
// supplied. Prohibited-item matches short-circuit the license check.
func (e *Evaluator) EvaluateAntique(p Product, licenses []license.License, now time.Time) model.AntiqueResult {
	result := model.AntiqueResult{
		Compliant:         true,
		RiskLevel:         model.RiskLevelNone,
		MatchedCategories: []string{},
		Violations:        []string{},
		Warnings:          []string{},
		Recommendations:   []string{},
	}

	corpus := BuildCorpus(p)

	if !MatchesAny(corpus, antiqueKeywords) {
		// Not used/antique goods; dealer regulation does not apply.
		return result
	}

	result.RequiresLicense = true
	result.MatchedCategories = matchDealerCategories(corpus)

	// Prohibited items end the evaluation; no license can cover them.
	for _, item := range prohibitedItems {
		for _, kw := range MatchingKeywords(corpus, item.Keywords) {
			result.Violations = append(result.Violations,
				fmt.Sprintf("禁制品該当 %s: %s (%s)", kw, item.Description, item.LegalBasis))
		}
	}
	if len(result.Violations) > 0 {
		result.Compliant = false
		result.RiskLevel = model.RiskLevelProhibited
		return result
	}

	covering := coveringLicenses(licenses, result.MatchedCategories, now)
	result.HasValidLicense = len(covering) > 0

	if !result.HasValidLicense {
		result.Compliant = false
		result.RiskLevel = model.RiskLevelHigh
		result.Violations = append(result.Violations,
			fmt.Sprintf("古物商許可が必要です: no valid antique dealer license covers categories %v", result.MatchedCategories))
	} else {
		result.RiskLevel = model.RiskLevelLow
		for _, lic := range covering {
			if lic.IsExpiringSoon(now, e.cfg.ExpiringSoonWindow) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("license %s expires on %s; renew before it lapses", lic.Number, lic.ExpiresAt.Format("2006-01-02")))
				result.RiskLevel = result.RiskLevel.AtLeast(model.RiskLevelMedium)
			}
		}
	}

	result.Recommendations = append(result.Recommendations,
		"古物台帳への記録義務があります (maintain the dealer transaction ledger for every purchase and sale)")
	for _, cat := range result.MatchedCategories {
		switch cat {
		case CategoryWatchesJewels:
			result.Recommendations = append(result.Recommendations,
				"宝飾品は本人確認の徹底が必要です (jewelry trades require strict identity verification of the seller)")
		case CategoryBooks:
			result.Recommendations = append(result.Recommendations,
				"古書は市場価格の変動が大きいため仕入記録を残してください (keep acquisition records for used books)")
		}
	}

	return result
}

// matchDealerCategories returns every dealer category whose keywords hit the
// corpus. An antique item always belongs somewhere: with no specific match it
// falls back to the catch-all wildcard category rather than an empty set.
func matchDealerCategories(corpus string) []string {
	var categories []string
	for _, dc := range dealerCategories {
		if MatchesAny(corpus, dc.Keywords) {
			categories = append(categories, dc.Tag)
		}
	}
	if len(categories) == 0 {
		categories = []string{license.CategoryAll}
	}
	return categories
}

// coveringLicenses filters the caller's licenses down to those that are
// usable (active, unexpired) and cover at least one required category,
// directly or through the wildcard.
func coveringLicenses(licenses []license.License, required []string, now time.Time) []license.License {
	var covering []license.License
	for _, lic := range licenses {
		if !lic.IsUsable(now) {
			continue
		}
		if lic.Covers(required) {
			covering = append(covering, lic)
		}
	}
	return covering
}
