package engine

import (
	"fmt"
	"strings"

	"github.com/open-sedori/sedori/internal/compliance/model"
)

// EvaluateImport runs the import-restriction rule set against a product and an
// optional origin country. A product can match several restriction categories
// at once; prohibition is terminal, but matching continues so that the result
// still lists every document the shipment would need. Of several
// tariff-bearing matches, the first in table order wins — the estimate is a
// single figure, not a cumulative duty calculation.
func (e *Evaluator) EvaluateImport(p Product, originCountry string) model.ImportResult {
	result := model.ImportResult{
		Compliant:         true,
		RiskLevel:         model.RiskLevelNone,
		ProhibitedReasons: []string{},
		RestrictedReasons: []string{},
		RequiredDocuments: []string{},
		RequiredLicenses:  []string{},
		Recommendations:   []string{},
	}

	corpus := BuildCorpus(p)

	seenDocs := map[string]bool{}
	seenLicenses := map[string]bool{}

	for _, entry := range importRestrictions {
		if !MatchesAny(corpus, entry.Keywords) {
			continue
		}

		switch {
		case entry.Prohibited:
			result.ProhibitedReasons = append(result.ProhibitedReasons,
				fmt.Sprintf("%s (%s)", entry.Description, entry.Authority))
			result.RiskLevel = model.RiskLevelProhibited
		case entry.Restricted:
			result.RestrictedReasons = append(result.RestrictedReasons,
				fmt.Sprintf("%s (%s)", entry.Description, entry.Authority))
			result.RiskLevel = result.RiskLevel.AtLeast(model.RiskLevelHigh)
		}

		for _, doc := range entry.RequiredDocuments {
			if !seenDocs[doc] {
				seenDocs[doc] = true
				result.RequiredDocuments = append(result.RequiredDocuments, doc)
			}
		}
		for _, lic := range entry.RequiredLicenses {
			if !seenLicenses[lic] {
				seenLicenses[lic] = true
				result.RequiredLicenses = append(result.RequiredLicenses, lic)
			}
		}

		if result.Tariff == nil && entry.TariffRate > 0 && p.RetailPrice > 0 {
			currency := p.Currency
			if currency == "" {
				currency = "JPY"
			}
			result.Tariff = &model.TariffEstimate{
				Rate:     entry.TariffRate,
				Amount:   p.RetailPrice * entry.TariffRate / 100,
				Currency: currency,
			}
		}
	}

	if originCountry != "" {
		origin := strings.ToLower(strings.TrimSpace(originCountry))
		if matchesCountry(origin, sanctionedCountries) {
			result.ProhibitedReasons = append(result.ProhibitedReasons,
				fmt.Sprintf("imports originating from %s are prohibited under current sanctions", originCountry))
			result.RiskLevel = model.RiskLevelProhibited
		} else if matchesCountry(origin, watchListCountries) {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("origin country %s is on the supply-chain watch list; verify the exporter before purchase", originCountry))
		}
	}

	// Restriction is a gate, not merely a warning: restricted items stay
	// non-compliant until their documentation is in place.
	result.Compliant = len(result.ProhibitedReasons) == 0 && len(result.RestrictedReasons) == 0

	result.Recommendations = append(result.Recommendations,
		"通関業者に相談してください (consult a licensed customs broker before shipping)",
		"インボイスとパッキングリストを準備してください (prepare the commercial invoice and packing list)",
	)
	if len(result.RequiredDocuments) > 0 {
		result.Recommendations = append(result.Recommendations,
			"必要書類を事前に揃えてください (collect the required documents before the shipment departs)")
	}
	if len(result.RequiredLicenses) > 0 {
		result.Recommendations = append(result.Recommendations,
			"販売免許の取得が必要です (obtain the required sales licenses before listing)")
	}
	if result.Tariff != nil {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("関税見込額 %.0f %s を仕入価格に織り込んでください (budget the estimated duty into your margin)",
				result.Tariff.Amount, result.Tariff.Currency))
	}

	return result
}

// matchesCountry reports whether the folded origin string names one of the
// listed countries, by equality or by containing the listed name.
func matchesCountry(origin string, countries []string) bool {
	for _, c := range countries {
		if origin == c || strings.Contains(origin, c) {
			return true
		}
	}
	return false
}
