package engine

import (
	"time"

	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/license"
)

// NextCheckAt computes when a verdict should be re-evaluated. Prohibited
// verdicts are terminal and return nil; anything without an explicit delay
// falls back to the default. The engine only returns the date — queuing the
// re-check is the scheduler's job.
func (e *Evaluator) NextCheckAt(status model.CheckStatus, now time.Time) *time.Time {
	if status == model.CheckStatusProhibited {
		return nil
	}

	delay, ok := e.cfg.RecheckDelays[status]
	if !ok {
		delay = e.cfg.DefaultRecheckDelay
	}

	next := now.Add(delay)
	return &next
}

// Evaluate runs the full pipeline for one product: both rule sets, then the
// combiner. It is pure with respect to everything but its arguments;
// evaluating the same inputs twice yields identical results.
func (e *Evaluator) Evaluate(p Product, licenses []license.License, originCountry string, rules []FreeformRule, now time.Time) model.CheckOutcome {
	antique := e.EvaluateAntique(p, licenses, now)
	imp := e.EvaluateImport(p, originCountry)
	return e.Combine(antique, imp, rules)
}
