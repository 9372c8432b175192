package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/catalog"
	"github.com/open-sedori/sedori/internal/compliance/engine"
	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/license"
	"github.com/open-sedori/sedori/internal/metrics"
	"github.com/open-sedori/sedori/internal/regulation"
)

// ProductSource supplies the catalog product under evaluation.
type ProductSource interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*catalog.Product, error)
}

// LicenseSource supplies the user's currently usable licenses.
type LicenseSource interface {
	ListUsableByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]license.License, error)
}

// RuleSource supplies stored regulation rules whose keywords match a corpus.
type RuleSource interface {
	MatchCorpus(ctx context.Context, corpus string) ([]regulation.RegulationRule, error)
}

// Evaluator runs the compliance rule pipeline and schedules re-checks.
// *engine.Evaluator is the production implementation.
type Evaluator interface {
	Evaluate(p engine.Product, licenses []license.License, originCountry string, rules []engine.FreeformRule, now time.Time) model.CheckOutcome
	NextCheckAt(status model.CheckStatus, now time.Time) *time.Time
}

// CheckService orchestrates compliance evaluations: it gathers the inputs,
// runs the engine, and persists the resulting check record.
type CheckService struct {
	store     CheckStore
	products  ProductSource
	licenses  LicenseSource
	rules     RuleSource
	evaluator Evaluator
	clock     func() time.Time
}

// NewCheckService creates a new CheckService instance
func NewCheckService(store CheckStore, products ProductSource, licenses LicenseSource, rules RuleSource, evaluator Evaluator) *CheckService {
	return &CheckService{
		store:     store,
		products:  products,
		licenses:  licenses,
		rules:     rules,
		evaluator: evaluator,
		clock:     func() time.Time { return time.Now().UTC() },
	}
}

// RunCheckDTO is the request payload for triggering a compliance check.
type RunCheckDTO struct {
	ProductID     uuid.UUID `json:"productId" binding:"required"`
	OriginCountry string    `json:"originCountry"`
}

// RunCheck evaluates one product for one user and persists the outcome as a
// new immutable check record. An engine failure is not an error to the
// caller: the check is stored as PENDING and retried on its next scheduled
// run.
func (cs *CheckService) RunCheck(ctx context.Context, userID uuid.UUID, req *RunCheckDTO) (*model.ComplianceCheck, error) {
	if req == nil {
		return nil, fmt.Errorf("check request cannot be nil")
	}

	product, err := cs.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product for check: %w", err)
	}

	now := cs.clock()

	licenses, err := cs.licenses.ListUsableByUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load licenses for check: %w", err)
	}

	input := engine.Product{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Metadata:    product.Metadata,
		RetailPrice: product.RetailPrice,
		Currency:    product.Currency,
	}

	matched, err := cs.rules.MatchCorpus(ctx, engine.BuildCorpus(input))
	if err != nil {
		return nil, fmt.Errorf("failed to match regulation rules: %w", err)
	}

	outcome := cs.safeEvaluate(input, licenses, req.OriginCountry, regulation.ToFreeformRules(matched), now)

	check := &model.ComplianceCheck{
		ProductID:         product.ID,
		UserID:            userID,
		Status:            outcome.Status,
		RiskScore:         outcome.RiskScore,
		RuleResults:       outcome.RuleResults,
		RequiredLicenses:  outcome.RequiredLicenses,
		RequiredDocuments: outcome.RequiredDocuments,
		ProhibitedReasons: outcome.ProhibitedReasons,
		Recommendations:   outcome.Recommendations,
		OriginCountry:     req.OriginCountry,
		PerformedAt:       now,
		NextCheckAt:       cs.evaluator.NextCheckAt(outcome.Status, now),
	}

	if err := cs.store.Save(ctx, check); err != nil {
		return nil, err
	}

	metrics.ChecksTotal.WithLabelValues(string(check.Status)).Inc()
	if check.Status == model.CheckStatusProhibited {
		metrics.ProhibitedTotal.Inc()
	}

	slog.Info("compliance check completed",
		"check_id", check.ID,
		"product_id", check.ProductID,
		"user_id", check.UserID,
		"status", check.Status,
		"risk_score", check.RiskScore,
	)
	return check, nil
}

// safeEvaluate runs the engine behind a recover so a panic in rule code turns
// into a PENDING verdict instead of taking down the request.
func (cs *CheckService) safeEvaluate(input engine.Product, licenses []license.License, originCountry string, rules []engine.FreeformRule, now time.Time) (outcome model.CheckOutcome) {
	defer func() {
		if r := recover(); r != nil {
			metrics.EvaluationFailures.Inc()
			slog.Error("compliance evaluation panicked", "panic", r, "product", input.Name)
			outcome = model.CheckOutcome{
				Status:            model.CheckStatusPending,
				RuleResults:       []model.RuleResult{},
				RequiredLicenses:  []model.RequiredLicense{},
				RequiredDocuments: []model.RequiredDocument{},
				ProhibitedReasons: []model.ProhibitedReason{},
				Recommendations:   []model.Recommendation{},
			}
		}
	}()
	return cs.evaluator.Evaluate(input, licenses, originCountry, rules, now)
}

// GetCheck retrieves one stored check by ID.
func (cs *CheckService) GetCheck(ctx context.Context, checkID uuid.UUID) (*model.ComplianceCheck, error) {
	return cs.store.GetByID(ctx, checkID)
}

// ListChecks retrieves stored checks matching the filter, newest first.
func (cs *CheckService) ListChecks(ctx context.Context, filter model.ComplianceCheckFilter) (*model.ComplianceCheckListResult, error) {
	return cs.store.List(ctx, filter)
}

// GateStatus returns the listing-gate verdict for a product: the status of
// its most recent check, or PENDING when the product has never been checked.
func (cs *CheckService) GateStatus(ctx context.Context, productID uuid.UUID) (model.CheckStatus, error) {
	check, err := cs.store.LatestForProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrCheckNotFound) {
			return model.CheckStatusPending, nil
		}
		return "", err
	}
	return check.Status, nil
}
