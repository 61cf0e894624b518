package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"loan-decision/domain"
	"loan-decision/identity"
	"loan-decision/repository"
)

// Cached decisions expire quickly: the age check depends on the current
// calendar year, so an entry must not survive a year boundary for long.
const decisionCacheTTL = time.Hour

// DecisionEngine calculates the maximum approved loan amount and period
// for an applicant. The amount is driven by the applicant's credit
// modifier, which is derived from the last four digits of their
// personal ID code.
type DecisionEngine struct {
	cfg       Config
	validator identity.Validator
	cache     repository.CacheRepository
	now       func() time.Time
}

// NewDecisionEngine creates a decision engine with the given lending
// limits, personal code validator and decision cache.
func NewDecisionEngine(cfg Config,
	validator identity.Validator,
	cache repository.CacheRepository,
) *DecisionEngine {
	return &DecisionEngine{
		cfg:       cfg,
		validator: validator,
		cache:     cache,
		now:       time.Now,
	}
}

// CalculateApprovedLoan evaluates a loan request and returns the
// largest loan the bank is willing to approve, which may differ from
// what was requested: a smaller amount over a longer period is
// preferred over rejecting outright.
//
// Rejections are reported as ErrInvalidPersonalCode,
// ErrInvalidLoanAmount, ErrInvalidLoanPeriod or ErrNoValidLoan.
func (e *DecisionEngine) CalculateApprovedLoan(
	req domain.DecisionRequest,
) (domain.Decision, error) {

	if err := e.verifyInputs(req); err != nil {
		return domain.Decision{}, err
	}

	if decision, ok := e.cachedDecision(req); ok {
		return decision, nil
	}

	modifier := e.creditModifier(req.PersonalCode)
	if modifier == 0 {
		return domain.Decision{}, ErrNoValidLoan
	}

	period := req.LoanPeriod
	if period > e.cfg.MaximumLoanPeriod {
		period = e.cfg.MaximumLoanPeriod
	}

	// Find the smallest period, never shorter than requested, at which
	// the offer reaches the minimum loan amount. The period is bounded
	// by the configured maximum; a weak modifier that cannot reach the
	// minimum even there yields no loan at all.
	amount := modifier * int64(period)
	for amount < e.cfg.MinimumLoanAmount && period < e.cfg.MaximumLoanPeriod {
		period++
		amount = modifier * int64(period)
	}
	if amount < e.cfg.MinimumLoanAmount {
		return domain.Decision{}, ErrNoValidLoan
	}
	if amount > e.cfg.MaximumLoanAmount {
		amount = e.cfg.MaximumLoanAmount
	}

	decision := domain.Decision{
		LoanAmount: amount,
		LoanPeriod: period,
	}
	e.storeDecision(req, decision)

	return decision, nil
}

// verifyInputs checks the request against business rules, in priority
// order: personal code, age, amount, period. The first failing rule
// wins and no further checks run.
func (e *DecisionEngine) verifyInputs(req domain.DecisionRequest) error {
	if !e.validator.Valid(req.PersonalCode) {
		return ErrInvalidPersonalCode
	}
	if !e.isOldEnough(req.PersonalCode) {
		return fmt.Errorf("%w: applicant must be at least 18 years old",
			ErrInvalidPersonalCode)
	}
	if req.LoanAmount < e.cfg.MinimumLoanAmount ||
		req.LoanAmount > e.cfg.MaximumLoanAmount {
		return ErrInvalidLoanAmount
	}
	if req.LoanPeriod < e.cfg.MinimumLoanPeriod ||
		req.LoanPeriod > e.cfg.MaximumLoanPeriod {
		return ErrInvalidLoanPeriod
	}
	return nil
}

// isOldEnough reports whether the applicant is at least 18. Age is the
// plain difference of calendar years; whether the birthday has passed
// this year is deliberately ignored, matching long-standing behavior
// that existing decisions depend on.
func (e *DecisionEngine) isOldEnough(personalCode string) bool {
	birthDate, err := e.validator.BirthDate(personalCode)
	if err != nil {
		return false
	}
	return e.now().Year()-birthDate.Year() >= 18
}

// creditModifier maps the last four digits of a validated personal code
// to the applicant's credit modifier:
//
//	Debt      0000...2499
//	Segment 1 2500...4999
//	Segment 2 5000...7499
//	Segment 3 7500...9999
//
// The code is expected to have passed the identity validator; a code
// without a numeric four-digit tail maps to the debt segment rather
// than trusting the validator that far.
func (e *DecisionEngine) creditModifier(personalCode string) int64 {
	if len(personalCode) < 4 {
		return 0
	}
	segment, err := strconv.Atoi(personalCode[len(personalCode)-4:])
	if err != nil {
		return 0
	}

	switch {
	case segment < 2500:
		return 0
	case segment < 5000:
		return e.cfg.Segment1CreditModifier
	case segment < 7500:
		return e.cfg.Segment2CreditModifier
	default:
		return e.cfg.Segment3CreditModifier
	}
}

func (e *DecisionEngine) cachedDecision(req domain.DecisionRequest) (domain.Decision, bool) {
	cached, ok := e.cache.Get(decisionKey(req))
	if !ok {
		return domain.Decision{}, false
	}

	var decision domain.Decision
	if err := json.Unmarshal([]byte(cached), &decision); err != nil {
		return domain.Decision{}, false
	}
	return decision, true
}

// storeDecision caches an approval; failures are not critical.
func (e *DecisionEngine) storeDecision(req domain.DecisionRequest, decision domain.Decision) {
	encoded, err := json.Marshal(decision)
	if err != nil {
		return
	}
	if err := e.cache.Set(decisionKey(req), string(encoded), decisionCacheTTL); err != nil {
		log.Printf("Warning: failed to cache decision: %v", err)
	}
}

func decisionKey(req domain.DecisionRequest) string {
	return fmt.Sprintf("decision:%s:%d:%d",
		req.PersonalCode, req.LoanAmount, req.LoanPeriod)
}
