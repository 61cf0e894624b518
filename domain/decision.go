package domain

// DecisionRequest carries the inputs of a single loan evaluation.
type DecisionRequest struct {
	PersonalCode string `json:"personalCode"`
	LoanAmount   int64  `json:"loanAmount"`
	LoanPeriod   int    `json:"loanPeriod"`
}

// Decision is an approved offer: the maximum amount the bank is willing
// to lend and the period (in months) it is lent over. Rejections are
// reported as errors, never as a zero-valued Decision.
type Decision struct {
	LoanAmount int64 `json:"loanAmount"`
	LoanPeriod int   `json:"loanPeriod"`
}
