package service

import "errors"

// Decision errors, mutually exclusive; the first applicable one wins.
var (
	ErrInvalidPersonalCode = errors.New("invalid personal ID code")
	ErrInvalidLoanAmount   = errors.New("invalid loan amount")
	ErrInvalidLoanPeriod   = errors.New("invalid loan period")
	ErrNoValidLoan         = errors.New("no valid loan found")
)
