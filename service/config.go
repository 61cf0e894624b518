package service

// Config holds the lending limits and segment credit modifiers the
// decision engine works with. It is built once at startup and never
// mutated afterwards; the engine keeps its own copy.
type Config struct {
	MinimumLoanAmount int64 // EUR
	MaximumLoanAmount int64 // EUR
	MinimumLoanPeriod int   // months
	MaximumLoanPeriod int   // months

	Segment1CreditModifier int64
	Segment2CreditModifier int64
	Segment3CreditModifier int64
}

// DefaultConfig returns the production lending limits.
func DefaultConfig() Config {
	return Config{
		MinimumLoanAmount: 2000,
		MaximumLoanAmount: 10000,
		MinimumLoanPeriod: 12,
		MaximumLoanPeriod: 60,

		Segment1CreditModifier: 100,
		Segment2CreditModifier: 300,
		Segment3CreditModifier: 1000,
	}
}
