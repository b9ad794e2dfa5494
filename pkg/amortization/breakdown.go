package amortization

import "github.com/loancalc/loancalc/pkg/mathutil"

// Breakdown holds the two proportions of the total amount paid over a loan's
// life: the original principal and the total interest.
type Breakdown struct {
	Principal     float64
	TotalInterest float64
}

// BreakdownOf derives the payment breakdown from a computed schedule. An
// empty schedule yields a zero breakdown.
func BreakdownOf(principal float64, records []PaymentRecord) Breakdown {
	if len(records) == 0 {
		return Breakdown{}
	}
	return Breakdown{
		Principal:     principal,
		TotalInterest: records[len(records)-1].CumulativeInterest,
	}
}

// Total returns the combined amount paid over the loan's life.
func (b Breakdown) Total() float64 {
	return b.Principal + b.TotalInterest
}

// PrincipalShare returns the principal slice as a percentage of the total.
func (b Breakdown) PrincipalShare() float64 {
	return mathutil.CalculatePercentage(b.Principal, b.Total())
}

// InterestShare returns the interest slice as a percentage of the total.
func (b Breakdown) InterestShare() float64 {
	return mathutil.CalculatePercentage(b.TotalInterest, b.Total())
}
