// Package amortization provides fixed-rate loan amortization calculations.
package amortization

import (
	"math"

	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/loancalc/loancalc/pkg/mathutil"
	"github.com/loancalc/loancalc/pkg/validation"
)

// Terms holds the inputs for one loan calculation.
type Terms struct {
	Name       string
	Principal  float64
	AnnualRate float64 // percentage, e.g. 5.0 for 5%
	TermYears  int
}

// MonthlyRate returns the per-period interest rate as a fraction.
func (t Terms) MonthlyRate() float64 {
	return t.AnnualRate / constants.PercentageMultiplier / constants.MonthsPerYear
}

// NumberOfPayments returns the total count of monthly payments over the term.
func (t Terms) NumberOfPayments() int {
	return t.TermYears * constants.MonthsPerYear
}

// Validate checks the terms before any calculation.
func (t Terms) Validate() error {
	return validation.ValidateLoanTerms(t.Principal, t.AnnualRate, t.TermYears)
}

// PaymentRecord holds the values for one scheduled month.
type PaymentRecord struct {
	Month              int
	Payment            float64
	Principal          float64
	Interest           float64
	Balance            float64
	CumulativeInterest float64
}

// MonthlyPayment calculates the fixed monthly payment using the standard
// annuity formula. No rounding is applied; full precision is retained for the
// schedule loop.
func MonthlyPayment(principal, monthlyRate float64, numPayments int) float64 {
	if monthlyRate == 0 {
		// Unreachable through Validate, but the formula below divides by
		// zero for a zero rate.
		return principal / float64(numPayments)
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(numPayments)))
}

// GenerateSchedule produces the month-by-month schedule for a loan. Interest
// and the running balance round to whole cents each month; the final month
// overrides the principal portion with the remaining balance so the schedule
// terminates at exactly zero, absorbing accumulated rounding drift.
func GenerateSchedule(principal, monthlyRate float64, numPayments int, payment float64) []PaymentRecord {
	records := make([]PaymentRecord, 0, numPayments)
	balance := principal
	totalInterest := 0.0

	for month := 1; month <= numPayments; month++ {
		interest := mathutil.Round(balance * monthlyRate)
		principalPart := payment - interest
		totalInterest += interest

		if month == numPayments {
			principalPart = balance
			balance = 0
		} else {
			balance = mathutil.Round(balance - principalPart)
		}

		records = append(records, PaymentRecord{
			Month:              month,
			Payment:            payment,
			Principal:          principalPart,
			Interest:           interest,
			Balance:            balance,
			CumulativeInterest: totalInterest,
		})
	}

	return records
}

// Schedule validates the terms and returns the complete amortization
// schedule. Each call produces a fresh schedule.
func Schedule(terms Terms) ([]PaymentRecord, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	payment := MonthlyPayment(terms.Principal, terms.MonthlyRate(), terms.NumberOfPayments())
	return GenerateSchedule(terms.Principal, terms.MonthlyRate(), terms.NumberOfPayments(), payment), nil
}
