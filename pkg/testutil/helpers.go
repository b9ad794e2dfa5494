// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/loancalc/loancalc/pkg/amortization"
)

// MustSchedule computes a schedule and fails the test on error.
func MustSchedule(t *testing.T, terms amortization.Terms) []amortization.PaymentRecord {
	t.Helper()
	records, err := amortization.Schedule(terms)
	if err != nil {
		t.Fatalf("Schedule(%+v) error = %v", terms, err)
	}
	return records
}

// RecordForMonth finds the record for a given month in the schedule.
// Returns a pointer to the record if found, nil otherwise.
func RecordForMonth(records []amortization.PaymentRecord, month int) *amortization.PaymentRecord {
	for i := range records {
		if records[i].Month == month {
			return &records[i]
		}
	}
	return nil
}
