// Package calculator holds the current-schedule session state around the
// amortization engine.
package calculator

import (
	"errors"

	"github.com/loancalc/loancalc/pkg/amortization"
	"github.com/loancalc/loancalc/pkg/output"
	"go.uber.org/zap"
)

// ErrNoSchedule indicates an export was requested before any calculation.
var ErrNoSchedule = errors.New("no schedule to export")

// Calculator holds the single current schedule. Each successful calculation
// wholesale-replaces the prior one; there is no incremental mutation.
type Calculator struct {
	logger  *zap.Logger
	terms   amortization.Terms
	records []amortization.PaymentRecord
}

// New creates a calculator instance.
func New(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate validates the terms, computes a fresh schedule, and replaces the
// current one. On error the current schedule is left untouched.
func (c *Calculator) Calculate(terms amortization.Terms) ([]amortization.PaymentRecord, error) {
	records, err := amortization.Schedule(terms)
	if err != nil {
		return nil, err
	}

	c.terms = terms
	c.records = records
	c.logger.Debug("computed amortization schedule",
		zap.String("op", "calculator.Calculate"),
		zap.String("loan", terms.Name),
		zap.Int("months", len(records)),
	)
	return records, nil
}

// Terms returns the terms of the current schedule.
func (c *Calculator) Terms() amortization.Terms {
	return c.terms
}

// Records returns the current schedule, nil when none has been computed.
func (c *Calculator) Records() []amortization.PaymentRecord {
	return c.records
}

// Breakdown returns the principal/interest breakdown of the current
// schedule; both slices report zero after Clear.
func (c *Calculator) Breakdown() amortization.Breakdown {
	return amortization.BreakdownOf(c.terms.Principal, c.records)
}

// Clear resets the terms to zero values and empties the schedule.
func (c *Calculator) Clear() {
	c.terms = amortization.Terms{}
	c.records = nil
	c.logger.Debug("cleared schedule",
		zap.String("op", "calculator.Clear"),
	)
}

// ExportCSV writes the current schedule to the named file. A failed export
// leaves the in-memory schedule untouched.
func (c *Calculator) ExportCSV(path string) error {
	if len(c.records) == 0 {
		return ErrNoSchedule
	}
	if err := output.ExportCSV(path, c.records); err != nil {
		return err
	}
	c.logger.Info("exported schedule",
		zap.String("op", "calculator.ExportCSV"),
		zap.String("path", path),
		zap.Int("months", len(c.records)),
	)
	return nil
}
