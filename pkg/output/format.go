// Package output provides utilities for formatting and displaying schedules.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/loancalc/loancalc/pkg/amortization"
	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/loancalc/loancalc/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table,
// followed by the payment breakdown between principal and interest.
func PrettyFormat(w io.Writer, terms amortization.Terms, records []amortization.PaymentRecord) {
	p := message.NewPrinter(language.English)

	name := terms.Name
	if name == "" {
		name = "loan"
	}
	_, _ = p.Fprintf(w, "--- Amortization schedule for %s: %s at %.2f%% over %d years ---\n",
		name, format.Currency(terms.Principal), terms.AnnualRate, terms.TermYears)
	fmt.Fprintf(w, "Month | Payment     | Principal   | Interest    | Balance\n")
	fmt.Fprintf(w, "_____ | _______     | _________   | ________    | _______\n")
	for _, record := range records {
		_, _ = p.Fprintf(w, "%5d | %11.2f | %11.2f | %11.2f | %.2f\n",
			record.Month, record.Payment, record.Principal, record.Interest, record.Balance)
	}

	breakdown := amortization.BreakdownOf(terms.Principal, records)
	PrettyBreakdown(w, breakdown)
}

// PrettyBreakdown writes the two payment-breakdown slices with
// currency-formatted labels, mirroring a principal/interest pie chart.
func PrettyBreakdown(w io.Writer, breakdown amortization.Breakdown) {
	fmt.Fprintf(w, "\nPayment Breakdown\n")
	fmt.Fprintf(w, "Principal (%s): %s\n",
		format.Currency(breakdown.Principal), format.Percent(breakdown.PrincipalShare()))
	fmt.Fprintf(w, "Interest (%s): %s\n",
		format.Currency(breakdown.TotalInterest), format.Percent(breakdown.InterestShare()))
}

// WriteCSV writes the schedule in comma-separated value format. The decimal
// point is never localized.
func WriteCSV(w io.Writer, records []amortization.PaymentRecord) error {
	if _, err := fmt.Fprintf(w, "%s\n", constants.CSVHeader); err != nil {
		return err
	}
	for _, record := range records {
		_, err := fmt.Fprintf(w, "%d,%.2f,%.2f,%.2f,%.2f,%.2f\n",
			record.Month, record.Payment, record.Principal, record.Interest,
			record.Balance, record.CumulativeInterest)
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportCSV writes the schedule to the named file.
func ExportCSV(path string, records []amortization.PaymentRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	if err := WriteCSV(file, records); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file %s: %w", path, err)
	}
	return nil
}
