// Package server exposes the amortization engine over an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/loancalc/loancalc/pkg/amortization"
	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/loancalc/loancalc/pkg/format"
	"github.com/loancalc/loancalc/pkg/output"
	"github.com/loancalc/loancalc/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the schedule API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Schedule API endpoint
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type scheduleRequest struct {
	Name       string  `json:"name,omitempty"`
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annualRate"`
	TermYears  int     `json:"termYears"`
}

type scheduleResponse struct {
	Terms          scheduleRequest `json:"terms"`
	MonthlyPayment float64         `json:"monthlyPayment"`
	Records        []paymentRow    `json:"records"`
	Breakdown      breakdownView   `json:"breakdown"`
	CSV            string          `json:"csv"`
	Duration       string          `json:"duration"`
}

type paymentRow struct {
	Month              int     `json:"month"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	Balance            float64 `json:"balance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

type breakdownView struct {
	Principal      float64 `json:"principal"`
	PrincipalLabel string  `json:"principalLabel"`
	PrincipalShare float64 `json:"principalShare"`
	TotalInterest  float64 `json:"totalInterest"`
	InterestLabel  string  `json:"interestLabel"`
	InterestShare  float64 `json:"interestShare"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	terms := amortization.Terms{
		Name:       req.Name,
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermYears:  req.TermYears,
	}

	records, err := amortization.Schedule(terms)
	if err != nil {
		var validationErr *validation.ValidationError
		if errors.As(err, &validationErr) {
			h.respondError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		h.logger.Error("schedule calculation failed",
			zap.String("op", "server.handleSchedule"),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("calculation failed: %v", err))
		return
	}

	var csvBuf bytes.Buffer
	if err := output.WriteCSV(&csvBuf, records); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to serialize schedule: %v", err))
		return
	}

	rows := make([]paymentRow, len(records))
	for i, record := range records {
		rows[i] = paymentRow{
			Month:              record.Month,
			Payment:            record.Payment,
			Principal:          record.Principal,
			Interest:           record.Interest,
			Balance:            record.Balance,
			CumulativeInterest: record.CumulativeInterest,
		}
	}

	breakdown := amortization.BreakdownOf(terms.Principal, records)

	resp := scheduleResponse{
		Terms:          req,
		MonthlyPayment: records[0].Payment,
		Records:        rows,
		Breakdown: breakdownView{
			Principal:      breakdown.Principal,
			PrincipalLabel: fmt.Sprintf("Principal (%s)", format.Currency(breakdown.Principal)),
			PrincipalShare: breakdown.PrincipalShare(),
			TotalInterest:  breakdown.TotalInterest,
			InterestLabel:  fmt.Sprintf("Interest (%s)", format.Currency(breakdown.TotalInterest)),
			InterestShare:  breakdown.InterestShare(),
		},
		CSV:      csvBuf.String(),
		Duration: time.Since(start).String(),
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
