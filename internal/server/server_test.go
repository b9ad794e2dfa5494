package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/loancalc/loancalc/pkg/mathutil"
	"go.uber.org/zap"
)

func newTestHandler() http.Handler {
	return NewHandler(zap.NewNop(), 0, "test")
}

func postSchedule(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleSchedule(t *testing.T) {
	handler := newTestHandler()

	rr := postSchedule(t, handler, `{"name":"Home","principal":100000,"annualRate":5.0,"termYears":30}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body %s", rr.Code, rr.Body.String())
	}

	var resp scheduleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Records) != 360 {
		t.Fatalf("response has %d records, expected 360", len(resp.Records))
	}
	if !mathutil.WithinTolerance(resp.MonthlyPayment, 536.82, constants.CurrencyTolerance) {
		t.Errorf("monthly payment = %.4f, expected 536.82", resp.MonthlyPayment)
	}
	if resp.Records[359].Balance != 0 {
		t.Errorf("final balance = %.4f, expected exactly 0", resp.Records[359].Balance)
	}
	if resp.Breakdown.Principal != 100000 {
		t.Errorf("breakdown principal = %.2f, expected 100000", resp.Breakdown.Principal)
	}
	if !strings.Contains(resp.Breakdown.PrincipalLabel, "$100,000.00") {
		t.Errorf("principal label = %q, expected a formatted currency amount", resp.Breakdown.PrincipalLabel)
	}
	if !strings.HasPrefix(resp.CSV, constants.CSVHeader+"\n") {
		t.Errorf("CSV payload does not start with the header row")
	}
	if resp.Duration == "" {
		t.Errorf("response is missing the calculation duration")
	}
}

func TestHandleScheduleValidation(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{
			name:            "Zero principal",
			body:            `{"principal":0,"annualRate":5.0,"termYears":30}`,
			expectedMessage: "principal",
		},
		{
			name:            "Rate too high",
			body:            `{"principal":100000,"annualRate":150,"termYears":30}`,
			expectedMessage: "rate",
		},
		{
			name:            "Zero term",
			body:            `{"principal":100000,"annualRate":5.0,"termYears":0}`,
			expectedMessage: "term",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postSchedule(t, handler, tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, expected 400; body %s", rr.Code, rr.Body.String())
			}

			var resp map[string]string
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if !strings.Contains(resp["error"], tt.expectedMessage) {
				t.Errorf("error = %q, expected it to mention %q", resp["error"], tt.expectedMessage)
			}
		})
	}
}

func TestHandleScheduleMalformedBody(t *testing.T) {
	handler := newTestHandler()

	rr := postSchedule(t, handler, `{"principal":`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rr.Code)
	}
}

func TestHandleScheduleBodyTooLarge(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 16, "test")

	rr := postSchedule(t, handler, `{"principal":100000,"annualRate":5.0,"termYears":30}`)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, expected 413", rr.Code)
	}
}

func TestHandleScheduleMethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, expected 405", rr.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "test" {
		t.Errorf("version = %q, expected %q", resp["version"], "test")
	}

	post := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, post)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, expected 405", rr.Code)
	}
}
