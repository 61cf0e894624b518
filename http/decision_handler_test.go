package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loan-decision/identity"
	"loan-decision/repository"
	"loan-decision/service"
)

func newTestHandler() *DecisionHandler {
	engine := service.NewDecisionEngine(
		service.DefaultConfig(),
		identity.NewEstonianValidator(),
		repository.NewMemoryCache(),
	)
	return NewDecisionHandler(engine)
}

func postDecision(t *testing.T, handler *DecisionHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/decision",
		bytes.NewBufferString(body),
	)

	w := httptest.NewRecorder()
	handler.Decide(w, req)
	return w
}

func TestDecide_Approved(t *testing.T) {

	handler := newTestHandler()

	w := postDecision(t, handler, `{
		"personalCode": "38001013000",
		"loanAmount": 4000,
		"loanPeriod": 12
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		LoanAmount int64 `json:"loanAmount"`
		LoanPeriod int   `json:"loanPeriod"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.LoanAmount != 2000 || resp.LoanPeriod != 20 {
		t.Errorf("expected (2000, 20), got (%d, %d)", resp.LoanAmount, resp.LoanPeriod)
	}
}

func TestDecide_DebtSegmentIsNotFound(t *testing.T) {

	handler := newTestHandler()

	w := postDecision(t, handler, `{
		"personalCode": "38001011006",
		"loanAmount": 4000,
		"loanPeriod": 12
	}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDecide_InvalidPersonalCodeIsBadRequest(t *testing.T) {

	handler := newTestHandler()

	w := postDecision(t, handler, `{
		"personalCode": "12345678901",
		"loanAmount": 4000,
		"loanPeriod": 12
	}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	var resp struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ErrorMessage == "" {
		t.Errorf("expected an error message in the response")
	}
}

func TestDecide_InvalidAmountIsBadRequest(t *testing.T) {

	handler := newTestHandler()

	w := postDecision(t, handler, `{
		"personalCode": "38001013000",
		"loanAmount": 1999,
		"loanPeriod": 12
	}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDecide_BadRequestBody(t *testing.T) {

	handler := newTestHandler()

	w := postDecision(t, handler, `{invalid-json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDecide_MethodNotAllowed(t *testing.T) {

	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/decision", nil)
	w := httptest.NewRecorder()

	handler.Decide(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
