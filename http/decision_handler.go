package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"loan-decision/domain"
	"loan-decision/service"
)

type DecisionHandler struct {
	engine *service.DecisionEngine
}

func NewDecisionHandler(engine *service.DecisionEngine) *DecisionHandler {
	return &DecisionHandler{engine: engine}
}

type decisionResponse struct {
	LoanAmount   int64  `json:"loanAmount,omitempty"`
	LoanPeriod   int    `json:"loanPeriod,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Decide evaluates a loan request and writes the decision, or the
// rejection reason with a matching status code.
func (h *DecisionHandler) Decide(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, decisionResponse{
			ErrorMessage: "invalid request body",
		})
		return
	}

	decision, err := h.engine.CalculateApprovedLoan(req)
	if err != nil {
		writeJSON(w, decisionStatus(err), decisionResponse{
			ErrorMessage: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, decisionResponse{
		LoanAmount: decision.LoanAmount,
		LoanPeriod: decision.LoanPeriod,
	})
}

// decisionStatus maps engine errors to HTTP status codes: invalid
// inputs are the client's fault, an applicant with no valid loan is
// reported as not found.
func decisionStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidPersonalCode),
		errors.Is(err, service.ErrInvalidLoanAmount),
		errors.Is(err, service.ErrInvalidLoanPeriod):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoValidLoan):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body decisionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
