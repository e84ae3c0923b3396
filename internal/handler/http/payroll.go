package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/opsdesk-hr/backoffice-go/internal/domain/payroll"
	"github.com/opsdesk-hr/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Compute(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Get implements PayrollHandler. Returns the stored summary for
// ?month="January 2006".
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	resp, err := h.payrollService.Get(r.Context(), p, employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Compute implements PayrollHandler. Derives the month on the fly and
// returns the summary with its day-by-day ledger, without persisting.
func (h *PayrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	employeeID := chi.URLParam(r, "employeeID")
	month := r.URL.Query().Get("month")

	resp, err := h.payrollService.Compute(r.Context(), p, employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.payrollService.Generate(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", resp)
}
