/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the roster via REST API. Handles HTTP request/response, JSON
  serialization, and delegates to the domain packages.

ENDPOINTS:
  Employees:
    GET    /api/employees                 List the roster
    POST   /api/employees                 Create employee
    GET    /api/employees/{name}          Get employee details
    POST   /api/employees/{name}/pay      Pay one employee
    POST   /api/employees/{name}/vacation Request vacation or payout
    GET    /api/employees/{name}/history  Transaction history

  Payroll:
    POST   /api/payroll/run               Pay the whole roster

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown employee
  - 500: Internal errors
  A rejected vacation request is NOT an error: the policy answered, the
  answer was no. It returns 200 with granted=false.

NAME LOOKUP:
  Employees are addressed by name. Names are not unique in the roster;
  the API acts on the first match, the usual case for small rosters.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/roster"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Company *roster.Company
	Factory *factory.Factory
}

// NewHandler creates a new handler over the given roster and factory.
func NewHandler(company *roster.Company, f *factory.Factory) *Handler {
	return &Handler{Company: company, Factory: f}
}

func (h *Handler) findEmployee(w http.ResponseWriter, r *http.Request) *employee.Employee {
	name := chi.URLParam(r, "name")
	matches := h.Company.FindByName(name)
	if len(matches) == 0 {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return nil
	}
	return matches[0]
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the roster, optionally filtered by role.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.Company.Employees()
	if roleParam := r.URL.Query().Get("role"); roleParam != "" {
		role, err := employee.ParseRole(roleParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid role filter", err)
			return
		}
		employees = h.Company.FindByRole(role)
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e, h.Company.VacationBalance(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateEmployee builds a wired employee from a JSON spec and adds it to
// the roster.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var spec factory.EmployeeSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	e, err := h.Factory.FromSpec(spec)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid employee spec", err)
		return
	}

	h.Company.Add(e)
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e, h.Company.VacationBalance(e)))
}

// GetEmployee returns a single employee by name.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	e := h.findEmployee(w, r)
	if e == nil {
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e, h.Company.VacationBalance(e)))
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

// PayEmployee pays a single employee and records the transactions.
func (h *Handler) PayEmployee(w http.ResponseWriter, r *http.Request) {
	e := h.findEmployee(w, r)
	if e == nil {
		return
	}

	summary, err := h.Company.Pay(r.Context(), e)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to pay employee", err)
		return
	}

	base := e.CalculatePayment()
	bonus := e.CalculateBonus()
	writeJSON(w, http.StatusOK, PaymentDTO{
		Name:    e.Name,
		Base:    base.StringFixed(2),
		Bonus:   bonus.StringFixed(2),
		Total:   base.Add(bonus).StringFixed(2),
		Summary: summary,
	})
}

// RunPayroll pays the whole roster in order.
func (h *Handler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Company.PayAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Payroll run failed", err)
		return
	}
	writeJSON(w, http.StatusOK, PayrollRunDTO{Paid: len(summaries), Summaries: summaries})
}

// =============================================================================
// VACATION HANDLERS
// =============================================================================

// RequestVacation runs the employee's vacation policy. The response
// carries the outcome either way; only malformed input is an HTTP error.
func (h *Handler) RequestVacation(w http.ResponseWriter, r *http.Request) {
	e := h.findEmployee(w, r)
	if e == nil {
		return
	}

	var req VacationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	outcome, err := h.Company.ProcessVacation(r.Context(), e, req.Payout, req.Days)
	if err != nil {
		if errors.Is(err, roster.ErrInvalidDayCount) {
			writeError(w, http.StatusBadRequest, "Invalid day count", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to process vacation request", err)
		return
	}

	writeJSON(w, http.StatusOK, VacationResponseDTO{
		Granted:      outcome.Granted,
		Message:      outcome.Message,
		DaysApplied:  outcome.DaysApplied,
		VacationDays: h.Company.VacationBalance(e),
	})
}

// =============================================================================
// HISTORY HANDLERS
// =============================================================================

// GetHistory returns an employee's transactions. Insertion order by
// default; ?sort=recent returns newest-first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	e := h.findEmployee(w, r)
	if e == nil {
		return
	}

	if r.URL.Query().Get("sort") == "recent" {
		history, err := h.Company.HistoryByRecency(r.Context(), e.Name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load history", err)
			return
		}
		writeJSON(w, http.StatusOK, toTransactionDTOs(history))
		return
	}

	history, err := h.Company.History(r.Context(), e.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load history", err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionDTOs(history))
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
