/*
dto.go - Request/response data structures for the HTTP API

PURPOSE:
  JSON shapes exchanged with clients. Domain types never cross the wire
  directly; every response goes through a DTO so the JSON contract stays
  stable when the domain changes.

CONVENTIONS:
  - Monetary amounts are fixed two-decimal strings
  - Vacation day counts are integers
  - Timestamps are RFC3339

SEE ALSO:
  - handlers.go: Producers and consumers of these types
*/
package api

import (
	"time"

	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/ledger"
)

// EmployeeDTO is the JSON view of a roster member.
type EmployeeDTO struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Type         string `json:"type"`
	VacationDays int    `json:"vacation_days"`
	TotalPayment string `json:"total_payment"`
}

// toEmployeeDTO renders an employee. The vacation balance is passed in
// because reading it must go through the roster's per-employee lock.
func toEmployeeDTO(e *employee.Employee, vacationDays int) EmployeeDTO {
	return EmployeeDTO{
		Name:         e.Name,
		Role:         string(e.Role),
		Type:         string(e.Type),
		VacationDays: vacationDays,
		TotalPayment: e.CalculateTotalPayment().StringFixed(2),
	}
}

// PaymentDTO reports the result of a pay command.
type PaymentDTO struct {
	Name    string `json:"name"`
	Base    string `json:"base"`
	Bonus   string `json:"bonus"`
	Total   string `json:"total"`
	Summary string `json:"summary"`
}

// PayrollRunDTO reports the result of a whole-roster pay run.
type PayrollRunDTO struct {
	Paid      int      `json:"paid"`
	Summaries []string `json:"summaries"`
}

// VacationRequestDTO is the body for a vacation or payout request.
type VacationRequestDTO struct {
	Payout bool `json:"payout"`
	Days   int  `json:"days,omitempty"`
}

// VacationResponseDTO reports the policy outcome. A rejection is a valid
// response, not an error status.
type VacationResponseDTO struct {
	Granted      bool   `json:"granted"`
	Message      string `json:"message"`
	DaysApplied  int    `json:"days_applied"`
	VacationDays int    `json:"vacation_days"`
}

// TransactionDTO is the JSON view of a ledger entry.
type TransactionDTO struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	Amount       string `json:"amount"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
}

func toTransactionDTO(tx ledger.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:           tx.ID,
		EmployeeName: tx.EmployeeName,
		Type:         string(tx.Type),
		Amount:       tx.Amount.StringFixed(2),
		Description:  tx.Description,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTOs(txs []ledger.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = toTransactionDTO(tx)
	}
	return dtos
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
