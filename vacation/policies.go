/*
Package vacation implements the per-role vacation policies.

PURPOSE:
  Each policy answers two capability questions (CanTakeVacation,
  CanTakePayout) and processes a request into an explicit outcome.
  The employee's balance is mutated only on a granted outcome, and
  deducted exactly once. A failed check returns a distinct rejection
  message and leaves the balance untouched.

OUTCOME, NOT WORDING:
  ProcessVacation returns employee.VacationOutcome with a Granted flag
  and the day count actually applied. Callers (the vacation command in
  roster/) branch on the flag; nothing inspects message text.

DAY COUNTS:
  A zero day count means "not supplied". Payouts then default to the
  configured vacation.payout_days. Time-off requests default to one day;
  managers and vice presidents always process exactly one day, while
  developers honor an explicit count.

BALANCE FLOOR:
  VacationDays never goes negative, for any role. The vice president
  capability check ignores the balance on purpose (their allowance is
  request-size-capped, not balance-capped), but processing still refuses
  a deduction past zero.

SEE ALSO:
  - employee/employee.go: VacationPolicy contract and outcome type
  - config/config.go: per-role limits under vacation.policies.*
*/
package vacation

import (
	"fmt"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/employee"
)

// InternRejection is the fixed message for every intern request.
const InternRejection = "Interns cannot request vacation or vacation payouts."

func granted(message string, days int) employee.VacationOutcome {
	return employee.VacationOutcome{Granted: true, Message: message, DaysApplied: days}
}

func rejected(message string) employee.VacationOutcome {
	return employee.VacationOutcome{Granted: false, Message: message}
}

func payoutProcessed(days, remaining int) employee.VacationOutcome {
	return granted(fmt.Sprintf("Payout of %d days processed. Remaining balance: %d days.", days, remaining), days)
}

func payoutRejected(available int) employee.VacationOutcome {
	return rejected(fmt.Sprintf("Cannot process payout. Available balance: %d days.", available))
}

// =============================================================================
// INTERN
// =============================================================================

// InternPolicy rejects every request and never mutates state.
type InternPolicy struct{}

func NewInternPolicy() *InternPolicy {
	return &InternPolicy{}
}

func (p *InternPolicy) CanTakeVacation(_ *employee.Employee, _ int) bool { return false }

func (p *InternPolicy) CanTakePayout(_ *employee.Employee, _ int) bool { return false }

func (p *InternPolicy) ProcessVacation(_ *employee.Employee, _ bool, _ int) employee.VacationOutcome {
	return rejected(InternRejection)
}

// =============================================================================
// MANAGER
// =============================================================================

// ManagerPolicy allows time off while the balance covers it and payouts
// up to the configured manager maximum. Time off is always one day.
type ManagerPolicy struct {
	cfg *config.Config
}

func NewManagerPolicy(cfg *config.Config) *ManagerPolicy {
	return &ManagerPolicy{cfg: cfg}
}

func (p *ManagerPolicy) CanTakeVacation(e *employee.Employee, days int) bool {
	return e.VacationDays >= days
}

func (p *ManagerPolicy) CanTakePayout(e *employee.Employee, days int) bool {
	maxPayout := p.cfg.Int("vacation.policies.manager.max_payout")
	return e.VacationDays >= days && days <= maxPayout
}

func (p *ManagerPolicy) ProcessVacation(e *employee.Employee, payout bool, days int) employee.VacationOutcome {
	if payout {
		if days == 0 {
			days = p.cfg.Int("vacation.payout_days")
		}
		if !p.CanTakePayout(e, days) {
			return payoutRejected(e.VacationDays)
		}
		e.VacationDays -= days
		return payoutProcessed(days, e.VacationDays)
	}

	if !p.CanTakeVacation(e, 1) {
		return rejected("Not enough vacation days available.")
	}
	e.VacationDays--
	return granted(fmt.Sprintf("Vacation day processed. Remaining balance: %d days.", e.VacationDays), 1)
}

// =============================================================================
// VICE PRESIDENT
// =============================================================================

// VicePresidentPolicy caps time off by request size instead of balance,
// and allows payouts of anything the balance covers. Time off is always
// one day.
type VicePresidentPolicy struct {
	cfg *config.Config
}

func NewVicePresidentPolicy(cfg *config.Config) *VicePresidentPolicy {
	return &VicePresidentPolicy{cfg: cfg}
}

func (p *VicePresidentPolicy) CanTakeVacation(_ *employee.Employee, days int) bool {
	maxPerRequest := p.cfg.Int("vacation.policies.vice_president.max_per_request")
	return days <= maxPerRequest
}

func (p *VicePresidentPolicy) CanTakePayout(e *employee.Employee, days int) bool {
	return e.VacationDays >= days
}

func (p *VicePresidentPolicy) ProcessVacation(e *employee.Employee, payout bool, days int) employee.VacationOutcome {
	if payout {
		if days == 0 {
			days = p.cfg.Int("vacation.payout_days")
		}
		if !p.CanTakePayout(e, days) {
			return payoutRejected(e.VacationDays)
		}
		e.VacationDays -= days
		return payoutProcessed(days, e.VacationDays)
	}

	maxPerRequest := p.cfg.Int("vacation.policies.vice_president.max_per_request")
	if !p.CanTakeVacation(e, 1) {
		return rejected(fmt.Sprintf("Maximum %d days per request for vice presidents.", maxPerRequest))
	}
	// The capability check is balance-blind; the deduction is not.
	if e.VacationDays < 1 {
		return rejected("No vacation balance available.")
	}
	e.VacationDays--
	return granted(fmt.Sprintf("Vacation day processed. Remaining balance: %d days.", e.VacationDays), 1)
}

// =============================================================================
// DEVELOPER
// =============================================================================

// DeveloperPolicy checks both the balance and the configured per-request
// and payout caps. Unlike the other roles, an explicit day count is
// honored for time off; it defaults to one day only when unset.
type DeveloperPolicy struct {
	cfg *config.Config
}

func NewDeveloperPolicy(cfg *config.Config) *DeveloperPolicy {
	return &DeveloperPolicy{cfg: cfg}
}

func (p *DeveloperPolicy) CanTakeVacation(e *employee.Employee, days int) bool {
	maxPerRequest := p.cfg.Int("vacation.policies.developer.max_per_request")
	return e.VacationDays >= days && days <= maxPerRequest
}

func (p *DeveloperPolicy) CanTakePayout(e *employee.Employee, days int) bool {
	maxPayout := p.cfg.Int("vacation.policies.developer.max_payout")
	return e.VacationDays >= days && days <= maxPayout
}

func (p *DeveloperPolicy) ProcessVacation(e *employee.Employee, payout bool, days int) employee.VacationOutcome {
	if payout {
		if days == 0 {
			days = p.cfg.Int("vacation.payout_days")
		}
		if !p.CanTakePayout(e, days) {
			return payoutRejected(e.VacationDays)
		}
		e.VacationDays -= days
		return payoutProcessed(days, e.VacationDays)
	}

	if days == 0 {
		days = 1
	}
	if !p.CanTakeVacation(e, days) {
		return rejected("Vacation request does not meet the developer policy limits.")
	}
	e.VacationDays -= days
	return granted(fmt.Sprintf("Vacation of %d days processed. Remaining balance: %d days.", days, e.VacationDays), days)
}

// Compile-time checks that every policy satisfies the contract.
var (
	_ employee.VacationPolicy = (*InternPolicy)(nil)
	_ employee.VacationPolicy = (*ManagerPolicy)(nil)
	_ employee.VacationPolicy = (*VicePresidentPolicy)(nil)
	_ employee.VacationPolicy = (*DeveloperPolicy)(nil)
)
