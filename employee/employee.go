package employee

import (
	"errors"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COLLABORATOR CONTRACTS
// =============================================================================

// PaymentStrategy computes the base payment for an employee.
// Implementations are stateless and safe to share between employees.
type PaymentStrategy interface {
	CalculatePayment(e *Employee) decimal.Decimal
}

// BonusStrategy computes the bonus on top of a base payment.
type BonusStrategy interface {
	CalculateBonus(e *Employee, basePayment decimal.Decimal) decimal.Decimal
}

// VacationPolicy encodes the per-role vacation rules.
//
// ProcessVacation mutates the employee's balance only when the outcome
// is granted, and deducts exactly once. Days is the caller-supplied day
// count; zero means "not supplied" and each policy picks its own default
// (the configured payout days for payouts, one day for time off).
type VacationPolicy interface {
	CanTakeVacation(e *Employee, days int) bool
	CanTakePayout(e *Employee, days int) bool
	ProcessVacation(e *Employee, payout bool, days int) VacationOutcome
}

// VacationOutcome is the explicit result of a vacation request.
// Callers branch on Granted; the message is for display only.
type VacationOutcome struct {
	Granted     bool
	Message     string
	DaysApplied int
}

// ErrAlreadyWired is returned when Wire is called twice.
var ErrAlreadyWired = errors.New("employee collaborators already assigned")

// =============================================================================
// EMPLOYEE AGGREGATE
// =============================================================================

// Employee is the roster aggregate. The exported fields are plain data;
// the unexported collaborators are assigned exactly once via Wire and
// every computation is delegated to them.
type Employee struct {
	Name         string
	Role         Role
	Type         Type
	VacationDays int

	// Salaried
	MonthlySalary decimal.Decimal

	// Hourly
	HourlyRate  decimal.Decimal
	HoursWorked int

	// Freelancer
	Projects []Project

	payment  PaymentStrategy
	bonus    BonusStrategy
	vacation VacationPolicy
}

// Wire assigns the three collaborators. It can be called once; the
// assignment is immutable afterward.
func (e *Employee) Wire(p PaymentStrategy, b BonusStrategy, v VacationPolicy) error {
	if e.payment != nil || e.bonus != nil || e.vacation != nil {
		return ErrAlreadyWired
	}
	e.payment = p
	e.bonus = b
	e.vacation = v
	return nil
}

// Payment returns the assigned payment strategy.
func (e *Employee) Payment() PaymentStrategy { return e.payment }

// Bonus returns the assigned bonus strategy.
func (e *Employee) Bonus() BonusStrategy { return e.bonus }

// Vacation returns the assigned vacation policy.
func (e *Employee) Vacation() VacationPolicy { return e.vacation }

// CalculatePayment returns the base payment for this pay period.
func (e *Employee) CalculatePayment() decimal.Decimal {
	return e.payment.CalculatePayment(e)
}

// CalculateBonus returns the bonus on top of the base payment.
func (e *Employee) CalculateBonus() decimal.Decimal {
	return e.bonus.CalculateBonus(e, e.CalculatePayment())
}

// CalculateTotalPayment returns base payment plus bonus, exactly.
func (e *Employee) CalculateTotalPayment() decimal.Decimal {
	return e.CalculatePayment().Add(e.CalculateBonus())
}

// RequestVacation runs the assigned vacation policy. A zero day count
// means "use the policy default".
func (e *Employee) RequestVacation(payout bool, days int) VacationOutcome {
	return e.vacation.ProcessVacation(e, payout, days)
}
