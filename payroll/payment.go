/*
Package payroll implements the payment and bonus strategies.

PURPOSE:
  Pure compensation math. A PaymentStrategy maps an employee's contract
  fields to a base payment; a BonusStrategy maps (employee, base payment)
  to a bonus. Strategies hold no per-employee state - the same instance
  serves the whole roster - and every configurable rate is read from the
  injected config at call time.

AVAILABLE STRATEGIES:
  Payment:
    SalariedPayment:   monthly salary, config default when unset
    HourlyPayment:     hourly rate x hours worked
    FreelancerPayment: sum of project amounts
  Bonus:
    ZeroBonus:         always zero (interns)
    SalariedBonus:     percentage of base payment
    HourlyBonus:       flat amount above an hours threshold
    PerformanceBonus:  per-type rate applied to base payment
    CombinedBonus:     sum of two strategies

PRECISION:
  All amounts are decimal.Decimal. Config rates arrive as float64 and are
  converted once at the strategy boundary.

SEE ALSO:
  - factory/employee.go: selects strategies per contract type
  - config/config.go: rate lookup semantics (missing key reads as zero)
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/employee"
)

// =============================================================================
// PAYMENT STRATEGIES
// =============================================================================

// SalariedPayment pays the employee's monthly salary, falling back to
// the configured default when no salary was recorded.
type SalariedPayment struct {
	cfg *config.Config
}

func NewSalariedPayment(cfg *config.Config) *SalariedPayment {
	return &SalariedPayment{cfg: cfg}
}

func (s *SalariedPayment) CalculatePayment(e *employee.Employee) decimal.Decimal {
	if e.MonthlySalary.IsZero() {
		return decimal.NewFromFloat(s.cfg.Float("payment.default_monthly_salary"))
	}
	return e.MonthlySalary
}

// HourlyPayment pays rate times hours worked. Unset rate or hours means
// a zero payment.
type HourlyPayment struct{}

func NewHourlyPayment() *HourlyPayment {
	return &HourlyPayment{}
}

func (h *HourlyPayment) CalculatePayment(e *employee.Employee) decimal.Decimal {
	return e.HourlyRate.Mul(decimal.NewFromInt(int64(e.HoursWorked)))
}

// FreelancerPayment pays the sum of the employee's project amounts.
type FreelancerPayment struct{}

func NewFreelancerPayment() *FreelancerPayment {
	return &FreelancerPayment{}
}

func (f *FreelancerPayment) CalculatePayment(e *employee.Employee) decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Projects {
		total = total.Add(p.Amount)
	}
	return total
}

// Compile-time checks that the strategies satisfy the contract.
var (
	_ employee.PaymentStrategy = (*SalariedPayment)(nil)
	_ employee.PaymentStrategy = (*HourlyPayment)(nil)
	_ employee.PaymentStrategy = (*FreelancerPayment)(nil)
)
