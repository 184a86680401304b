/*
Package employee defines the employee aggregate and the contracts its
collaborators implement.

PURPOSE:
  An Employee carries identity (name), a role, a contract type, a
  vacation balance, and the type-specific compensation fields. What it
  does NOT carry is behavior: pay, bonus and vacation rules live behind
  the PaymentStrategy, BonusStrategy and VacationPolicy contracts, wired
  once at construction by the factory package.

WHY THE CONTRACTS LIVE HERE:
  The strategy implementations (payroll/, vacation/) need the Employee
  fields, and the Employee needs the strategies. Defining the interfaces
  on the consumer side breaks the cycle and keeps the aggregate free of
  rule knowledge.

INVARIANT:
  VacationDays never goes negative. Only vacation policies mutate it,
  and only after their eligibility check passes; a request beyond the
  available balance is rejected, never clamped.

SEE ALSO:
  - payroll/: PaymentStrategy and BonusStrategy implementations
  - vacation/: VacationPolicy implementations
  - factory/: the only construction path for wired employees
*/
package employee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ROLE AND CONTRACT TYPE
// =============================================================================

// Role identifies an employee's position and selects the vacation policy.
type Role string

const (
	RoleIntern        Role = "intern"
	RoleManager       Role = "manager"
	RoleVicePresident Role = "vice_president"
	RoleDeveloper     Role = "developer"
)

// ParseRole validates a role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleIntern, RoleManager, RoleVicePresident, RoleDeveloper:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown employee role %q", s)
}

// Type identifies the compensation contract and selects the payment and
// bonus strategies.
type Type string

const (
	TypeSalaried   Type = "salaried"
	TypeHourly     Type = "hourly"
	TypeFreelancer Type = "freelancer"
)

// ParseType validates a contract type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeSalaried, TypeHourly, TypeFreelancer:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown employee type %q", s)
}

// =============================================================================
// PROJECT - Freelancer engagement
// =============================================================================

// Project is a single freelancer engagement with its billed amount.
type Project struct {
	Name   string
	Amount decimal.Decimal
}

// NewProject builds a project from a float amount.
func NewProject(name string, amount float64) Project {
	return Project{Name: name, Amount: decimal.NewFromFloat(amount)}
}
