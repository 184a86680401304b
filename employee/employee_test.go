package employee_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/employee"
)

// =============================================================================
// TEST DOUBLES
// =============================================================================

type fixedPayment struct{ amount decimal.Decimal }

func (f fixedPayment) CalculatePayment(_ *employee.Employee) decimal.Decimal { return f.amount }

type fixedBonus struct{ amount decimal.Decimal }

func (f fixedBonus) CalculateBonus(_ *employee.Employee, _ decimal.Decimal) decimal.Decimal {
	return f.amount
}

type grantAll struct{}

func (grantAll) CanTakeVacation(_ *employee.Employee, _ int) bool { return true }
func (grantAll) CanTakePayout(_ *employee.Employee, _ int) bool   { return true }
func (grantAll) ProcessVacation(e *employee.Employee, _ bool, days int) employee.VacationOutcome {
	e.VacationDays -= days
	return employee.VacationOutcome{Granted: true, Message: "ok", DaysApplied: days}
}

// =============================================================================
// WIRING TESTS
// =============================================================================

func TestWire_SecondCallFails(t *testing.T) {
	// GIVEN: An employee wired once
	// WHEN: Wiring again
	// THEN: ErrAlreadyWired; the original collaborators stay assigned

	e := &employee.Employee{Name: "Ada"}

	first := fixedPayment{decimal.NewFromInt(100)}
	require.NoError(t, e.Wire(first, fixedBonus{decimal.Zero}, grantAll{}))

	err := e.Wire(fixedPayment{decimal.NewFromInt(999)}, fixedBonus{decimal.Zero}, grantAll{})
	assert.ErrorIs(t, err, employee.ErrAlreadyWired)
	assert.Equal(t, first, e.Payment())
}

// =============================================================================
// DELEGATION TESTS
// =============================================================================

func TestCalculateTotalPayment_AddsBaseAndBonus(t *testing.T) {
	// GIVEN: A payment of 6000 and a bonus of 900
	// WHEN: Calculating the total
	// THEN: Exactly 6900

	e := &employee.Employee{Name: "Ada"}
	require.NoError(t, e.Wire(
		fixedPayment{decimal.NewFromInt(6000)},
		fixedBonus{decimal.NewFromInt(900)},
		grantAll{},
	))

	assert.True(t, decimal.NewFromInt(6900).Equal(e.CalculateTotalPayment()))
}

func TestRequestVacation_DelegatesToPolicy(t *testing.T) {
	e := &employee.Employee{Name: "Ada", VacationDays: 10}
	require.NoError(t, e.Wire(fixedPayment{decimal.Zero}, fixedBonus{decimal.Zero}, grantAll{}))

	outcome := e.RequestVacation(false, 3)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 7, e.VacationDays)
}

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseRole(t *testing.T) {
	role, err := employee.ParseRole("vice_president")
	require.NoError(t, err)
	assert.Equal(t, employee.RoleVicePresident, role)

	_, err = employee.ParseRole("ceo")
	assert.Error(t, err)
}

func TestParseType(t *testing.T) {
	typ, err := employee.ParseType("freelancer")
	require.NoError(t, err)
	assert.Equal(t, employee.TypeFreelancer, typ)

	_, err = employee.ParseType("contractor")
	assert.Error(t, err)
}
