package vacation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/vacation"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func withBalance(role employee.Role, days int) *employee.Employee {
	return &employee.Employee{
		Name:         "Ada",
		Role:         role,
		Type:         employee.TypeSalaried,
		VacationDays: days,
	}
}

// =============================================================================
// INTERN POLICY TESTS
// =============================================================================

func TestInternPolicy_RejectsEverything(t *testing.T) {
	// GIVEN: An intern with a full balance
	// WHEN: Asking for time off and for a payout
	// THEN: Both are refused with the fixed message, balance untouched

	policy := vacation.NewInternPolicy()
	e := withBalance(employee.RoleIntern, 25)

	assert.False(t, policy.CanTakeVacation(e, 1))
	assert.False(t, policy.CanTakePayout(e, 1))

	outcome := policy.ProcessVacation(e, false, 0)
	assert.False(t, outcome.Granted)
	assert.Equal(t, vacation.InternRejection, outcome.Message)
	assert.Equal(t, 25, e.VacationDays)

	outcome = policy.ProcessVacation(e, true, 0)
	assert.False(t, outcome.Granted)
	assert.Equal(t, vacation.InternRejection, outcome.Message)
	assert.Equal(t, 25, e.VacationDays)
}

func TestInternPolicy_RepeatedRequests_NeverMutate(t *testing.T) {
	// GIVEN: An intern
	// WHEN: Requesting repeatedly
	// THEN: The outcome never changes and the balance never moves

	policy := vacation.NewInternPolicy()
	e := withBalance(employee.RoleIntern, 25)

	for i := 0; i < 5; i++ {
		outcome := policy.ProcessVacation(e, false, 0)
		assert.False(t, outcome.Granted)
	}
	assert.Equal(t, 25, e.VacationDays)
}

// =============================================================================
// MANAGER POLICY TESTS
// =============================================================================

func TestManagerPolicy_FullCycle(t *testing.T) {
	// GIVEN: A manager with a 25 day balance
	// WHEN: Taking one day off, then a 10 day payout, then a payout the
	//       cap refuses
	// THEN: 25 -> 24 -> 14 -> 14

	policy := vacation.NewManagerPolicy(config.Default())
	e := withBalance(employee.RoleManager, 25)

	outcome := policy.ProcessVacation(e, false, 0)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 1, outcome.DaysApplied)
	assert.Equal(t, 24, e.VacationDays)
	assert.Contains(t, outcome.Message, "24")

	outcome = policy.ProcessVacation(e, true, 10)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 10, outcome.DaysApplied)
	assert.Equal(t, 14, e.VacationDays)

	// 11 exceeds the manager payout cap: refused, balance unchanged.
	outcome = policy.ProcessVacation(e, true, 11)
	assert.False(t, outcome.Granted)
	assert.Equal(t, 14, e.VacationDays)
}

func TestManagerPolicy_PayoutDefaultsToConfiguredDays(t *testing.T) {
	// GIVEN: A manager requesting a payout without a day count
	// WHEN: Processing
	// THEN: The configured payout day count is applied

	policy := vacation.NewManagerPolicy(config.Default())
	e := withBalance(employee.RoleManager, 25)

	outcome := policy.ProcessVacation(e, true, 0)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 5, outcome.DaysApplied)
	assert.Equal(t, 20, e.VacationDays)
}

func TestManagerPolicy_TimeOffAlwaysOneDay(t *testing.T) {
	// GIVEN: A manager asking for several days at once
	// WHEN: Processing time off
	// THEN: Exactly one day is deducted regardless of the request

	policy := vacation.NewManagerPolicy(config.Default())
	e := withBalance(employee.RoleManager, 25)

	outcome := policy.ProcessVacation(e, false, 7)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 1, outcome.DaysApplied)
	assert.Equal(t, 24, e.VacationDays)
}

func TestManagerPolicy_ExhaustedBalance_Rejected(t *testing.T) {
	policy := vacation.NewManagerPolicy(config.Default())
	e := withBalance(employee.RoleManager, 0)

	outcome := policy.ProcessVacation(e, false, 0)
	assert.False(t, outcome.Granted)
	assert.Equal(t, "Not enough vacation days available.", outcome.Message)
	assert.Equal(t, 0, e.VacationDays)
}

func TestManagerPolicy_PayoutBeyondBalance_Rejected(t *testing.T) {
	// GIVEN: A manager with 3 days left
	// WHEN: Requesting a 5 day payout
	// THEN: Refused with the available balance in the message

	policy := vacation.NewManagerPolicy(config.Default())
	e := withBalance(employee.RoleManager, 3)

	outcome := policy.ProcessVacation(e, true, 5)
	assert.False(t, outcome.Granted)
	assert.Contains(t, outcome.Message, "Available balance: 3 days")
	assert.Equal(t, 3, e.VacationDays)
}

// =============================================================================
// VICE PRESIDENT POLICY TESTS
// =============================================================================

func TestVicePresidentPolicy_RequestSizeCap(t *testing.T) {
	// GIVEN: A vice president with a healthy balance
	// WHEN: Checking a 6 day request against the 5 day cap
	// THEN: The capability check refuses it and nothing is deducted

	policy := vacation.NewVicePresidentPolicy(config.Default())
	e := withBalance(employee.RoleVicePresident, 25)

	assert.False(t, policy.CanTakeVacation(e, 6))
	assert.True(t, policy.CanTakeVacation(e, 5))
	assert.Equal(t, 25, e.VacationDays)
}

func TestVicePresidentPolicy_CapIgnoresBalance(t *testing.T) {
	// GIVEN: A vice president with no balance at all
	// WHEN: Checking a request within the cap
	// THEN: The capability check passes; the balance guard lives in
	//       processing, not here

	policy := vacation.NewVicePresidentPolicy(config.Default())
	e := withBalance(employee.RoleVicePresident, 0)

	assert.True(t, policy.CanTakeVacation(e, 3))
}

func TestVicePresidentPolicy_TimeOff_OneDay(t *testing.T) {
	policy := vacation.NewVicePresidentPolicy(config.Default())
	e := withBalance(employee.RoleVicePresident, 10)

	outcome := policy.ProcessVacation(e, false, 0)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 1, outcome.DaysApplied)
	assert.Equal(t, 9, e.VacationDays)
}

func TestVicePresidentPolicy_EmptyBalance_NeverGoesNegative(t *testing.T) {
	// GIVEN: A vice president with zero balance
	// WHEN: Processing a time-off request
	// THEN: The deduction is refused; the balance stays at zero

	policy := vacation.NewVicePresidentPolicy(config.Default())
	e := withBalance(employee.RoleVicePresident, 0)

	outcome := policy.ProcessVacation(e, false, 0)
	assert.False(t, outcome.Granted)
	assert.Equal(t, "No vacation balance available.", outcome.Message)
	assert.Equal(t, 0, e.VacationDays)
}

func TestVicePresidentPolicy_PayoutBoundedByBalance(t *testing.T) {
	// GIVEN: A vice president with 4 days
	// WHEN: Requesting payouts of 4 and then 5 days
	// THEN: The first drains the balance; the second is refused

	policy := vacation.NewVicePresidentPolicy(config.Default())
	e := withBalance(employee.RoleVicePresident, 4)

	outcome := policy.ProcessVacation(e, true, 4)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 0, e.VacationDays)

	outcome = policy.ProcessVacation(e, true, 5)
	assert.False(t, outcome.Granted)
	assert.Equal(t, 0, e.VacationDays)
}

// =============================================================================
// DEVELOPER POLICY TESTS
// =============================================================================

func TestDeveloperPolicy_HonorsExplicitDayCount(t *testing.T) {
	// GIVEN: A developer with 25 days
	// WHEN: Requesting 5 days of time off
	// THEN: All 5 days are deducted in one grant

	policy := vacation.NewDeveloperPolicy(config.Default())
	e := withBalance(employee.RoleDeveloper, 25)

	outcome := policy.ProcessVacation(e, false, 5)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 5, outcome.DaysApplied)
	assert.Equal(t, 20, e.VacationDays)
	assert.Equal(t, fmt.Sprintf("Vacation of %d days processed. Remaining balance: %d days.", 5, 20), outcome.Message)
}

func TestDeveloperPolicy_DefaultsToOneDay(t *testing.T) {
	policy := vacation.NewDeveloperPolicy(config.Default())
	e := withBalance(employee.RoleDeveloper, 25)

	outcome := policy.ProcessVacation(e, false, 0)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 1, outcome.DaysApplied)
	assert.Equal(t, 24, e.VacationDays)
}

func TestDeveloperPolicy_PerRequestCap(t *testing.T) {
	// GIVEN: An 11 day request against the 10 day per-request cap
	// WHEN: Processing
	// THEN: Refused, balance unchanged

	policy := vacation.NewDeveloperPolicy(config.Default())
	e := withBalance(employee.RoleDeveloper, 25)

	outcome := policy.ProcessVacation(e, false, 11)
	assert.False(t, outcome.Granted)
	assert.Equal(t, 25, e.VacationDays)
}

func TestDeveloperPolicy_BalanceBound(t *testing.T) {
	// GIVEN: A developer with 3 days left
	// WHEN: Requesting 4 days
	// THEN: Refused; requesting 3 succeeds and empties the balance

	policy := vacation.NewDeveloperPolicy(config.Default())
	e := withBalance(employee.RoleDeveloper, 3)

	outcome := policy.ProcessVacation(e, false, 4)
	assert.False(t, outcome.Granted)
	assert.Equal(t, 3, e.VacationDays)

	outcome = policy.ProcessVacation(e, false, 3)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 0, e.VacationDays)
}

func TestDeveloperPolicy_PayoutCap(t *testing.T) {
	policy := vacation.NewDeveloperPolicy(config.Default())
	e := withBalance(employee.RoleDeveloper, 25)

	outcome := policy.ProcessVacation(e, true, 11)
	assert.False(t, outcome.Granted)
	assert.Equal(t, 25, e.VacationDays)

	outcome = policy.ProcessVacation(e, true, 10)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 15, e.VacationDays)
}

// =============================================================================
// CUSTOM LIMITS
// =============================================================================

func TestPolicies_ReadLimitsFromConfig(t *testing.T) {
	// GIVEN: A config with tighter caps than the defaults
	// WHEN: Running the manager payout and vice president request checks
	// THEN: The custom caps are enforced

	cfg := config.FromMap(map[string]any{
		"vacation": map[string]any{
			"payout_days": 2,
			"policies": map[string]any{
				"manager":        map[string]any{"max_payout": 3},
				"vice_president": map[string]any{"max_per_request": 1},
			},
		},
	})

	manager := vacation.NewManagerPolicy(cfg)
	e := withBalance(employee.RoleManager, 25)

	outcome := manager.ProcessVacation(e, true, 4)
	assert.False(t, outcome.Granted, "4 exceeds the custom payout cap of 3")

	outcome = manager.ProcessVacation(e, true, 0)
	assert.True(t, outcome.Granted)
	assert.Equal(t, 2, outcome.DaysApplied, "payout default follows the custom config")

	vp := vacation.NewVicePresidentPolicy(cfg)
	assert.False(t, vp.CanTakeVacation(withBalance(employee.RoleVicePresident, 25), 2))
}
