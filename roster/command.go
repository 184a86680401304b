/*
Package roster orchestrates employees, commands and the shared ledger.

PURPOSE:
  The Company holds the employee list; commands perform the operations
  that matter (pay, vacation) and record their side effects in the
  ledger. A command either succeeds and appends its transactions, or
  fails and appends nothing.

COMMANDS:
  PayCommand:      base + bonus payment, one payment transaction and an
                   optional bonus transaction
  VacationCommand: runs the employee's vacation policy, records a
                   transaction only when the request is granted
  LoggedCommand:   wraps any command with an audit log line

SEE ALSO:
  - ledger/: transaction record and append-only log
  - employee/: the aggregate the commands act on
*/
package roster

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/ledger"
)

// ErrInvalidDayCount rejects negative day counts before any policy runs.
var ErrInvalidDayCount = errors.New("vacation day count cannot be negative")

// Command performs one roster operation and returns a display summary.
type Command interface {
	Execute(ctx context.Context) (string, error)
}

// =============================================================================
// PAY COMMAND
// =============================================================================

// PayCommand pays an employee their total compensation for the period
// and records the payment, plus a separate bonus transaction when the
// bonus is positive.
type PayCommand struct {
	Employee *employee.Employee
	Ledger   ledger.Ledger
}

func (c *PayCommand) Execute(ctx context.Context) (string, error) {
	base := c.Employee.CalculatePayment()
	bonus := c.Employee.CalculateBonus()
	total := base.Add(bonus)

	err := c.Ledger.Append(ctx, ledger.Transaction{
		EmployeeName: c.Employee.Name,
		Type:         ledger.TypePayment,
		Amount:       total,
		Description:  fmt.Sprintf("Payment of %s to %s", total.StringFixed(2), c.Employee.Name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to record payment for %s: %w", c.Employee.Name, err)
	}

	if bonus.IsPositive() {
		err = c.Ledger.Append(ctx, ledger.Transaction{
			EmployeeName: c.Employee.Name,
			Type:         ledger.TypeBonus,
			Amount:       bonus,
			Description:  fmt.Sprintf("Bonus of %s to %s", bonus.StringFixed(2), c.Employee.Name),
		})
		if err != nil {
			return "", fmt.Errorf("failed to record bonus for %s: %w", c.Employee.Name, err)
		}
	}

	return fmt.Sprintf("Paid %s to %s (base %s, bonus %s)",
		total.StringFixed(2), c.Employee.Name, base.StringFixed(2), bonus.StringFixed(2)), nil
}

// =============================================================================
// VACATION COMMAND
// =============================================================================

// VacationCommand runs the employee's vacation policy. A granted request
// records one transaction whose amount is the day count actually applied;
// a rejected request records nothing. After Execute, Outcome holds the
// policy decision either way.
type VacationCommand struct {
	Employee *employee.Employee
	Ledger   ledger.Ledger
	Payout   bool
	Days     int

	Outcome employee.VacationOutcome
}

func (c *VacationCommand) Execute(ctx context.Context) (string, error) {
	if c.Days < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDayCount, c.Days)
	}

	c.Outcome = c.Employee.RequestVacation(c.Payout, c.Days)
	if !c.Outcome.Granted {
		return c.Outcome.Message, nil
	}

	txType := ledger.TypeVacation
	if c.Payout {
		txType = ledger.TypeVacationPayout
	}
	err := c.Ledger.Append(ctx, ledger.Transaction{
		EmployeeName: c.Employee.Name,
		Type:         txType,
		Amount:       decimal.NewFromInt(int64(c.Outcome.DaysApplied)),
		Description:  c.Outcome.Message,
	})
	if err != nil {
		return "", fmt.Errorf("failed to record vacation for %s: %w", c.Employee.Name, err)
	}

	return c.Outcome.Message, nil
}

// =============================================================================
// LOGGED COMMAND
// =============================================================================

// LoggedCommand decorates a command with an audit log line. The wrapped
// result passes through unchanged.
type LoggedCommand struct {
	Wrapped Command
	Logger  *log.Logger

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewLoggedCommand wraps a command with the given audit logger.
func NewLoggedCommand(wrapped Command, logger *log.Logger) *LoggedCommand {
	return &LoggedCommand{Wrapped: wrapped, Logger: logger, now: time.Now}
}

func (c *LoggedCommand) Execute(ctx context.Context) (string, error) {
	result, err := c.Wrapped.Execute(ctx)
	if err != nil {
		return "", err
	}
	c.Logger.Printf("[AUDIT %s] %s", c.now().UTC().Format(time.RFC3339), result)
	return result, nil
}

var (
	_ Command = (*PayCommand)(nil)
	_ Command = (*VacationCommand)(nil)
	_ Command = (*LoggedCommand)(nil)
)
