package roster

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/warp/payroll-engine/employee"
	"github.com/warp/payroll-engine/ledger"
)

// Company is the employee roster. It owns the list, runs the commands,
// and shares one ledger across every operation. Lookups scan the list in
// insertion order; the roster is small enough that an index would only
// add bookkeeping.
//
// SYNCHRONIZATION:
//   The roster is reachable from concurrent HTTP handlers. The RWMutex
//   guards the employee list; commands against the same employee are
//   serialized by a per-employee mutex, so the policy check, the balance
//   deduction and the ledger append happen as one unit. Balance reads
//   from outside a command go through VacationBalance.
type Company struct {
	mu        sync.RWMutex
	employees []*employee.Employee
	locks     map[*employee.Employee]*sync.Mutex

	ledger ledger.Ledger
	audit  *log.Logger
}

// NewCompany creates an empty roster over the given ledger.
func NewCompany(l ledger.Ledger) *Company {
	return &Company{
		ledger: l,
		locks:  make(map[*employee.Employee]*sync.Mutex),
	}
}

// SetAuditLogger enables audit logging: every command the company runs
// is wrapped in a LoggedCommand writing to logger. Nil disables it.
func (c *Company) SetAuditLogger(logger *log.Logger) {
	c.audit = logger
}

// lockFor returns the mutex serializing commands for one employee,
// creating it for employees that bypassed Add.
func (c *Company) lockFor(e *employee.Employee) *sync.Mutex {
	c.mu.RLock()
	l := c.locks[e]
	c.mu.RUnlock()
	if l != nil {
		return l
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[e] == nil {
		c.locks[e] = &sync.Mutex{}
	}
	return c.locks[e]
}

func (c *Company) run(ctx context.Context, e *employee.Employee, cmd Command) (string, error) {
	if c.audit != nil {
		cmd = NewLoggedCommand(cmd, c.audit)
	}

	l := c.lockFor(e)
	l.Lock()
	defer l.Unlock()
	return cmd.Execute(ctx)
}

// Add appends an employee to the roster.
func (c *Company) Add(e *employee.Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.employees = append(c.employees, e)
	if c.locks[e] == nil {
		c.locks[e] = &sync.Mutex{}
	}
}

// Employees returns a copy of the roster in insertion order.
func (c *Company) Employees() []*employee.Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*employee.Employee, len(c.employees))
	copy(result, c.employees)
	return result
}

// FindByRole returns every employee with the given role, in insertion
// order.
func (c *Company) FindByRole(role employee.Role) []*employee.Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*employee.Employee
	for _, e := range c.employees {
		if e.Role == role {
			result = append(result, e)
		}
	}
	return result
}

// FindByName returns every employee with the exact name. Names are not
// unique; callers decide how to disambiguate.
func (c *Company) FindByName(name string) []*employee.Employee {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*employee.Employee
	for _, e := range c.employees {
		if e.Name == name {
			result = append(result, e)
		}
	}
	return result
}

// VacationBalance reads an employee's balance without racing a command
// that may be deducting it.
func (c *Company) VacationBalance(e *employee.Employee) int {
	l := c.lockFor(e)
	l.Lock()
	defer l.Unlock()
	return e.VacationDays
}

// Pay runs a pay command for one employee.
func (c *Company) Pay(ctx context.Context, e *employee.Employee) (string, error) {
	return c.run(ctx, e, &PayCommand{Employee: e, Ledger: c.ledger})
}

// PayAll pays every employee in roster order and returns the summaries.
// The first failure stops the run; everything already paid stays paid.
func (c *Company) PayAll(ctx context.Context) ([]string, error) {
	roster := c.Employees()
	results := make([]string, 0, len(roster))
	for _, e := range roster {
		result, err := c.Pay(ctx, e)
		if err != nil {
			return results, fmt.Errorf("payroll run stopped at %s: %w", e.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// ProcessVacation runs a vacation command for one employee and returns
// the policy outcome.
func (c *Company) ProcessVacation(ctx context.Context, e *employee.Employee, payout bool, days int) (employee.VacationOutcome, error) {
	cmd := &VacationCommand{Employee: e, Ledger: c.ledger, Payout: payout, Days: days}
	if _, err := c.run(ctx, e, cmd); err != nil {
		return employee.VacationOutcome{}, err
	}
	return cmd.Outcome, nil
}

// History returns an employee's transactions in insertion order.
func (c *Company) History(ctx context.Context, name string) ([]ledger.Transaction, error) {
	return c.ledger.ByEmployee(ctx, name)
}

// HistoryByRecency returns an employee's transactions newest-first.
func (c *Company) HistoryByRecency(ctx context.Context, name string) ([]ledger.Transaction, error) {
	txs, err := c.ledger.ByEmployee(ctx, name)
	if err != nil {
		return nil, err
	}
	ledger.SortByRecency(txs)
	return txs, nil
}
