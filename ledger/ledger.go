/*
Package ledger records the roster's transaction history.

PURPOSE:
  The ledger is the append-only record of everything that happened to an
  employee: payments, bonuses, vacation days taken, vacation payouts.
  Transactions are created only as the side effect of a successful
  command and are never modified afterward.

INVARIANTS:
  1. APPEND-ONLY: no update, no delete.
  2. IMMUTABLE: once written, a transaction never changes.
  3. INSERTION ORDER: storage order is append order. Sorting by recency
     is a display concern; see SortByRecency.

AMOUNT SEMANTICS:
  Payment and bonus transactions carry currency amounts. Vacation and
  vacation-payout transactions carry day counts. Both fit the same
  decimal Amount field.

SEE ALSO:
  - roster/command.go: the only writers
  - api/handlers.go: history views
*/
package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// TRANSACTION
// =============================================================================

// Type classifies a ledger entry.
type Type string

const (
	TypeVacation       Type = "vacation"
	TypeVacationPayout Type = "vacation_payout"
	TypePayment        Type = "payment"
	TypeBonus          Type = "bonus"
)

// Transaction is an immutable history record. Amount is a currency value
// for payment kinds and a day count for vacation kinds.
type Transaction struct {
	ID           string
	EmployeeName string
	Type         Type
	Amount       decimal.Decimal
	Description  string
	CreatedAt    time.Time
}

// Ledger is the append-only transaction log shared by a roster.
type Ledger interface {
	// Append records a transaction. The ledger fills ID and CreatedAt
	// when the caller leaves them zero.
	Append(ctx context.Context, tx Transaction) error

	// ByEmployee returns all transactions for the exact name, in
	// insertion order.
	ByEmployee(ctx context.Context, name string) ([]Transaction, error)

	// All returns every transaction in insertion order.
	All(ctx context.Context) ([]Transaction, error)
}

// SortByRecency orders transactions newest-first, in place. Display
// helper only; ledger storage stays insertion-ordered.
func SortByRecency(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}

// =============================================================================
// MEMORY LEDGER
// =============================================================================

// Memory is the in-memory Ledger implementation. The mutex keeps appends
// atomic if the roster is ever driven from more than one goroutine; the
// engine itself is synchronous.
type Memory struct {
	mu           sync.RWMutex
	transactions []Transaction
}

// NewMemory creates an empty in-memory ledger.
func NewMemory() *Memory {
	return &Memory{}
}

// Append records a transaction, stamping ID and CreatedAt when unset.
func (m *Memory) Append(_ context.Context, tx Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}
	m.transactions = append(m.transactions, tx)
	return nil
}

// ByEmployee returns a copy of the transactions for the exact name.
func (m *Memory) ByEmployee(_ context.Context, name string) ([]Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []Transaction
	for _, tx := range m.transactions {
		if tx.EmployeeName == name {
			result = append(result, tx)
		}
	}
	return result, nil
}

// All returns a copy of every transaction.
func (m *Memory) All(_ context.Context) ([]Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Transaction, len(m.transactions))
	copy(result, m.transactions)
	return result, nil
}

var _ Ledger = (*Memory)(nil)
