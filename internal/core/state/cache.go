// Package state owns the in-memory view of each workplace's transactions and
// bank accounts.
//
// Collections are replaced whole (copy-on-write) and readers always get a
// copy, so nobody observes a half-updated collection. Nothing serialises two
// writers: the last replacement wins.
package state

import (
	"sync"
	"sync/atomic"

	"github.com/SscSPs/lending_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Cache holds one Workplace per tenant.
type Cache struct {
	mu         sync.Mutex // guards the map only, never the collections
	workplaces map[string]*Workplace
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{workplaces: make(map[string]*Workplace)}
}

// Workplace returns the state for workplaceID, creating an unloaded one if needed.
func (c *Cache) Workplace(workplaceID string) *Workplace {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.workplaces[workplaceID]
	if !ok {
		w = newWorkplace(workplaceID)
		c.workplaces[workplaceID] = w
	}
	return w
}

// Evict drops a workplace so the next access reloads it from the store.
func (c *Cache) Evict(workplaceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.workplaces, workplaceID)
}

// Workplace is the cached state of one tenant.
type Workplace struct {
	id           string
	loaded       atomic.Bool
	transactions atomic.Pointer[[]domain.Transaction]
	bankAccounts atomic.Pointer[[]domain.BankAccount]
}

func newWorkplace(id string) *Workplace {
	w := &Workplace{id: id}
	w.transactions.Store(&[]domain.Transaction{})
	w.bankAccounts.Store(&[]domain.BankAccount{})
	return w
}

// ID returns the workplace ID.
func (w *Workplace) ID() string { return w.id }

// IsLoaded reports whether the workplace was hydrated from the store.
func (w *Workplace) IsLoaded() bool { return w.loaded.Load() }

// Load replaces both collections with data read from the store and marks the workplace loaded.
func (w *Workplace) Load(transactions []domain.Transaction, accounts []domain.BankAccount) {
	w.ReplaceTransactions(transactions)
	w.ReplaceBankAccounts(accounts)
	w.loaded.Store(true)
}

// --- Transactions ---

// Transactions returns a snapshot copy of every cached transaction.
func (w *Workplace) Transactions() []domain.Transaction {
	current := *w.transactions.Load()
	out := make([]domain.Transaction, len(current))
	copy(out, current)
	return out
}

// FindTransaction returns a copy of the transaction with the given ID.
func (w *Workplace) FindTransaction(transactionID string) (domain.Transaction, bool) {
	for _, t := range *w.transactions.Load() {
		if t.TransactionID == transactionID {
			return t, true
		}
	}
	return domain.Transaction{}, false
}

// ReplaceTransactions swaps in a copy of transactions.
func (w *Workplace) ReplaceTransactions(transactions []domain.Transaction) {
	next := make([]domain.Transaction, len(transactions))
	copy(next, transactions)
	w.transactions.Store(&next)
}

// PutTransaction inserts txn or replaces the entry with the same ID.
func (w *Workplace) PutTransaction(txn domain.Transaction) {
	w.MergeTransactions([]domain.Transaction{txn})
}

// MergeTransactions replaces entries matching by ID and appends the rest.
func (w *Workplace) MergeTransactions(updated []domain.Transaction) {
	if len(updated) == 0 {
		return
	}
	byID := make(map[string]domain.Transaction, len(updated))
	order := make([]string, 0, len(updated))
	for _, t := range updated {
		if _, dup := byID[t.TransactionID]; !dup {
			order = append(order, t.TransactionID)
		}
		byID[t.TransactionID] = t
	}

	current := *w.transactions.Load()
	next := make([]domain.Transaction, 0, len(current)+len(updated))
	for _, t := range current {
		if u, ok := byID[t.TransactionID]; ok {
			next = append(next, u)
			delete(byID, t.TransactionID)
			continue
		}
		next = append(next, t)
	}
	for _, id := range order {
		if t, ok := byID[id]; ok {
			next = append(next, t)
		}
	}
	w.transactions.Store(&next)
}

// RemoveTransaction drops the transaction with the given ID and returns it.
func (w *Workplace) RemoveTransaction(transactionID string) (domain.Transaction, bool) {
	current := *w.transactions.Load()
	next := make([]domain.Transaction, 0, len(current))
	var removed domain.Transaction
	found := false
	for _, t := range current {
		if t.TransactionID == transactionID {
			removed = t
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return domain.Transaction{}, false
	}
	w.transactions.Store(&next)
	return removed, true
}

// --- Bank accounts ---

// BankAccounts returns a snapshot copy of every cached bank account.
func (w *Workplace) BankAccounts() []domain.BankAccount {
	current := *w.bankAccounts.Load()
	out := make([]domain.BankAccount, len(current))
	copy(out, current)
	return out
}

// FindBankAccount returns a copy of the account with the given ID.
func (w *Workplace) FindBankAccount(bankAccountID string) (domain.BankAccount, bool) {
	for _, a := range *w.bankAccounts.Load() {
		if a.BankAccountID == bankAccountID {
			return a, true
		}
	}
	return domain.BankAccount{}, false
}

// ReplaceBankAccounts swaps in a copy of accounts.
func (w *Workplace) ReplaceBankAccounts(accounts []domain.BankAccount) {
	next := make([]domain.BankAccount, len(accounts))
	copy(next, accounts)
	w.bankAccounts.Store(&next)
}

// SetBankBalance replaces the account collection with one where bankAccountID
// has the given balance. It returns false when the account is not cached.
func (w *Workplace) SetBankBalance(bankAccountID string, balance decimal.Decimal) bool {
	current := *w.bankAccounts.Load()
	next := make([]domain.BankAccount, len(current))
	copy(next, current)
	for i := range next {
		if next[i].BankAccountID == bankAccountID {
			next[i].Balance = balance
			w.bankAccounts.Store(&next)
			return true
		}
	}
	return false
}
