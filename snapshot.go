package comptes

import (
	"fmt"
	"slices"
)

// Snapshot is the entire persisted state: accounts, the user's category
// labels, and the transaction list in insertion order.
//
// Snapshots are replaced wholesale, never mutated in place: every ledger
// operation clones the snapshot it receives and returns the clone. A
// reader holding a Snapshot therefore never observes a partial update.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Categories   []string      `json:"categories"`
	Transactions []Transaction `json:"transactions"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Accounts:     slices.Clone(s.Accounts),
		Categories:   slices.Clone(s.Categories),
		Transactions: slices.Clone(s.Transactions),
	}
}

// Account returns the account with the given id.
func (s Snapshot) Account(id string) (Account, bool) {
	i := s.accountIndex(id)
	if i < 0 {
		return Account{}, false
	}
	return s.Accounts[i], true
}

func (s Snapshot) accountIndex(id string) int {
	return slices.IndexFunc(s.Accounts, func(a Account) bool { return a.ID == id })
}

// Transaction returns the transaction with the given id and its position.
func (s Snapshot) Transaction(id string) (Transaction, int, bool) {
	i := s.transactionIndex(id)
	if i < 0 {
		return Transaction{}, -1, false
	}
	return s.Transactions[i], i, true
}

func (s Snapshot) transactionIndex(id string) int {
	return slices.IndexFunc(s.Transactions, func(t Transaction) bool { return t.ID == id })
}

// AccountTransactions returns the transactions referencing the account, in
// snapshot order.
func (s Snapshot) AccountTransactions(accountID string) []Transaction {
	var txs []Transaction
	for _, t := range s.Transactions {
		if t.AccountID == accountID {
			txs = append(txs, t)
		}
	}
	return txs
}

// sumEffects totals the signed effect of every transaction referencing the
// account. An account's balance is always its initial balance plus this sum.
func (s Snapshot) sumEffects(accountID string) Amount {
	var sum Amount
	for _, t := range s.Transactions {
		if t.AccountID == accountID {
			sum = sum.Add(t.signed())
		}
	}
	return sum
}

// Check verifies the balance invariant for every account against a map of
// known initial balances and returns the first discrepancy found. An
// account absent from initials is assumed to have started at zero, so its
// whole balance must be explained by its transactions.
func (s Snapshot) Check(initials map[string]Amount) error {
	for _, a := range s.Accounts {
		want := initials[a.ID].Add(s.sumEffects(a.ID))
		if !a.Balance.Equal(want) {
			return fmt.Errorf("account %q balance %s does not match initial+transactions %s", a.ID, a.Balance, want)
		}
	}
	return nil
}

// Equal reports structural equality of two snapshots: same accounts,
// categories and transactions in the same order.
func (s Snapshot) Equal(o Snapshot) bool {
	if !slices.EqualFunc(s.Accounts, o.Accounts, Account.Equal) {
		return false
	}
	if !slices.Equal(s.Categories, o.Categories) {
		return false
	}
	return slices.EqualFunc(s.Transactions, o.Transactions, Transaction.Equal)
}
