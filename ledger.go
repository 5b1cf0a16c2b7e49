package comptes

import (
	"fmt"

	"github.com/nroussel/comptes/date"
)

// Ledger operations. Each one takes the current snapshot by value,
// validates its arguments before touching anything, and returns a new
// consistent snapshot. On error the original snapshot is returned
// unchanged, so callers can keep whichever value they get back.
//
// The balance invariant re-established by every operation: for every
// account, balance == initial balance + Σ income − Σ expense over the
// transactions currently referencing it.

// AddTransaction validates the record, applies its signed effect to the
// referenced account, and appends it to the transaction list.
//
// A transaction naming an unknown account is rejected with
// ErrAccountNotFound rather than appended with no balance effect.
func (s Snapshot) AddTransaction(tx Transaction) (Snapshot, error) {
	if err := tx.Validate(); err != nil {
		return s, err
	}
	i := s.accountIndex(tx.AccountID)
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrAccountNotFound, tx.AccountID)
	}

	next := s.Clone()
	next.Accounts[i].Balance = next.Accounts[i].Balance.Add(tx.signed())
	next.Transactions = append(next.Transactions, tx)
	return next, nil
}

// Transfer moves amount from one account to another and records the two
// linked transaction halves (debit on the source, credit on the
// destination). Both accounts must exist and differ; the records are only
// synthesized when both balances are adjusted, never one without the other.
func (s Snapshot) Transfer(fromID, toID string, amount Amount, day date.Date) (Snapshot, error) {
	if !amount.IsPositive() {
		return s, fmt.Errorf("%w: transfer amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if fromID == toID {
		return s, fmt.Errorf("%w: %q", ErrSameAccount, fromID)
	}
	from := s.accountIndex(fromID)
	if from < 0 {
		return s, fmt.Errorf("%w: %q", ErrAccountNotFound, fromID)
	}
	to := s.accountIndex(toID)
	if to < 0 {
		return s, fmt.Errorf("%w: %q", ErrAccountNotFound, toID)
	}

	debit, credit := NewTransferPair(fromID, toID, amount, day)

	next := s.Clone()
	next.Accounts[from].Balance = next.Accounts[from].Balance.Sub(amount)
	next.Accounts[to].Balance = next.Accounts[to].Balance.Add(amount)
	next.Transactions = append(next.Transactions, debit, credit)
	return next, nil
}

// EditTransaction replaces the record with updated's id, keeping its
// position in the list. The balance recompute is atomic: the old record's
// effect is reversed on its old account and the new record's effect applied
// to its (possibly different) new account in the same step.
func (s Snapshot) EditTransaction(updated Transaction) (Snapshot, error) {
	old, pos, ok := s.Transaction(updated.ID)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrTransactionNotFound, updated.ID)
	}
	if err := updated.Validate(); err != nil {
		return s, err
	}
	newAcc := s.accountIndex(updated.AccountID)
	if newAcc < 0 {
		return s, fmt.Errorf("%w: %q", ErrAccountNotFound, updated.AccountID)
	}

	next := s.Clone()
	if oldAcc := next.accountIndex(old.AccountID); oldAcc >= 0 {
		next.Accounts[oldAcc].Balance = next.Accounts[oldAcc].Balance.Sub(old.signed())
	}
	next.Accounts[newAcc].Balance = next.Accounts[newAcc].Balance.Add(updated.signed())
	next.Transactions[pos] = updated
	return next, nil
}

// DeleteTransaction removes the record with the given id and reverses its
// balance effect. When the record is one half of a transfer pair, the
// linked half is located by id substitution and both records are removed
// with both effects reversed; a lone half (linked record already gone)
// degrades to a single deletion.
func (s Snapshot) DeleteTransaction(id string) (Snapshot, error) {
	tx, pos, ok := s.Transaction(id)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrTransactionNotFound, id)
	}

	remove := []int{pos}
	next := s.Clone()
	next.reverseEffect(tx)

	if pairID, isTransfer := tx.PairID(); isTransfer {
		if pair, pairPos, found := s.Transaction(pairID); found {
			next.reverseEffect(pair)
			remove = append(remove, pairPos)
		}
	}

	// Delete from the highest index down so positions stay valid.
	if len(remove) == 2 && remove[0] < remove[1] {
		remove[0], remove[1] = remove[1], remove[0]
	}
	for _, i := range remove {
		next.Transactions = append(next.Transactions[:i], next.Transactions[i+1:]...)
	}
	return next, nil
}

// reverseEffect undoes a transaction's balance effect on its account, if
// the account is still present.
func (s *Snapshot) reverseEffect(tx Transaction) {
	if i := s.accountIndex(tx.AccountID); i >= 0 {
		s.Accounts[i].Balance = s.Accounts[i].Balance.Sub(tx.signed())
	}
}

// AddAccount appends a new account after checking the creation rules:
// non-empty id and name, both unique among existing accounts.
func (s Snapshot) AddAccount(a Account) (Snapshot, error) {
	if err := a.Validate(s.Accounts); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Accounts = append(next.Accounts, a)
	return next, nil
}

// Disposition is the chosen handling for transactions orphaned by an
// account deletion.
type Disposition string

const (
	// DispositionDelete removes the orphaned transactions with the account.
	DispositionDelete Disposition = "delete"
	// DispositionTransfer re-points the orphaned transactions to a target
	// account.
	DispositionTransfer Disposition = "transfer"
)

// ParseDisposition parses a string into a Disposition.
func ParseDisposition(s string) (Disposition, error) {
	switch Disposition(s) {
	case DispositionDelete:
		return DispositionDelete, nil
	case DispositionTransfer:
		return DispositionTransfer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDisposition, s)
	}
}

// DeleteAccount removes the account with the given id.
//
// With DispositionDelete every transaction referencing the account is
// removed with it; their effects die with the balance.
//
// With DispositionTransfer those transactions are re-pointed to targetID
// (required, existing, different from id) and the target's balance is
// recomputed so that it again equals its initial balance plus the sum of
// all its transactions, now including the moved ones.
func (s Snapshot) DeleteAccount(id string, disposition Disposition, targetID string) (Snapshot, error) {
	i := s.accountIndex(id)
	if i < 0 {
		return s, fmt.Errorf("%w: %q", ErrAccountNotFound, id)
	}

	switch disposition {
	case DispositionDelete:
		next := s.Clone()
		next.Accounts = append(next.Accounts[:i], next.Accounts[i+1:]...)
		kept := next.Transactions[:0:0]
		for _, tx := range next.Transactions {
			if tx.AccountID != id {
				kept = append(kept, tx)
			}
		}
		next.Transactions = kept
		return next, nil

	case DispositionTransfer:
		if targetID == "" {
			return s, fmt.Errorf("%w: transfer disposition requires a target account", ErrInvalidDisposition)
		}
		if targetID == id {
			return s, fmt.Errorf("%w: target must differ from the deleted account", ErrInvalidDisposition)
		}
		t := s.accountIndex(targetID)
		if t < 0 {
			return s, fmt.Errorf("%w: target %q", ErrAccountNotFound, targetID)
		}

		next := s.Clone()
		// The target's initial balance is whatever its current balance does
		// not explain by transactions; re-pointing changes the sum, so the
		// balance is rebuilt from that fixed point.
		initial := next.Accounts[t].Balance.Sub(next.sumEffects(targetID))
		for j := range next.Transactions {
			if next.Transactions[j].AccountID == id {
				next.Transactions[j].AccountID = targetID
			}
		}
		next.Accounts[t].Balance = initial.Add(next.sumEffects(targetID))
		next.Accounts = append(next.Accounts[:i], next.Accounts[i+1:]...)
		return next, nil

	default:
		return s, fmt.Errorf("%w: %q", ErrInvalidDisposition, string(disposition))
	}
}

// UpdateCategories replaces the category list verbatim. Transactions keep
// referencing removed labels by value; there is no cascade.
func (s Snapshot) UpdateCategories(categories []string) (Snapshot, error) {
	next := s.Clone()
	next.Categories = append([]string(nil), categories...)
	return next, nil
}
