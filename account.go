package comptes

import (
	"fmt"
	"strings"
)

// Account is a money holder. Its balance is a running total: initial
// balance at creation plus the signed effect of every transaction that
// references it. Users never edit a balance directly.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Amount `json:"balance"`
}

// NewAccount builds an account from raw form input. The id and name are
// trimmed and the balance string parsed; an unparseable balance is an
// ErrInvalidAmount.
func NewAccount(id, name, balance string) (Account, error) {
	amount, err := ParseAmount(strings.TrimSpace(balance))
	if err != nil {
		return Account{}, fmt.Errorf("%w: initial balance %q is not a number", ErrInvalidAmount, balance)
	}
	return Account{
		ID:      strings.TrimSpace(id),
		Name:    strings.TrimSpace(name),
		Balance: amount,
	}, nil
}

// Validate checks the account against the creation rules: non-empty id and
// name, and no other account with the same id or name (exact match).
func (a Account) Validate(existing []Account) error {
	if a.ID == "" {
		return fmt.Errorf("%w: account id is required", ErrInvalidAccount)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: account name is required", ErrInvalidAccount)
	}
	for _, other := range existing {
		if other.ID == a.ID {
			return fmt.Errorf("%w: %q", ErrDuplicateAccountID, a.ID)
		}
		if other.Name == a.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateAccountName, a.Name)
		}
	}
	return nil
}

// Equal reports whether two accounts have the same id, name and balance.
func (a Account) Equal(b Account) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Balance.Equal(b.Balance)
}
