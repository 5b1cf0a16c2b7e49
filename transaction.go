package comptes

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nroussel/comptes/date"
)

// TxType distinguishes the two signs a transaction can have on a balance.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, s)
	}
}

// TransferCategory marks the two synthesized halves of a money transfer.
// The value is part of the historical file format and must not change.
const TransferCategory = "Virement"

const (
	transferDebitPrefix  = "transfer_debit_"
	transferCreditPrefix = "transfer_credit_"
)

// Transaction is a single signed effect on one account. The sign is
// derived from Type; Amount is always a non-negative magnitude.
type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Type        TxType    `json:"type"`
	Amount      Amount    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        date.Date `json:"date"`
}

// NewTransaction builds a manual transaction with a fresh random id.
func NewTransaction(accountID string, typ TxType, amount Amount, category, description string, day date.Date) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		Type:        typ,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        day,
	}
}

// Validate checks the record's own fields. Referential checks against the
// snapshot belong to the ledger operations.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction id is required", ErrInvalidTransaction)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: transaction account id is required", ErrInvalidTransaction)
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, string(t.Type))
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative, got %s", ErrInvalidAmount, t.Amount)
	}
	return nil
}

// signed returns the effect of the transaction on its account's balance.
func (t Transaction) signed() Amount {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.AccountID == o.AccountID &&
		t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Description == o.Description &&
		t.Date == o.Date
}

// NewTransferPair synthesizes the two linked records of a transfer: a debit
// on the source account and a credit on the destination. The two ids share
// a correlation id and differ only by the debit/credit marker, so either
// half can locate the other without an index.
func NewTransferPair(fromID, toID string, amount Amount, day date.Date) (debit, credit Transaction) {
	correlation := uuid.NewString()
	debit = Transaction{
		ID:          transferDebitPrefix + correlation,
		AccountID:   fromID,
		Type:        Expense,
		Amount:      amount,
		Category:    TransferCategory,
		Description: fmt.Sprintf("Virement vers %s", toID),
		Date:        day,
	}
	credit = Transaction{
		ID:          transferCreditPrefix + correlation,
		AccountID:   toID,
		Type:        Income,
		Amount:      amount,
		Category:    TransferCategory,
		Description: fmt.Sprintf("Virement depuis %s", fromID),
		Date:        day,
	}
	return debit, credit
}

// IsTransferHalf reports whether the transaction is one half of a transfer
// pair: the transfer category plus the id naming convention.
func (t Transaction) IsTransferHalf() bool {
	if t.Category != TransferCategory {
		return false
	}
	return strings.HasPrefix(t.ID, transferDebitPrefix) || strings.HasPrefix(t.ID, transferCreditPrefix)
}

// PairID derives the id of the other half of a transfer pair by swapping
// the debit/credit marker. It returns false for non-transfer records.
func (t Transaction) PairID() (string, bool) {
	if !t.IsTransferHalf() {
		return "", false
	}
	if rest, ok := strings.CutPrefix(t.ID, transferDebitPrefix); ok {
		return transferCreditPrefix + rest, true
	}
	rest, _ := strings.CutPrefix(t.ID, transferCreditPrefix)
	return transferDebitPrefix + rest, true
}
