package comptes

import "errors"

// Sentinel errors returned by ledger operations. Callers match them with
// errors.Is; the wrapped message names the offending id or rule.
var (
	// ErrAccountNotFound reports an operation naming an account id absent
	// from the snapshot. The snapshot is left untouched.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound reports an edit or delete naming an unknown
	// transaction id. The snapshot is left untouched.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateAccountID rejects an account whose id is already taken.
	ErrDuplicateAccountID = errors.New("account id already exists")

	// ErrDuplicateAccountName rejects an account whose name is already taken.
	ErrDuplicateAccountName = errors.New("account name already exists")

	// ErrInvalidAmount rejects a negative or unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransaction rejects a structurally invalid transaction
	// record (missing id, missing account id, unknown type).
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrInvalidAccount rejects a structurally invalid account record.
	ErrInvalidAccount = errors.New("invalid account")

	// ErrSameAccount rejects a transfer whose source and destination are
	// the same account.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrInvalidDisposition rejects an account deletion whose disposition
	// is neither "delete" nor "transfer", or whose transfer target is
	// missing or invalid.
	ErrInvalidDisposition = errors.New("invalid disposition")

	// ErrInvalidSnapshot reports a decoded document that does not have the
	// {accounts, categories, transactions} structure.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
