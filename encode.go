package comptes

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeSnapshot writes the snapshot as pretty-printed JSON, the exact
// shape of the historical data files: {accounts, categories, transactions}
// with 2-space indentation. Export and the state file share this encoding,
// so an exported file is re-importable without transformation.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	// null slices would encode as JSON null; the format wants arrays.
	if s.Accounts == nil {
		s.Accounts = []Account{}
	}
	if s.Categories == nil {
		s.Categories = []string{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document and validates its structure.
// All three collections must be present; a document missing any of them is
// rejected with ErrInvalidSnapshot so the caller can keep its previous
// state instead of trusting a half-shaped file.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot read snapshot: %w", err)
	}

	var raw struct {
		Accounts     *[]Account     `json:"accounts"`
		Categories   *[]string      `json:"categories"`
		Transactions *[]Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if raw.Accounts == nil {
		return Snapshot{}, fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, "accounts")
	}
	if raw.Categories == nil {
		return Snapshot{}, fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, "categories")
	}
	if raw.Transactions == nil {
		return Snapshot{}, fmt.Errorf("%w: missing %q", ErrInvalidSnapshot, "transactions")
	}

	s := Snapshot{
		Accounts:     *raw.Accounts,
		Categories:   *raw.Categories,
		Transactions: *raw.Transactions,
	}
	for _, tx := range s.Transactions {
		if err := tx.Validate(); err != nil {
			return Snapshot{}, fmt.Errorf("%w: transaction %q: %w", ErrInvalidSnapshot, tx.ID, err)
		}
	}
	return s, nil
}
