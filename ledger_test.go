package comptes

import (
	"errors"
	"strings"
	"testing"

	"github.com/nroussel/comptes/date"
)

// seed returns a snapshot with two accounts and one plain expense.
// Account A started at 550 (balance 500 after the 50 expense), B at 100.
func seed() Snapshot {
	return Snapshot{
		Accounts: []Account{
			{ID: "A", Name: "Compte A", Balance: A(500)},
			{ID: "B", Name: "Compte B", Balance: A(100)},
		},
		Categories: []string{"Alimentation", "Salaire", TransferCategory},
		Transactions: []Transaction{
			{ID: "t1", AccountID: "A", Type: Expense, Amount: A(50), Category: "Alimentation", Description: "courses", Date: date.MustParse("2025-01-10")},
		},
	}
}

func seedInitials() map[string]Amount {
	return map[string]Amount{"A": A(550), "B": A(100)}
}

func balance(t *testing.T, s Snapshot, id string) Amount {
	t.Helper()
	a, ok := s.Account(id)
	if !ok {
		t.Fatalf("account %q not found", id)
	}
	return a.Balance
}

func TestAddTransaction(t *testing.T) {
	testCases := []struct {
		name        string
		tx          Transaction
		wantErr     error
		wantBalance map[string]Amount
	}{
		{
			name:        "income increases balance",
			tx:          Transaction{ID: "t2", AccountID: "A", Type: Income, Amount: A(200), Category: "Salaire", Date: date.MustParse("2025-01-11")},
			wantBalance: map[string]Amount{"A": A(700), "B": A(100)},
		},
		{
			name:        "expense decreases balance",
			tx:          Transaction{ID: "t2", AccountID: "B", Type: Expense, Amount: A(30), Category: "Alimentation", Date: date.MustParse("2025-01-11")},
			wantBalance: map[string]Amount{"A": A(500), "B": A(70)},
		},
		{
			name:    "unknown account is rejected",
			tx:      Transaction{ID: "t2", AccountID: "NOPE", Type: Income, Amount: A(10), Date: date.MustParse("2025-01-11")},
			wantErr: ErrAccountNotFound,
		},
		{
			name:    "missing id is rejected",
			tx:      Transaction{AccountID: "A", Type: Income, Amount: A(10)},
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "unknown type is rejected",
			tx:      Transaction{ID: "t2", AccountID: "A", Type: "refund", Amount: A(10)},
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "negative amount is rejected",
			tx:      Transaction{ID: "t2", AccountID: "A", Type: Income, Amount: A(-10)},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := seed()
			got, err := before.AddTransaction(tc.tx)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("AddTransaction error = %v, want %v", err, tc.wantErr)
				}
				if !got.Equal(seed()) {
					t.Errorf("snapshot changed on rejected operation")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddTransaction: %v", err)
			}
			for id, want := range tc.wantBalance {
				if b := balance(t, got, id); !b.Equal(want) {
					t.Errorf("account %s balance = %s, want %s", id, b, want)
				}
			}
			last := got.Transactions[len(got.Transactions)-1]
			if !last.Equal(tc.tx) {
				t.Errorf("appended transaction = %+v, want %+v", last, tc.tx)
			}
			if err := got.Check(seedInitials()); err != nil {
				t.Errorf("invariant broken: %v", err)
			}
			if !before.Equal(seed()) {
				t.Errorf("input snapshot mutated in place")
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	s, err := seed().Transfer("A", "B", A(100), date.MustParse("2025-02-01"))
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if b := balance(t, s, "A"); !b.Equal(A(400)) {
		t.Errorf("A balance = %s, want %s", b, A(400))
	}
	if b := balance(t, s, "B"); !b.Equal(A(200)) {
		t.Errorf("B balance = %s, want %s", b, A(200))
	}

	if len(s.Transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(s.Transactions))
	}
	debit, credit := s.Transactions[1], s.Transactions[2]
	if debit.Type != Expense || debit.AccountID != "A" || !debit.Amount.Equal(A(100)) {
		t.Errorf("debit half = %+v", debit)
	}
	if credit.Type != Income || credit.AccountID != "B" || !credit.Amount.Equal(A(100)) {
		t.Errorf("credit half = %+v", credit)
	}
	if debit.Category != TransferCategory || credit.Category != TransferCategory {
		t.Errorf("transfer halves must use category %q", TransferCategory)
	}
	if !strings.HasPrefix(debit.ID, "transfer_debit_") {
		t.Errorf("debit id = %q, want transfer_debit_ prefix", debit.ID)
	}
	if !strings.HasPrefix(credit.ID, "transfer_credit_") {
		t.Errorf("credit id = %q, want transfer_credit_ prefix", credit.ID)
	}

	// Each half derives the other's id by marker substitution.
	if pair, ok := debit.PairID(); !ok || pair != credit.ID {
		t.Errorf("debit.PairID() = %q, %v, want %q", pair, ok, credit.ID)
	}
	if pair, ok := credit.PairID(); !ok || pair != debit.ID {
		t.Errorf("credit.PairID() = %q, %v, want %q", pair, ok, debit.ID)
	}

	if err := s.Check(seedInitials()); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestTransfer_RoundTripRestoresBalances(t *testing.T) {
	s, err := seed().Transfer("A", "B", A(100), date.MustParse("2025-02-01"))
	if err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	s, err = s.Transfer("B", "A", A(100), date.MustParse("2025-02-01"))
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}

	if b := balance(t, s, "A"); !b.Equal(A(500)) {
		t.Errorf("A balance = %s, want %s", b, A(500))
	}
	if b := balance(t, s, "B"); !b.Equal(A(100)) {
		t.Errorf("B balance = %s, want %s", b, A(100))
	}
	if len(s.Transactions) != 5 {
		t.Errorf("got %d transactions, want 5 (original + 4 synthesized)", len(s.Transactions))
	}
}

func TestTransfer_Rejections(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string
		amount   Amount
		wantErr  error
	}{
		{name: "unknown source", from: "NOPE", to: "B", amount: A(10), wantErr: ErrAccountNotFound},
		{name: "unknown destination", from: "A", to: "NOPE", amount: A(10), wantErr: ErrAccountNotFound},
		{name: "same account", from: "A", to: "A", amount: A(10), wantErr: ErrSameAccount},
		{name: "zero amount", from: "A", to: "B", amount: A(0), wantErr: ErrInvalidAmount},
		{name: "negative amount", from: "A", to: "B", amount: A(-10), wantErr: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seed().Transfer(tc.from, tc.to, tc.amount, date.MustParse("2025-02-01"))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Transfer error = %v, want %v", err, tc.wantErr)
			}
			if !got.Equal(seed()) {
				t.Errorf("snapshot changed on rejected transfer")
			}
		})
	}
}

func TestEditTransaction_AmountChange(t *testing.T) {
	// Balance 500 with one expense of 50; raising it to 80 must land on
	// 470, not 450 or 420.
	s := seed()
	updated := s.Transactions[0]
	updated.Amount = A(80)

	got, err := s.EditTransaction(updated)
	if err != nil {
		t.Fatalf("EditTransaction: %v", err)
	}
	if b := balance(t, got, "A"); !b.Equal(A(470)) {
		t.Errorf("A balance = %s, want %s", b, A(470))
	}
	if got.Transactions[0].ID != "t1" {
		t.Errorf("edited record moved, want position preserved")
	}
	if err := got.Check(seedInitials()); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestEditTransaction_MoveAcrossAccounts(t *testing.T) {
	s := seed()
	updated := s.Transactions[0]
	updated.AccountID = "B"

	got, err := s.EditTransaction(updated)
	if err != nil {
		t.Fatalf("EditTransaction: %v", err)
	}
	// A gets its 50 expense back, B takes it on.
	if b := balance(t, got, "A"); !b.Equal(A(550)) {
		t.Errorf("A balance = %s, want %s", b, A(550))
	}
	if b := balance(t, got, "B"); !b.Equal(A(50)) {
		t.Errorf("B balance = %s, want %s", b, A(50))
	}
	if err := got.Check(seedInitials()); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestEditTransaction_TypeFlip(t *testing.T) {
	s := seed()
	updated := s.Transactions[0]
	updated.Type = Income

	got, err := s.EditTransaction(updated)
	if err != nil {
		t.Fatalf("EditTransaction: %v", err)
	}
	// Reversing a 50 expense and applying a 50 income moves A by +100.
	if b := balance(t, got, "A"); !b.Equal(A(600)) {
		t.Errorf("A balance = %s, want %s", b, A(600))
	}
}

func TestEditTransaction_Rejections(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "unknown id", mutate: func(tx *Transaction) { tx.ID = "ghost" }, wantErr: ErrTransactionNotFound},
		{name: "unknown new account", mutate: func(tx *Transaction) { tx.AccountID = "NOPE" }, wantErr: ErrAccountNotFound},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = A(-5) }, wantErr: ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := seed()
			updated := s.Transactions[0]
			tc.mutate(&updated)
			got, err := s.EditTransaction(updated)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("EditTransaction error = %v, want %v", err, tc.wantErr)
			}
			if !got.Equal(seed()) {
				t.Errorf("snapshot changed on rejected edit")
			}
		})
	}
}

func TestDeleteTransaction_Plain(t *testing.T) {
	got, err := seed().DeleteTransaction("t1")
	if err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if b := balance(t, got, "A"); !b.Equal(A(550)) {
		t.Errorf("A balance = %s, want %s", b, A(550))
	}
	if len(got.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(got.Transactions))
	}
}

func TestDeleteTransaction_TransferPair(t *testing.T) {
	transferred, err := seed().Transfer("A", "B", A(30), date.MustParse("2025-02-01"))
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	debitID, creditID := transferred.Transactions[1].ID, transferred.Transactions[2].ID

	for _, tc := range []struct {
		name string
		id   string
	}{
		{name: "deleting the debit half", id: debitID},
		{name: "deleting the credit half", id: creditID},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := transferred.DeleteTransaction(tc.id)
			if err != nil {
				t.Fatalf("DeleteTransaction: %v", err)
			}
			// Both halves gone, both balances back to pre-transfer.
			if len(got.Transactions) != 1 {
				t.Fatalf("got %d transactions, want 1", len(got.Transactions))
			}
			if got.Transactions[0].ID != "t1" {
				t.Errorf("surviving transaction = %q, want t1", got.Transactions[0].ID)
			}
			if b := balance(t, got, "A"); !b.Equal(A(500)) {
				t.Errorf("A balance = %s, want %s", b, A(500))
			}
			if b := balance(t, got, "B"); !b.Equal(A(100)) {
				t.Errorf("B balance = %s, want %s", b, A(100))
			}
		})
	}
}

func TestDeleteTransaction_LoneTransferHalf(t *testing.T) {
	// A transfer half whose pair is already gone (e.g. imported data)
	// degrades to a single deletion.
	s := seed()
	s.Transactions = append(s.Transactions, Transaction{
		ID: "transfer_debit_x", AccountID: "A", Type: Expense, Amount: A(30),
		Category: TransferCategory, Date: date.MustParse("2025-02-01"),
	})
	s.Accounts[0].Balance = A(470)

	got, err := s.DeleteTransaction("transfer_debit_x")
	if err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if b := balance(t, got, "A"); !b.Equal(A(500)) {
		t.Errorf("A balance = %s, want %s", b, A(500))
	}
	if len(got.Transactions) != 1 {
		t.Errorf("got %d transactions, want 1", len(got.Transactions))
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	got, err := seed().DeleteTransaction("ghost")
	if !errors.Is(err, ErrTransactionNotFound) {
		t.Fatalf("DeleteTransaction error = %v, want %v", err, ErrTransactionNotFound)
	}
	if !got.Equal(seed()) {
		t.Errorf("snapshot changed on rejected delete")
	}
}

func TestAddAccount(t *testing.T) {
	testCases := []struct {
		name    string
		account Account
		wantErr error
	}{
		{name: "valid", account: Account{ID: "C", Name: "Compte C", Balance: A(25)}},
		{name: "duplicate id", account: Account{ID: "A", Name: "X", Balance: A(0)}, wantErr: ErrDuplicateAccountID},
		{name: "duplicate name", account: Account{ID: "X", Name: "Compte A", Balance: A(0)}, wantErr: ErrDuplicateAccountName},
		{name: "empty id", account: Account{Name: "X", Balance: A(0)}, wantErr: ErrInvalidAccount},
		{name: "empty name", account: Account{ID: "X", Balance: A(0)}, wantErr: ErrInvalidAccount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seed().AddAccount(tc.account)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("AddAccount error = %v, want %v", err, tc.wantErr)
				}
				if !got.Equal(seed()) {
					t.Errorf("snapshot changed on rejected account")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddAccount: %v", err)
			}
			added, ok := got.Account(tc.account.ID)
			if !ok || !added.Equal(tc.account) {
				t.Errorf("account %q = %+v, want %+v", tc.account.ID, added, tc.account)
			}
		})
	}
}

func TestAddAccount_IDCaseSensitive(t *testing.T) {
	// "a" and "A" are different ids: exact match only.
	got, err := seed().AddAccount(Account{ID: "a", Name: "Minuscule", Balance: A(0)})
	if err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	if _, ok := got.Account("a"); !ok {
		t.Errorf("lowercase id should be accepted alongside uppercase")
	}
}

func TestNewAccount_ParsesFormInput(t *testing.T) {
	account, err := NewAccount("  REVOLUT ", " Compte Revolut ", "12.50")
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	if account.ID != "REVOLUT" || account.Name != "Compte Revolut" {
		t.Errorf("NewAccount did not trim: %+v", account)
	}
	if !account.Balance.Equal(A(12.5)) {
		t.Errorf("balance = %s, want %s", account.Balance, A(12.5))
	}

	if _, err := NewAccount("X", "Y", "abc"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("non-numeric balance error = %v, want %v", err, ErrInvalidAmount)
	}
}

// deleteSeed returns a snapshot with account C holding two transactions
// (+10 income, -5 expense, balance 40, so initial 35) and account D at 100.
func deleteSeed() Snapshot {
	return Snapshot{
		Accounts: []Account{
			{ID: "C", Name: "Compte C", Balance: A(40)},
			{ID: "D", Name: "Compte D", Balance: A(100)},
		},
		Categories: []string{"Autre"},
		Transactions: []Transaction{
			{ID: "c1", AccountID: "C", Type: Income, Amount: A(10), Category: "Autre", Date: date.MustParse("2025-01-01")},
			{ID: "c2", AccountID: "C", Type: Expense, Amount: A(5), Category: "Autre", Date: date.MustParse("2025-01-02")},
		},
	}
}

func TestDeleteAccount_DeleteDisposition(t *testing.T) {
	got, err := deleteSeed().DeleteAccount("C", DispositionDelete, "")
	if err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, ok := got.Account("C"); ok {
		t.Errorf("account C still present")
	}
	if len(got.Transactions) != 0 {
		t.Errorf("got %d transactions, want 0", len(got.Transactions))
	}
	if b := balance(t, got, "D"); !b.Equal(A(100)) {
		t.Errorf("D balance = %s, want %s", b, A(100))
	}
}

func TestDeleteAccount_TransferDisposition(t *testing.T) {
	got, err := deleteSeed().DeleteAccount("C", DispositionTransfer, "D")
	if err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, ok := got.Account("C"); ok {
		t.Errorf("account C still present")
	}
	// D absorbs C's +10/-5: 100 + 10 - 5 = 105.
	if b := balance(t, got, "D"); !b.Equal(A(105)) {
		t.Errorf("D balance = %s, want %s", b, A(105))
	}
	for _, tx := range got.Transactions {
		if tx.AccountID == "C" {
			t.Errorf("transaction %q still references deleted account", tx.ID)
		}
	}
	if len(got.Transactions) != 2 {
		t.Errorf("got %d transactions, want 2", len(got.Transactions))
	}
	if err := got.Check(map[string]Amount{"D": A(100)}); err != nil {
		t.Errorf("invariant broken: %v", err)
	}
}

func TestDeleteAccount_Rejections(t *testing.T) {
	testCases := []struct {
		name        string
		id          string
		disposition Disposition
		target      string
		wantErr     error
	}{
		{name: "unknown account", id: "NOPE", disposition: DispositionDelete, wantErr: ErrAccountNotFound},
		{name: "transfer without target", id: "C", disposition: DispositionTransfer, wantErr: ErrInvalidDisposition},
		{name: "transfer to itself", id: "C", disposition: DispositionTransfer, target: "C", wantErr: ErrInvalidDisposition},
		{name: "transfer to unknown target", id: "C", disposition: DispositionTransfer, target: "NOPE", wantErr: ErrAccountNotFound},
		{name: "unknown disposition", id: "C", disposition: "archive", wantErr: ErrInvalidDisposition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := deleteSeed().DeleteAccount(tc.id, tc.disposition, tc.target)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("DeleteAccount error = %v, want %v", err, tc.wantErr)
			}
			if !got.Equal(deleteSeed()) {
				t.Errorf("snapshot changed on rejected deletion")
			}
		})
	}
}

func TestUpdateCategories(t *testing.T) {
	labels := []string{"Un", "Deux"}
	got, err := seed().UpdateCategories(labels)
	if err != nil {
		t.Fatalf("UpdateCategories: %v", err)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "Un" || got.Categories[1] != "Deux" {
		t.Errorf("categories = %v, want %v", got.Categories, labels)
	}

	// The snapshot owns its copy of the list.
	labels[0] = "changed"
	if got.Categories[0] != "Un" {
		t.Errorf("snapshot shares storage with the caller's slice")
	}

	// Transactions keep referencing removed labels, no cascade.
	if got.Transactions[0].Category != "Alimentation" {
		t.Errorf("category replacement must not touch transactions")
	}
}

func TestInvariant_HoldsAcrossOperationSequence(t *testing.T) {
	initials := seedInitials()
	s := seed()

	step := func(name string, next Snapshot, err error) Snapshot {
		t.Helper()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := next.Check(initials); err != nil {
			t.Fatalf("%s broke the invariant: %v", name, err)
		}
		return next
	}

	next, err := s.AddTransaction(Transaction{ID: "t2", AccountID: "B", Type: Income, Amount: A(250), Category: "Salaire", Date: date.MustParse("2025-01-12")})
	s = step("add income", next, err)
	next, err = s.Transfer("B", "A", A(75), date.MustParse("2025-01-13"))
	s = step("transfer", next, err)
	edited := s.Transactions[0]
	edited.Amount = A(65)
	next, err = s.EditTransaction(edited)
	s = step("edit", next, err)
	next, err = s.DeleteTransaction(s.Transactions[2].ID)
	s = step("delete transfer half", next, err)
	next, err = s.DeleteTransaction("t2")
	s = step("delete plain", next, err)

	if b := balance(t, s, "A"); !b.Equal(A(485)) {
		t.Errorf("A balance = %s, want %s", b, A(485))
	}
	if b := balance(t, s, "B"); !b.Equal(A(100)) {
		t.Errorf("B balance = %s, want %s", b, A(100))
	}
}
