// Package renderer turns ledger data into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/nroussel/comptes"
)

// Accounts renders the account list as a markdown table with a total row.
func Accounts(accounts []comptes.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Comptes")
	if len(accounts) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}
	doc.Table(accountsTable(accounts))
	return doc.String()
}

func accountsTable(accounts []comptes.Account) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Nom", "Solde"},
		Rows:   [][]string{},
	}
	total := comptes.A(0)
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{a.ID, a.Name, a.Balance.String()})
		total = total.Add(a.Balance)
	}
	table.Rows = append(table.Rows, []string{"", md.Bold("Total"), md.Bold(total.String())})
	return table
}

// Transactions renders a transaction list as a markdown table, rows exactly
// where the snapshot keeps them (insertion order).
func Transactions(txs []comptes.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	doc.Table(transactionsTable(txs))
	return doc.String()
}

func transactionsTable(txs []comptes.Transaction) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Compte", "Type", "Montant", "Catégorie", "Description"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		amount := "+" + tx.Amount.String()
		if tx.Type == comptes.Expense {
			amount = "-" + tx.Amount.String()
		}
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.AccountID,
			string(tx.Type),
			amount,
			tx.Category,
			tx.Description,
		})
	}
	return table
}

// Categories renders the category labels as a markdown list.
func Categories(categories []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Catégories")
	if len(categories) == 0 {
		doc.PlainText("No categories.")
		return doc.String()
	}
	doc.BulletList(categories...)
	return doc.String()
}

// Summary renders an overview of the whole snapshot: accounts, the most
// recent transactions, and the totals line.
func Summary(s comptes.Snapshot, recent int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Comptes")
	if len(s.Accounts) == 0 {
		doc.PlainText("No accounts.")
	} else {
		doc.Table(accountsTable(s.Accounts))
	}

	txs := s.Transactions
	if recent > 0 && len(txs) > recent {
		txs = txs[len(txs)-recent:]
	}
	doc.H2("Transactions récentes")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
	} else {
		doc.Table(transactionsTable(txs))
	}

	doc.PlainText(fmt.Sprintf("%d categories, %d transactions in total.",
		len(s.Categories), len(s.Transactions)))
	return doc.String()
}
