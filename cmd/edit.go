package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes"
	"github.com/nroussel/comptes/date"
)

type editCmd struct {
	id          string
	account     string
	txType      string
	amount      string
	category    string
	description string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `cpt edit -id <tx-id> [-account <id>] [-type <t>] [-amount <n>] [-category <c>] [-desc <text>] [-d <date>]

  Replaces the named transaction, keeping its position in the list. Only
  the provided flags change; balances on the old and new account are
  recomputed in one step.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&p.account, "account", "", "New account id.")
	f.StringVar(&p.txType, "type", "", "New type: income or expense.")
	f.StringVar(&p.amount, "amount", "", "New amount.")
	f.StringVar(&p.category, "category", "", "New category label.")
	f.StringVar(&p.description, "desc", "", "New description.")
	f.StringVar(&p.date, "d", "", "New date (YYYY-MM-DD).")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, _ := openStore()
	tx, _, ok := store.Snapshot().Transaction(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %q not found.\n", p.id)
		return subcommands.ExitFailure
	}

	if p.account != "" {
		tx.AccountID = p.account
	}
	if p.txType != "" {
		typ, err := comptes.ParseTxType(p.txType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Type = typ
	}
	if p.amount != "" {
		amount, err := comptes.ParseAmount(p.amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Amount = amount
	}
	if p.category != "" {
		tx.Category = p.category
	}
	if p.description != "" {
		tx.Description = p.description
	}
	if p.date != "" {
		day, err := date.Parse(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		tx.Date = day
	}

	if err := store.EditTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
