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

type addCmd struct {
	account     string
	txType      string
	amount      string
	category    string
	description string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense on an account" }
func (*addCmd) Usage() string {
	return `cpt add -account <id> -type <income|expense> -amount <n> [-category <c>] [-desc <text>] [-d <date>]

  Records a transaction and adjusts the account balance accordingly.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "account", "", "Account id the transaction applies to.")
	f.StringVar(&p.txType, "type", "expense", "Transaction type: income or expense.")
	f.StringVar(&p.amount, "amount", "", "Amount (non-negative).")
	f.StringVar(&p.category, "category", "Autre", "Category label.")
	f.StringVar(&p.description, "desc", "", "Free-form description.")
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD, defaults to today).")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := comptes.ParseTxType(p.txType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	amount, err := comptes.ParseAmount(p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	day := date.Today()
	if p.date != "" {
		if day, err = date.Parse(p.date); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	store, _ := openStore()
	tx := comptes.NewTransaction(p.account, typ, amount, p.category, p.description, day)
	if err := store.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s (id %s)\n", typ, amount, p.account, tx.ID)
	return subcommands.ExitSuccess
}
