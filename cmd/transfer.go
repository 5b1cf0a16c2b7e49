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

type transferCmd struct {
	from   string
	to     string
	amount string
	date   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `cpt transfer -from <id> -to <id> -amount <n> [-d <date>]

  Moves money between two accounts and records the linked debit/credit
  pair under the "Virement" category.
`
}

func (p *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Source account id.")
	f.StringVar(&p.to, "to", "", "Destination account id.")
	f.StringVar(&p.amount, "amount", "", "Amount to move (positive).")
	f.StringVar(&p.date, "d", "", "Transfer date (YYYY-MM-DD, defaults to today).")
}

func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := store.Transfer(p.from, p.to, amount, day); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %s from %s to %s\n", amount, p.from, p.to)
	return subcommands.ExitSuccess
}
