package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes"
)

type newAccountCmd struct {
	id      string
	name    string
	balance string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create a new account" }
func (*newAccountCmd) Usage() string {
	return `cpt new-account -id <id> -name <name> [-balance <n>]

  Creates an account with an initial balance. The id and name must be
  unique among existing accounts.
`
}

func (p *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Unique account id, e.g. REVOLUT.")
	f.StringVar(&p.name, "name", "", "Display name, e.g. \"Compte Revolut\".")
	f.StringVar(&p.balance, "balance", "0", "Initial balance.")
}

func (p *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := comptes.NewAccount(p.id, p.name, p.balance)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, _ := openStore()
	if err := store.AddAccount(account); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created account %s (%s) with balance %s\n", account.ID, account.Name, account.Balance)
	return subcommands.ExitSuccess
}
