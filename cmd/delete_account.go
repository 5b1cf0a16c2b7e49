package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes"
)

type deleteAccountCmd struct {
	id          string
	disposition string
	target      string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account and settle its transactions" }
func (*deleteAccountCmd) Usage() string {
	return `cpt delete-account -id <id> [-disposition delete|transfer] [-target <id>]

  Removes the account. With -disposition delete its transactions are
  removed too; with -disposition transfer they are re-pointed to the
  -target account, whose balance is recomputed to include them.
`
}

func (p *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the account to delete.")
	f.StringVar(&p.disposition, "disposition", "delete", "What to do with its transactions: delete or transfer.")
	f.StringVar(&p.target, "target", "", "Target account id when disposition is transfer.")
}

func (p *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	disposition, err := comptes.ParseDisposition(p.disposition)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	store, _ := openStore()
	if err := store.DeleteAccount(p.id, disposition, p.target); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted account %s\n", p.id)
	return subcommands.ExitSuccess
}
