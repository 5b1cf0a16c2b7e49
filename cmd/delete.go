package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction (and its transfer pair, if any)" }
func (*deleteCmd) Usage() string {
	return `cpt delete -id <tx-id>

  Removes the transaction and reverses its balance effect. Deleting one
  half of a transfer removes both halves.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to delete.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, _ := openStore()
	if err := store.DeleteTransaction(p.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s\n", p.id)
	return subcommands.ExitSuccess
}
