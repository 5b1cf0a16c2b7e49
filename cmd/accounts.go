package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list all accounts and their balances" }
func (*accountsCmd) Usage() string            { return "cpt accounts\n" }
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := openStore()
	printMarkdown(renderer.Accounts(store.Snapshot().Accounts))
	return subcommands.ExitSuccess
}
