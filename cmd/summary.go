package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes/renderer"
)

type summaryCmd struct {
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "overview of accounts and recent transactions" }
func (*summaryCmd) Usage() string {
	return `cpt summary [-recent <n>]

  Shows every account with its balance and the most recent transactions.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.recent, "recent", 10, "How many recent transactions to show.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := openStore()
	printMarkdown(renderer.Summary(store.Snapshot(), p.recent))
	return subcommands.ExitSuccess
}
