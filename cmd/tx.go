package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes"
	"github.com/nroussel/comptes/renderer"
)

type txCmd struct {
	account  string
	category string
	search   string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `cpt tx [-account <id>] [-category <c>] [-search <text>] [-head <n>] [-tail <n>]

  Lists transactions in insertion order, with options for filtering and
  limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.account, "account", "", "Only transactions on this account.")
	f.StringVar(&p.category, "category", "", "Only transactions with this category.")
	f.StringVar(&p.search, "search", "", "Only transactions whose description contains this text.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := openStore()

	var txs []comptes.Transaction
	for _, tx := range store.Snapshot().Transactions {
		if p.account != "" && tx.AccountID != p.account {
			continue
		}
		if p.category != "" && tx.Category != p.category {
			continue
		}
		if p.search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(p.search)) {
			continue
		}
		txs = append(txs, tx)
	}

	if p.head > 0 && len(txs) > p.head {
		txs = txs[:p.head]
	}
	if p.tail > 0 && len(txs) > p.tail {
		txs = txs[len(txs)-p.tail:]
	}

	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}
