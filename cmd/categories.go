package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes/renderer"
)

type categoriesCmd struct {
	set    string
	add    string
	remove string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list or modify the category labels" }
func (*categoriesCmd) Usage() string {
	return `cpt categories [-set <a,b,c>] [-add <label>] [-remove <label>]

  Without flags, lists the categories. -set replaces the whole list;
  -add and -remove build a new list from the current one. Removing a
  label does not touch transactions that reference it.
`
}

func (p *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Replace the list with these comma-separated labels.")
	f.StringVar(&p.add, "add", "", "Append one label.")
	f.StringVar(&p.remove, "remove", "", "Remove one label.")
}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _ := openStore()

	if p.set == "" && p.add == "" && p.remove == "" {
		printMarkdown(renderer.Categories(store.Snapshot().Categories))
		return subcommands.ExitSuccess
	}

	categories := store.Snapshot().Categories
	if p.set != "" {
		categories = nil
		for _, label := range strings.Split(p.set, ",") {
			if label = strings.TrimSpace(label); label != "" {
				categories = append(categories, label)
			}
		}
	}
	if p.add != "" && !slices.Contains(categories, p.add) {
		categories = append(categories, p.add)
	}
	if p.remove != "" {
		categories = slices.DeleteFunc(categories, func(c string) bool { return c == p.remove })
	}

	if err := store.UpdateCategories(categories); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Categories(categories))
	return subcommands.ExitSuccess
}
