package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the snapshot with a JSON file's contents" }
func (*importCmd) Usage() string {
	return `cpt import <file.json>

  Replaces the entire snapshot with the parsed file. On parse or
  validation failure the current snapshot is kept and the error shown.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file argument.")
		return subcommands.ExitUsageError
	}

	store, _ := openStore()
	if err := store.ImportFrom(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %s\n", f.Arg(0))
	return subcommands.ExitSuccess
}
