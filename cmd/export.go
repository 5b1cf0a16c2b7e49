package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

type exportCmd struct {
	dir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the snapshot to a timestamped JSON file" }
func (*exportCmd) Usage() string {
	return `cpt export [-dir <directory>]

  Writes the whole snapshot to data-<DD-MM-YYYY>_<HHhMMmSSs>.json. The
  file is re-importable without transformation.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.dir, "dir", "", "Destination directory (defaults to COMPTES_EXPORT_DIR).")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg := openStore()
	dir := p.dir
	if dir == "" {
		dir = cfg.ExportDir
	}

	path, err := store.ExportTo(dir, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", path)
	return subcommands.ExitSuccess
}
