// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nroussel/comptes"
	"github.com/nroussel/comptes/config"
	"github.com/nroussel/comptes/logger"
)

// Register the subcommands.
// A main package calls Register() to install them, then Execute() runs the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&newAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&categoriesCmd{}, "categories")

	c.Register(&summaryCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&serveCmd{}, "data")
}

// as a CLI application it is short lived, so global flag variables are fine.

var stateFile = flag.String("state", "", "Path to the state file (overrides COMPTES_STATE_FILE)")

// appConfig resolves the effective configuration, letting the -state flag
// override the environment.
func appConfig() *config.Config {
	cfg := config.Load()
	if *stateFile != "" {
		cfg.StateFile = *stateFile
	}
	return cfg
}

// openStore loads the state file into a store, falling back to the default
// dataset when it is missing or rejected.
func openStore() (*comptes.Store, *config.Config) {
	cfg := appConfig()
	log := logger.New(cfg.LogLevel)
	return comptes.Open(cfg.StateFile, log), cfg
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
