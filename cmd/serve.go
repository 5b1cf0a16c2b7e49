package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/nroussel/comptes/logger"
	"github.com/nroussel/comptes/web"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the web interface" }
func (*serveCmd) Usage() string {
	return `cpt serve [-addr <host:port>]

  Serves a small web interface over the ledger store.
`
}

func (p *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.addr, "addr", "", "Listen address (defaults to COMPTES_ADDR).")
}

func (p *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg := openStore()
	addr := p.addr
	if addr == "" {
		addr = cfg.Addr
	}

	log := logger.New(cfg.LogLevel)
	server, err := web.NewServer(store, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, server); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
