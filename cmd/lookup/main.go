// Command lookup answers explorer queries from the terminal.
//
//	lookup [-tip sve|adrese|transakcije|blokovi|tokeni] <upit>
//	lookup status
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/kripto-transakcije/explorer/app/explorer"
	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/logging"
	"github.com/kripto-transakcije/explorer/pkg/search"
	"go.uber.org/zap"
)

func main() {
	scope := flag.String("tip", search.ScopeAll, "vrsta upita: sve, adrese, transakcije, blokovi, tokeni")
	verbose := flag.Bool("v", false, "ispisuj zapise o greškama providera")
	limit := flag.Int("n", 10, "broj transakcija za ispis")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Upotreba: %s [opcije] <upit> | status\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = logging.New(); err != nil {
			panic(err)
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader := explorer.NewReader(logger)
	defer reader.Close()

	p := &printer{out: os.Stdout, reader: reader, catalog: catalog.Default(), limit: *limit}
	if err := p.run(ctx, query, *scope); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints the answer to query; "status" prints the network status.
func (p *printer) run(ctx context.Context, query, scope string) error {
	if strings.EqualFold(query, "status") {
		p.status(ctx)
		return nil
	}

	kind, ok := search.ParseScope(scope)
	if !ok {
		kind = search.Classify(query)
	}

	switch kind {
	case search.KindTransaction:
		return p.transaction(ctx, query)
	case search.KindAddress:
		return p.address(ctx, query)
	case search.KindBlock:
		return p.block(ctx, query)
	default:
		p.tokens(ctx, query)
		return nil
	}
}
