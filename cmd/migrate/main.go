package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
	"github.com/vladislavdragonenkov/storefront/internal/storage/postgres"
)

const (
	defaultTimeout = 30 * time.Second
)

type options struct {
	action    string
	dsn       string
	customers int
	products  int
}

func parseOptions(args []string, lookup func(string) string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.action, "action", "up", "schema action: up|seed|status")
	fs.StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN (fallback: STOREFRONT_POSTGRES_DSN)")
	fs.IntVar(&opts.customers, "customers", 20, "number of demo customers for -action=seed")
	fs.IntVar(&opts.products, "products", 20, "number of demo products for -action=seed")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.action = strings.ToLower(strings.TrimSpace(opts.action))
	if strings.TrimSpace(opts.dsn) == "" {
		opts.dsn = lookup("STOREFRONT_POSTGRES_DSN")
	}
	opts.dsn = strings.TrimSpace(opts.dsn)
	if opts.dsn == "" {
		return opts, errors.New("STOREFRONT_POSTGRES_DSN (or -dsn) is required")
	}

	switch opts.action {
	case "up", "status":
	case "seed":
		if opts.customers < 0 || opts.products < 0 {
			return opts, errors.New("customers and products must be >= 0")
		}
	default:
		return opts, fmt.Errorf("unsupported action: %s (use up|seed|status)", opts.action)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	store, err := postgres.Open(ctx, opts.dsn)
	if err != nil {
		return fmt.Errorf("open postgres store: %w", err)
	}
	defer store.Close()

	switch opts.action {
	case "up":
		if err := store.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema failed: %w", err)
		}
		_, _ = fmt.Fprintln(out, "schema up ok")
	case "seed":
		if err := store.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema failed: %w", err)
		}
		if err := store.Seed(ctx, memory.SeedCustomers(opts.customers), memory.SeedProducts(opts.products)); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		_, _ = fmt.Fprintf(out, "seed ok: customers=%d products=%d\n", opts.customers, opts.products)
	}

	return printStatus(ctx, store, out)
}

func printStatus(ctx context.Context, store *postgres.Store, out io.Writer) error {
	customers, err := postgres.NewCustomerRepository(store).Count(ctx)
	if err != nil {
		return fmt.Errorf("schema status failed: %w", err)
	}
	products, err := postgres.NewProductRepository(store).Count(ctx)
	if err != nil {
		return fmt.Errorf("schema status failed: %w", err)
	}
	_, _ = fmt.Fprintf(out, "schema status: customers=%d products=%d\n", customers, products)
	return nil
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fail("%v", err)
	}
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
