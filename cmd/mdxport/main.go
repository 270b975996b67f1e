package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/goquery"
	"github.com/fwojciec/mdxport/htmltomarkdown"
	mdxhttp "github.com/fwojciec/mdxport/http"
	"github.com/fwojciec/mdxport/rod"
	mdxslog "github.com/fwojciec/mdxport/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdxport"),
		kong.Description("Migrate pages of a hosted site into local MDX files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars(defaultVars()),
		kong.Configuration(YAMLConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdxport --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	if cli.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = mdxslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	deps.Fetcher = fetcher
	deps.Selector = goquery.NewSelector()
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// newFetcher returns a browser-backed fetcher when rendering is requested
// and a plain HTTP fetcher otherwise. A zero --timeout leaves each fetcher
// at its own default.
func newFetcher(cli *CLI, stderr io.Writer) (mdxport.Fetcher, error) {
	if !cli.Render {
		return mdxhttp.NewFetcher(mdxhttp.WithTimeout(cli.Timeout)), nil
	}

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}
