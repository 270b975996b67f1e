package main

import (
	"fmt"

	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/bluemonday"
	"github.com/fwojciec/mdxport/fs"
	"github.com/fwojciec/mdxport/migrate"
)

// Run executes the migrate command.
func (c *MigrateCmd) Run(deps *Dependencies) error {
	loc, err := mdxport.ParseLocator(c.ContentLocator)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	m := &migrate.Migrator{
		Fetcher:      deps.Fetcher,
		Selector:     deps.Selector,
		Converter:    deps.Converter,
		Links:        deps.linkStore(c.LinksFile),
		Writer:       deps.documentWriter(c.OutDir, fs.WithExtension(c.Extension)),
		Throttle:     migrate.NewThrottle(c.Delay),
		SkipExisting: c.SkipExisting,
		Template: migrate.DocumentTemplate{
			Layout:            c.Layout,
			DescriptionFormat: migrate.DefaultDescriptionFormat,
		},
	}
	if c.Sanitize {
		m.Sanitizer = bluemonday.NewSanitizer()
	}

	result, err := m.Run(deps.Ctx, c.BaseURL, loc, c.progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		if result == nil && mdxport.ErrorCode(err) == mdxport.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run 'mdxport collect' first and make sure the output directory exists")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nProcessing complete. %d written, %d skipped, %d failed.\n",
		result.Written, result.Skipped, result.Failed)
	return nil
}

func (c *MigrateCmd) progress(deps *Dependencies) migrate.ProgressFunc {
	return func(e migrate.ProgressEvent) {
		switch e.Type {
		case migrate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d links to process.\n", e.Total)
		case migrate.ProgressFetching:
			fmt.Fprintf(deps.Stdout, "Fetching: %s\n", e.URL)
		case migrate.ProgressWritten:
			if e.Status == mdxport.WriteUnchanged {
				fmt.Fprintf(deps.Stdout, "Unchanged: %s\n", e.Path)
				return
			}
			fmt.Fprintf(deps.Stdout, "Successfully %s: %s\n", e.Status, e.Path)
		case migrate.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "Skipping %s, file already exists.\n", e.Path)
		case migrate.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "Failed to create MDX for %s: %s\n", e.URL, mdxport.ErrorMessage(e.Error))
		}
	}
}
