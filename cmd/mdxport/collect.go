package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/migrate"
)

// Run executes the collect command.
//
// Failing to fetch the page or to find the navigation element is reported
// and treated as an empty result. Only a failure to write the link file is
// returned as an error.
func (c *CollectCmd) Run(deps *Dependencies) error {
	loc, err := mdxport.ParseLocator(c.LinksLocator)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
		return err
	}

	collector := &migrate.Collector{
		Fetcher:  deps.Fetcher,
		Selector: deps.Selector,
		Links:    deps.linkStore(c.LinksFile),
	}

	fmt.Fprintf(deps.Stdout, "Fetching content from: %s\n", c.URL)
	result, err := collector.Run(deps.Ctx, c.URL, loc)

	var saveErr *migrate.SaveError
	if errors.As(err, &saveErr) {
		fmt.Fprintf(deps.Stderr, "error: failed to save links to %s: %s\n", c.LinksFile, mdxport.ErrorMessage(saveErr.Err))
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdxport.ErrorMessage(err))
	}

	if !result.Saved {
		fmt.Fprintln(deps.Stdout, "No links were found in the specified element's subtree.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Saved %d links to %s\n", len(result.Links), c.LinksFile)
	return nil
}
