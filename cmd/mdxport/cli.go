package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdxport"
	"github.com/fwojciec/mdxport/fs"
	"github.com/fwojciec/mdxport/migrate"
	mdxslog "github.com/fwojciec/mdxport/slog"
)

// Defaults for the site being migrated.
const (
	DefaultCollectURL     = "https://sites.google.com/site/earlatnipsplace/earl-atnips-place?authuser=0"
	DefaultLinksLocator   = `//*[@id="yuynLe"]/ul/li[1]/div[2]`
	DefaultContentLocator = `//*[@id="yDmH0d"]/div[1]/div/div[2]/div[3]/div/div[1]`
	DefaultBaseURL        = "https://sites.google.com"
	DefaultLinksFile      = "all_links.json"
	DefaultOutDir         = "src/content/posts"
)

func defaultVars() kong.Vars {
	return kong.Vars{
		"collect_url":     DefaultCollectURL,
		"links_locator":   DefaultLinksLocator,
		"content_locator": DefaultContentLocator,
		"base_url":        DefaultBaseURL,
		"links_file":      DefaultLinksFile,
		"out_dir":         DefaultOutDir,
		"layout":          migrate.DefaultLayout,
		"extension":       fs.DefaultExtension,
	}
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Logger is set when --debug is given.
	Logger *slog.Logger

	Fetcher   mdxport.Fetcher
	Selector  mdxport.Selector
	Converter mdxport.Converter
}

// linkStore returns the link list file at path, wrapped with logging in debug mode.
func (d *Dependencies) linkStore(path string) mdxport.LinkStore {
	var store mdxport.LinkStore = fs.NewLinkFile(path)
	if d.Logger != nil {
		store = mdxslog.NewLoggingLinkStore(store, d.Logger)
	}
	return store
}

// documentWriter returns a writer for dir, wrapped with logging in debug mode.
func (d *Dependencies) documentWriter(dir string, opts ...fs.WriterOption) mdxport.DocumentWriter {
	var writer mdxport.DocumentWriter = fs.NewWriter(dir, opts...)
	if d.Logger != nil {
		writer = mdxslog.NewLoggingDocumentWriter(writer, d.Logger)
	}
	return writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `short:"C" help:"Load flag values from a YAML file"`
	Debug   bool            `help:"Log fetches and file writes to stderr"`
	Timeout time.Duration   `short:"t" help:"Fetch timeout per page (default 10s, 30s with --render)"`
	Render  bool            `help:"Render pages in headless Chrome before extraction"`

	Collect CollectCmd `cmd:"" help:"Collect the links beneath a navigation element into a JSON file"`
	Migrate MigrateCmd `cmd:"" help:"Convert every collected link into an MDX file"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct {
	URL          string `default:"${collect_url}" help:"Page holding the navigation element"`
	LinksLocator string `default:"${links_locator}" help:"XPath or CSS locator of the navigation element (prefix with xpath: or css: to force)"`
	LinksFile    string `short:"o" default:"${links_file}" type:"path" help:"JSON file to write the links to"`
}

// MigrateCmd is the "migrate" subcommand.
type MigrateCmd struct {
	BaseURL        string        `default:"${base_url}" help:"Prefix prepended to every collected link"`
	ContentLocator string        `default:"${content_locator}" help:"XPath or CSS locator of the content element"`
	LinksFile      string        `short:"i" default:"${links_file}" type:"path" help:"JSON file to read the links from"`
	OutDir         string        `short:"d" default:"${out_dir}" type:"path" help:"Existing directory to write documents into"`
	Extension      string        `default:"${extension}" help:"File extension for written documents"`
	Layout         string        `default:"${layout}" help:"Layout recorded in front matter"`
	Delay          time.Duration `default:"1s" help:"Minimum interval between page fetches (0 disables)"`
	SkipExisting   bool          `help:"Skip links whose document already exists instead of overwriting it"`
	Sanitize       bool          `help:"Sanitize extracted HTML before conversion"`
}
