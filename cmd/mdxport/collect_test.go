package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdxport"
	main "github.com/fwojciec/mdxport/cmd/mdxport"
	"github.com/fwojciec/mdxport/goquery"
	"github.com/fwojciec/mdxport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("saves links found under the locator", func(t *testing.T) {
		t.Parallel()

		linksFile := filepath.Join(t.TempDir(), "all_links.json")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return navPage, nil
				},
			},
			Selector: goquery.NewSelector(),
		}

		cmd := &main.CollectCmd{URL: "https://example.com/", LinksLocator: "#nav", LinksFile: linksFile}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Fetching content from: https://example.com/")
		assert.Contains(t, stdout.String(), "Saved 2 links to "+linksFile)
		assert.FileExists(t, linksFile)
	})

	t.Run("reports fetch failure without failing", func(t *testing.T) {
		t.Parallel()

		linksFile := filepath.Join(t.TempDir(), "all_links.json")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return "", errors.New("HTTP 500 for https://example.com/")
				},
			},
			Selector: goquery.NewSelector(),
		}

		cmd := &main.CollectCmd{URL: "https://example.com/", LinksLocator: "#nav", LinksFile: linksFile}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "HTTP 500")
		assert.Contains(t, stdout.String(), "No links were found")
		assert.NoFileExists(t, linksFile)
	})

	t.Run("writes nothing when the subtree has no links", func(t *testing.T) {
		t.Parallel()

		linksFile := filepath.Join(t.TempDir(), "all_links.json")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) {
					return `<div id="nav"><p>no anchors</p></div>`, nil
				},
			},
			Selector: goquery.NewSelector(),
		}

		cmd := &main.CollectCmd{URL: "https://example.com/", LinksLocator: "#nav", LinksFile: linksFile}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No links were found")
		assert.NoFileExists(t, linksFile)
	})

	t.Run("fails when the link file cannot be written", func(t *testing.T) {
		t.Parallel()

		// A regular file where a parent directory is expected.
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Fetcher: &mock.Fetcher{
				FetchFn: func(context.Context, string) (string, error) { return navPage, nil },
			},
			Selector: goquery.NewSelector(),
		}

		cmd := &main.CollectCmd{URL: "https://example.com/", LinksLocator: "#nav", LinksFile: filepath.Join(blocker, "links.json")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "failed to save links")
	})

	t.Run("rejects an empty locator", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.CollectCmd{URL: "https://example.com/", LinksLocator: "", LinksFile: "links.json"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, mdxport.EINVALID, mdxport.ErrorCode(err))
	})
}
