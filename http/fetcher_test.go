package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/mdxport"
	mdxhttp "github.com/fwojciec/mdxport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Fetcher implements mdxport.Fetcher
var _ mdxport.Fetcher = (*mdxhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("requests the exact path and query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.URL.RequestURI()))
		}))
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		body, err := fetcher.Fetch(context.Background(), server.URL+"/site/earl/page?authuser=0")

		require.NoError(t, err)
		assert.Equal(t, "/site/earl/page?authuser=0", body)
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		html, err := fetcher.Fetch(context.Background(), server.URL+"/old")

		require.NoError(t, err)
		assert.Equal(t, "moved", html)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := mdxhttp.NewFetcher(mdxhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("keeps default timeout for zero option", func(t *testing.T) {
		t.Parallel()

		fetcher := mdxhttp.NewFetcher(mdxhttp.WithTimeout(0))

		assert.Equal(t, mdxhttp.DefaultFetchTimeout, fetcher.Timeout())
	})

	t.Run("follows redirects carrying the query", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/site/home", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/site/home/landing?"+r.URL.RawQuery, http.StatusFound)
		})
		mux.HandleFunc("/site/home/landing", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("landing " + r.URL.RawQuery))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		html, err := fetcher.Fetch(context.Background(), server.URL+"/site/home?authuser=0")

		require.NoError(t, err)
		assert.Equal(t, "landing authuser=0", html)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := mdxhttp.NewFetcher(mdxhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns error for malformed URL", func(t *testing.T) {
		t.Parallel()

		fetcher := mdxhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), "http://[::1")

		require.Error(t, err)
		assert.Equal(t, mdxport.EINVALID, mdxport.ErrorCode(err))
	})

	t.Run("returns error for failure status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := mdxhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
