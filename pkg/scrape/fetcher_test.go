package scrape_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/pkg/scrape"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "spec-scraper-test/1.0", r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	f := scrape.NewHTTPFetcher(scrape.WithUserAgent("spec-scraper-test/1.0"))
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(body))
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	f := scrape.NewHTTPFetcher(scrape.WithTimeout(50 * time.Millisecond))
	_, err := f.Fetch(context.Background(), srv.URL)

	var tErr *scrape.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.True(t, tErr.Timeout())
}

func TestHTTPFetcher_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := scrape.NewHTTPFetcher().Fetch(context.Background(), addr)

	var tErr *scrape.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Zero(t, tErr.StatusCode)
	assert.Contains(t, tErr.Error(), "fetching")
}

func TestHTTPFetcher_TimeoutKeepsClientSettings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/landing", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	f := scrape.NewHTTPFetcher(scrape.WithHTTPClient(client), scrape.WithTimeout(time.Second))
	_, err = f.Fetch(context.Background(), srv.URL+"/moved")

	var tErr *scrape.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusFound, tErr.StatusCode)
	assert.Zero(t, client.Timeout, "caller's client is not mutated")
}

func TestHTTPFetcher_BodyLimit(t *testing.T) {
	t.Parallel()

	page := "<html>" + strings.Repeat("x", 100) + "</html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	tests := []struct {
		name    string
		limit   int64
		wantErr bool
	}{
		{name: "exactly at limit", limit: int64(len(page))},
		{name: "over limit", limit: int64(len(page)) - 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := scrape.NewHTTPFetcher(scrape.WithMaxBodyBytes(tt.limit))
			body, err := f.Fetch(context.Background(), srv.URL)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, page, string(body))
				return
			}
			var tErr *scrape.TransportError
			require.ErrorAs(t, err, &tErr)
			assert.ErrorIs(t, err, scrape.ErrBodyTooLarge)
			assert.Nil(t, body)
		})
	}
}
