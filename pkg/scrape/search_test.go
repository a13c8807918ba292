package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/pkg/scrape"
)

// staticFetcher serves one body for every URL and records what was asked.
type staticFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *staticFetcher) Fetch(_ context.Context, rawURL string) ([]byte, error) {
	f.urls = append(f.urls, rawURL)
	return f.body, f.err
}

func TestFinder_Search_ResultsPage(t *testing.T) {
	t.Parallel()

	srv := serveFile(t, "testdata/results.html")
	f := scrape.NewFinder(scrape.NewHTTPFetcher(), scrape.WithFinderBaseURL(srv.URL))

	got, err := f.Search(context.Background(), "iphone 16 pro")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Apple iPhone 16 Pro", got[0].Name)
	assert.Equal(t, srv.URL+"/apple_iphone_16_pro-13315.php", got[0].URL)
	assert.Equal(t, "Apple iPhone 16 Pro smartphone. Announced Sep 2024.", got[0].Snippet)
	assert.Equal(t, "Apple iPhone 16 Pro Max", got[1].Name)
}

func TestFinder_Search_FiltersNavigation(t *testing.T) {
	t.Parallel()

	fetcher := &staticFetcher{body: []byte(`<html><body>
		<a href="/news.php">News</a>
		<a href="/apple_iphone_16_pro-12345.php">Apple iPhone 16 Pro</a>
	</body></html>`)}
	f := scrape.NewFinder(fetcher, scrape.WithFinderBaseURL("https://www.gsmarena.com/"))

	got, err := f.Search(context.Background(), "iphone 16 pro")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://www.gsmarena.com/apple_iphone_16_pro-12345.php", got[0].URL)

	require.Len(t, fetcher.urls, 1)
	assert.Equal(t, "https://www.gsmarena.com/results.php3?sQuickSearch=yes&sName=iphone+16+pro", fetcher.urls[0])
}

func TestFinder_Parse_LinkRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		anchor string
		want   int
	}{
		{"product href pattern", `<a href="oneplus_12-12725.php">12</a>`, 0},
		{"product href with text", `<a href="oneplus_12-12725.php">OnePlus 12</a>`, 1},
		{"brand in text", `<a href="phone.php">Motorola razr</a>`, 1},
		{"model code in text", `<a href="phone.php">Galaxy-less s24 thing</a>`, 1},
		{"model word in text", `<a href="phone.php">Whatever Ultra</a>`, 1},
		{"not a php page", `<a href="/samsung_galaxy_s24-12773.html">Samsung Galaxy S24</a>`, 0},
		{"script link", `<a href="javascript:go('a.php')">Samsung Galaxy S24</a>`, 0},
		{"keyword in href", `<a href="samsung_galaxy_s24-videos-2650.php">Samsung Galaxy S24</a>`, 0},
		{"singular video is not a keyword", `<a href="sony_xperia_pro-9999.php">Sony Xperia Pro-I Video edition</a>`, 1},
		{"keyword in text", `<a href="x_y-1.php">Samsung featured deals</a>`, 0},
		{"bare navigation word", `<a href="about.php">About</a>`, 0},
		{"empty href", `<a>Samsung Galaxy S24</a>`, 0},
		{"no product signal", `<a href="contact.php">Contact us</a>`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := scrape.NewFinder(nil)
			got, err := f.Parse("https://www.gsmarena.com/results.php3", []byte("<html><body>"+tt.anchor+"</body></html>"))
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFinder_Parse_DedupAndCap(t *testing.T) {
	t.Parallel()

	html := "<html><body>"
	html += `<a href="samsung_galaxy_s1-1.php" title="first">Samsung Galaxy S1</a>`
	html += `<a href="samsung_galaxy_s1-1.php" title="second">Samsung Galaxy S1</a>`
	for _, id := range []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"} {
		html += `<a href="samsung_galaxy_s` + id + `-` + id + `.php">Samsung Galaxy S` + id + `</a>`
	}
	html += "</body></html>"

	got, err := scrape.NewFinder(nil).Parse("https://www.gsmarena.com/results.php3", []byte(html))
	require.NoError(t, err)

	require.Len(t, got, scrape.MaxCandidates)
	assert.Equal(t, "first", got[0].Snippet)
	assert.Equal(t, "Samsung Galaxy S2", got[1].Name)
	assert.Equal(t, "Samsung Galaxy S10", got[9].Name)
}

func TestFinder_Search_NoResults(t *testing.T) {
	t.Parallel()

	srv := serveFile(t, "testdata/empty_results.html")
	f := scrape.NewFinder(scrape.NewHTTPFetcher(), scrape.WithFinderBaseURL(srv.URL))

	_, err := f.Search(context.Background(), "nokia 9999 pureview max")
	require.ErrorIs(t, err, scrape.ErrNoResults)
}

func TestFinder_Search_EmptyQuery(t *testing.T) {
	t.Parallel()

	fetcher := &staticFetcher{}
	_, err := scrape.NewFinder(fetcher).Search(context.Background(), "   ")
	require.ErrorIs(t, err, scrape.ErrEmptyQuery)
	assert.Empty(t, fetcher.urls)
}

func TestFinder_Search_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := scrape.NewFinder(scrape.NewHTTPFetcher(), scrape.WithFinderBaseURL(srv.URL))
	_, err := f.Search(context.Background(), "pixel 9")

	var tErr *scrape.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusBadGateway, tErr.StatusCode)
}
