package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/pkg/scrape"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

func serveFile(t *testing.T, path string) *httptest.Server {
	t.Helper()

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func specMap(specs []domain.CanonicalSpec) map[string]string {
	m := make(map[string]string, len(specs))
	for _, s := range specs {
		m[string(s.Group)+"/"+s.Name] = s.Value
	}
	return m
}

func TestExtractor_Extract_ProductPage(t *testing.T) {
	t.Parallel()

	srv := serveFile(t, "testdata/product.html")

	var (
		mu           sync.Mutex
		unclassified []string
	)
	e := scrape.NewExtractor(scrape.NewHTTPFetcher(), scrape.WithUnclassifiedHook(func(label string) {
		mu.Lock()
		defer mu.Unlock()
		unclassified = append(unclassified, label)
	}))

	pageURL := srv.URL + "/apple_iphone_16_pro-13315.php"
	got, err := e.Extract(context.Background(), pageURL)
	require.NoError(t, err)

	assert.Equal(t, "Apple iPhone 16 Pro", got.Name)
	assert.Equal(t, pageURL, got.SourceURL)
	assert.Equal(t, len(got.Specifications), got.TotalSpecs)
	assert.Equal(t, 33, got.TotalSpecs)

	specs := specMap(got.Specifications)
	assert.Equal(t, "Apple A18 Pro (3 nm)", specs["Performance/Processor"])
	assert.Equal(t, "Li-Ion 3582 mAh, non-removable", specs["Battery/Battery Capacity"])
	assert.Equal(t, "6.3 inches, 96.2 cm2 (~89.8% screen-to-body ratio)", specs["Display/Display Size"])
	assert.Equal(t, "Nano-SIM and eSIM Dual eSIM", specs["Design/SIM"])
	assert.Equal(t, "0.98 W/kg (head)", specs["Safety/SAR EU"])
	assert.Equal(t, "Available. Released 2024, September 20", specs["Launch/Status"])
	assert.Equal(t, "12 MP, f/1.9, 23mm (wide)", specs["Camera/Front Camera"])
	assert.Contains(t, specs["Camera/Main Camera"], "48 MP")

	// The rear camera video row comes first and wins.
	assert.Equal(t, "4K@24/25/30/60/100/120fps", specs["Camera/Video"])

	assert.Equal(t, []string{"8GB", "128GB", "256GB", "512GB"}, got.Variants)
	assert.Equal(t, []string{"Black Titanium", "White Titanium", "Natural Titanium", "Desert Titanium"}, got.Colors)
	assert.Equal(t, []string{"Xyzzy"}, unclassified)

	for i, s := range got.Specifications {
		assert.Equal(t, i, s.SortOrder)
		assert.NotEmpty(t, s.Value)
		assert.NotContains(t, s.Value, "*")
	}

	require.Len(t, got.KeySpecifications, 4)
	assert.Equal(t, "LTPO Super Retina XDR OLED, 120Hz, HDR10", got.KeySpecifications[0].Value)
	assert.Equal(t, "Apple A18 Pro (3 nm)", got.KeySpecifications[1].Value)
	assert.Contains(t, got.KeySpecifications[2].Value, "48 MP")
	assert.Equal(t, "Li-Ion 3582 mAh, non-removable", got.KeySpecifications[3].Value)
}

func TestExtractor_Extract_NetworkCollapseAndPricing(t *testing.T) {
	t.Parallel()

	srv := serveFile(t, "testdata/product.html")
	e := scrape.NewExtractor(scrape.NewHTTPFetcher())

	got, err := e.Extract(context.Background(), srv.URL+"/p.php")
	require.NoError(t, err)

	var network []domain.CanonicalSpec
	for _, s := range got.Specifications {
		assert.NotEqual(t, domain.GroupPricing, s.Group)
		assert.NotEqualf(t, "price", s.Name, "price spec leaked: %+v", s)
		if s.Group == domain.GroupNetwork {
			network = append(network, s)
		}
	}

	require.Len(t, network, 1)
	assert.Equal(t, "Network Technology", network[0].Name)
	assert.Equal(t, "GSM / CDMA / HSPA / EVDO / LTE / 5G", network[0].Value)
}

func TestExtractor_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		html       string
		wantReason string
	}{
		{
			name:       "no usable name",
			html:       `<html><head><title>GSMArena.com</title></head><body><h1>News</h1></body></html>`,
			wantReason: scrape.ReasonNoName,
		},
		{
			name:       "empty body",
			html:       ``,
			wantReason: scrape.ReasonNoName,
		},
		{
			name:       "name but no tables",
			html:       `<html><body><h1>Samsung Galaxy S24</h1><p>Coming soon</p></body></html>`,
			wantReason: scrape.ReasonNoSpecs,
		},
		{
			name: "only unmapped and skipped rows",
			html: `<html><body><h1>Samsung Galaxy S24</h1>
				<table><tr><td>Xyzzy</td><td>plugh</td></tr><tr><td>Price</td><td>$ 799</td></tr></table>
				</body></html>`,
			wantReason: scrape.ReasonNoSpecs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := scrape.NewExtractor(nil)
			_, err := e.Parse("https://example.com/x.php", []byte(tt.html))
			require.Error(t, err)

			var extErr *scrape.ExtractionError
			require.ErrorAs(t, err, &extErr)
			assert.Equal(t, tt.wantReason, extErr.Reason)
		})
	}
}

func TestExtractor_Parse_NameFallbacks(t *testing.T) {
	t.Parallel()

	row := `<table><tr><td>Chipset</td><td>Snapdragon 8 Gen 3</td></tr></table>`

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "primary title",
			html: `<h1 class="specs-phone-name-title">Samsung Galaxy S24 Ultra</h1><h1>Other</h1>`,
			want: "Samsung Galaxy S24 Ultra",
		},
		{
			name: "modelname attribute",
			html: `<h1 data-spec="modelname">Xiaomi 14</h1>`,
			want: "Xiaomi 14",
		},
		{
			name: "page title prefix",
			html: `<title>OnePlus 12 - Full phone specifications</title><h1>GSM Arena</h1>`,
			want: "OnePlus 12",
		},
		{
			name: "itemprop fallback",
			html: `<title>GSMArena.com</title><h1>ab</h1><span itemprop="name">Google Pixel 9</span>`,
			want: "Google Pixel 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := scrape.NewExtractor(nil)
			got, err := e.Parse("https://example.com/x.php", []byte("<html>"+tt.html+row+"</html>"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestExtractor_Parse_FirstWins(t *testing.T) {
	t.Parallel()

	html := `<h1>Nokia G42</h1><table>
		<tr><td>Chipset</td><td>Qualcomm SM4450 Snapdragon 4 Gen 2</td></tr>
		<tr><td>Processor</td><td>Something else</td></tr>
		<tr><td>Capacity</td><td>5000 mAh</td></tr>
		<tr><td>Battery capacity (rated)</td><td>4850 mAh</td></tr>
	</table>`

	got, err := scrape.NewExtractor(nil).Parse("https://example.com/x.php", []byte(html))
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, s := range got.Specifications {
		counts[s.Key()]++
	}
	for key, n := range counts {
		assert.Equal(t, 1, n, key)
	}

	specs := specMap(got.Specifications)
	assert.Equal(t, "Qualcomm SM4450 Snapdragon 4 Gen 2", specs["Performance/Processor"])
	assert.Equal(t, "5000 mAh", specs["Battery/Battery Capacity"])
}

func TestExtractor_Parse_KeySpecPadding(t *testing.T) {
	t.Parallel()

	html := `<h1>Mystery Phone X1</h1><table><tr><td>Size</td><td>6.1 inches</td></tr></table>`

	got, err := scrape.NewExtractor(nil).Parse("https://example.com/x.php", []byte(html))
	require.NoError(t, err)

	require.Len(t, got.KeySpecifications, 4)
	assert.Equal(t, "Display", got.KeySpecifications[0].Title)
	assert.Equal(t, "6.1 inches", got.KeySpecifications[0].Value)
	for i, ks := range got.KeySpecifications[1:] {
		assert.Equal(t, domain.NotFound, ks.Value, ks.Title)
		assert.Equal(t, i+1, ks.SortOrder)
	}
}

func TestExtractor_Parse_Variants(t *testing.T) {
	t.Parallel()

	html := `<h1>Samsung Galaxy A55</h1><table>
		<tr><td>Internal</td><td>128GB 6GB RAM, 256GB 8GB RAM, 512GB 12GB RAM</td></tr>
		<tr><td>RAM</td><td>8 GB, 12 GB</td></tr>
	</table>`

	got, err := scrape.NewExtractor(nil).Parse("https://example.com/x.php", []byte(html))
	require.NoError(t, err)

	assert.Subset(t, got.Variants, []string{"128GB", "256GB", "512GB"})
	assert.Equal(t, []string{"6GB", "8GB", "12GB", "128GB", "256GB", "512GB"}, got.Variants)
}

func TestExtractor_Extract_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := scrape.NewExtractor(nil).Extract(context.Background(), "not a url")
	require.ErrorIs(t, err, scrape.ErrInvalidURL)
}

func TestExtractor_Extract_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := scrape.NewExtractor(scrape.NewHTTPFetcher()).Extract(context.Background(), srv.URL+"/gone.php")
	require.Error(t, err)

	var tErr *scrape.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, http.StatusNotFound, tErr.StatusCode)
	assert.False(t, tErr.Timeout())
}
