package scrape

import (
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

// link is an anchor lifted from a search results page.
type link struct {
	Href  string
	Text  string
	Title string
}

// linkRule rejects anchors that cannot be product pages.
type linkRule struct {
	name   string
	reject func(l link) bool
}

var (
	navKeywords = []string{
		"news", "reviews", "videos", "featured", "search",
		"glossary", "tools", "makers", "calendar",
	}

	navWords = map[string]bool{
		"news": true, "reviews": true, "videos": true,
		"featured": true, "help": true, "about": true,
	}

	productHrefRe = regexp.MustCompile(`^[a-z0-9]+_[a-z0-9_\-]*-\d+\.php$`)

	brandRe = regexp.MustCompile(`(?i)\b(apple|iphone|samsung|galaxy|google|pixel|xiaomi|redmi|poco|` +
		`oneplus|huawei|honor|oppo|vivo|realme|motorola|moto|nokia|sony|xperia|lg|asus|` +
		`lenovo|zte|nubia|nothing|tecno|infinix|meizu|htc|blackberry|alcatel|tcl|fairphone|` +
		`ulefone|doogee|cat)\b`)

	modelRe = regexp.MustCompile(`(?i)\b(\d{1,4}|pro|max|ultra|plus|mini|lite|fold|flip|note|edge|` +
		`[a-z]{1,2}\d{1,3}[a-z]?)\b`)
)

// linkRules run in order. An anchor must survive every rule and then look
// like a product to be kept.
var linkRules = []linkRule{
	{"missing href or text", func(l link) bool {
		n := utf8.RuneCountInString(l.Text)
		return l.Href == "" || n < 3 || n > 150
	}},
	{"not a content page", func(l link) bool {
		href := strings.ToLower(l.Href)
		return !strings.HasSuffix(stripQuery(href), ".php") || strings.Contains(href, "javascript:")
	}},
	{"navigation keyword", func(l link) bool {
		href, text := strings.ToLower(l.Href), strings.ToLower(l.Text)
		for _, k := range navKeywords {
			if strings.Contains(href, k) || strings.Contains(text, k) {
				return true
			}
		}
		return false
	}},
	{"bare navigation word", func(l link) bool {
		return navWords[strings.ToLower(l.Text)]
	}},
}

// rejectReason reports the first rule that rejects l.
func rejectReason(l link) (string, bool) {
	for _, r := range linkRules {
		if r.reject(l) {
			return r.name, true
		}
	}
	if !looksLikeProduct(l) {
		return "not a product", true
	}
	return "", false
}

func looksLikeProduct(l link) bool {
	if productHrefRe.MatchString(path.Base(stripQuery(l.Href))) {
		return true
	}
	return brandRe.MatchString(l.Text) || modelRe.MatchString(l.Text)
}

func stripQuery(href string) string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		return href[:i]
	}
	return href
}
