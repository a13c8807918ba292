package scrape

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// chromeNames are page titles that belong to the site, not a phone.
var chromeNames = map[string]bool{
	"gsm arena":    true,
	"gsmarena":     true,
	"gsmarena.com": true,
	"news":         true,
}

// nameSources are tried in order until one yields a plausible name.
var nameSources = []func(doc *goquery.Document) string{
	func(doc *goquery.Document) string {
		return nodeText(doc.Find("h1.specs-phone-name-title").First())
	},
	func(doc *goquery.Document) string {
		return nodeText(doc.Find(`h1[data-spec="modelname"]`).First())
	},
	func(doc *goquery.Document) string {
		return nodeText(doc.Find("h1").First())
	},
	func(doc *goquery.Document) string {
		title := nodeText(doc.Find("title").First())
		if i := strings.Index(title, " - "); i >= 0 {
			title = title[:i]
		}
		return strings.TrimSpace(title)
	},
}

// phoneName returns the product name, or "" when every source fails.
func phoneName(doc *goquery.Document) string {
	for _, src := range nameSources {
		if name := src(doc); plausibleName(name) {
			return name
		}
	}
	if name := nodeText(doc.Find(`[itemprop="name"]`).First()); plausibleName(name) {
		return name
	}
	return ""
}

func plausibleName(name string) bool {
	return utf8.RuneCountInString(name) >= 3 && !chromeNames[strings.ToLower(name)]
}
