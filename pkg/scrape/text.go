package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cleanText strips footnote asterisks and collapses all whitespace,
// including non-breaking spaces, to single spaces.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	return strings.Join(strings.Fields(s), " ")
}

// nodeText returns the cleaned text of a selection with <br> treated as a
// space, so multi-line cells do not run words together.
func nodeText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find("br").ReplaceWithHtml(" ")
	return cleanText(clone.Text())
}
