// Package goquery implements parkscout parsers using CSS selectors over
// nps.gov markup. The selectors are narrowly matched against the site's
// current structure; a redesign surfaces as an EUPSTREAM error rather
// than a silent empty result.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/award/parkscout"
)

// Ensure DirectoryParser implements parkscout.DirectoryParser at compile time.
var _ parkscout.DirectoryParser = (*DirectoryParser)(nil)

// DirectoryParser extracts the state navigation dropdown from the
// nps.gov index page.
type DirectoryParser struct{}

// NewDirectoryParser creates a new DirectoryParser.
func NewDirectoryParser() *DirectoryParser {
	return &DirectoryParser{}
}

// ParseStateIndex builds the lowercase state name to absolute URL map
// from the index page's search dropdown. Hrefs are relative and are
// resolved by prepending baseURL.
func (p *DirectoryParser) ParseStateIndex(html, baseURL string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EINVALID, "failed to parse HTML: %v", err)
	}

	links := doc.Find("ul.dropdown-menu.SearchBar-keywordSearch a")
	if links.Length() == 0 {
		return nil, parkscout.Errorf(parkscout.EUPSTREAM, "state dropdown not found: source format changed")
	}

	states := make(map[string]string, links.Length())
	links.Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		states[strings.ToLower(sel.Text())] = baseURL + href
	})

	return states, nil
}
