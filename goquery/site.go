package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/award/parkscout"
)

// Ensure SiteParser implements parkscout.SiteParser at compile time.
var _ parkscout.SiteParser = (*SiteParser)(nil)

// SiteParser extracts site listings and site detail records from nps.gov
// state pages.
type SiteParser struct{}

// NewSiteParser creates a new SiteParser.
func NewSiteParser() *SiteParser {
	return &SiteParser{}
}

// ParseSiteLinks returns the absolute detail-page URL for every site
// entry on a state directory page, in document order. The last list
// entry is navigation chrome, not a site, and is skipped.
func (p *SiteParser) ParseSiteLinks(html, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EINVALID, "failed to parse HTML: %v", err)
	}

	entries := doc.Find("li.clearfix")
	if entries.Length() == 0 {
		return nil, parkscout.Errorf(parkscout.EUPSTREAM, "site list not found: source format changed")
	}

	var perr error
	var links []string
	entries.Slice(0, entries.Length()-1).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Find("h3 a").Attr("href")
		if !ok {
			perr = parkscout.Errorf(parkscout.EUPSTREAM, "site entry link not found: source format changed")
			return false
		}
		links = append(links, baseURL+href)
		return true
	})
	if perr != nil {
		return nil, perr
	}

	return links, nil
}

// ParseSiteDetail builds a Site from one site detail page. The address
// is the locality and region joined with ", ". The zipcode is trimmed of
// surrounding whitespace and exactly the first character of the phone
// text is stripped (the markup carries a fixed leading character; this
// is not a general phone normalization).
func (p *SiteParser) ParseSiteDetail(html string) (*parkscout.Site, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, parkscout.Errorf(parkscout.EINVALID, "failed to parse HTML: %v", err)
	}

	name, err := requiredText(doc, "a.Hero-title")
	if err != nil {
		return nil, err
	}
	category, err := requiredText(doc, "span.Hero-designation")
	if err != nil {
		return nil, err
	}
	locality, err := requiredText(doc, `span[itemprop="addressLocality"]`)
	if err != nil {
		return nil, err
	}
	region, err := requiredText(doc, `span[itemprop="addressRegion"]`)
	if err != nil {
		return nil, err
	}
	zipcode, err := requiredText(doc, `span[itemprop="postalCode"]`)
	if err != nil {
		return nil, err
	}
	phone, err := requiredText(doc, `span[itemprop="telephone"]`)
	if err != nil {
		return nil, err
	}
	if len(phone) > 0 {
		phone = phone[1:]
	}

	return &parkscout.Site{
		Category: category,
		Name:     name,
		Address:  locality + ", " + region,
		Zipcode:  strings.TrimSpace(zipcode),
		Phone:    phone,
	}, nil
}

// requiredText returns the text of the first element matching selector,
// or an EUPSTREAM error when the element is absent.
func requiredText(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", parkscout.Errorf(parkscout.EUPSTREAM, "%s not found: source format changed", selector)
	}
	return sel.Text(), nil
}
