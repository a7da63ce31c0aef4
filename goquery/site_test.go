package goquery_test

import (
	"testing"

	"github.com/award/parkscout"
	"github.com/award/parkscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPage = `<html><body>
	<a class="Hero-title" href="/isro/index.htm">Isle Royale</a>
	<span class="Hero-designation">National Park</span>
	<p class="adr">
		<span itemprop="addressLocality">Houghton</span>,
		<span itemprop="addressRegion">MI</span>
		<span itemprop="postalCode"> 49931 </span>
	</p>
	<span itemprop="telephone">&#10;906) 482-0984</span>
</body></html>`

func TestSiteParser_ParseSiteLinks(t *testing.T) {
	t.Parallel()

	parser := goquery.NewSiteParser()

	t.Run("resolves entry links and skips the trailing entry", func(t *testing.T) {
		t.Parallel()

		html := `<ul id="list_parks">
			<li class="clearfix"><h3><a href="/isro/index.htm">Isle Royale</a></h3></li>
			<li class="clearfix"><h3><a href="/kewe/index.htm">Keweenaw</a></h3></li>
			<li class="clearfix"><div>More parks in neighboring states</div></li>
		</ul>`

		links, err := parser.ParseSiteLinks(html, "https://www.nps.gov")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://www.nps.gov/isro/index.htm",
			"https://www.nps.gov/kewe/index.htm",
		}, links)
	})

	t.Run("returns upstream error when the list is absent", func(t *testing.T) {
		t.Parallel()

		_, err := parser.ParseSiteLinks("<html><body><p>redesigned</p></body></html>", "https://www.nps.gov")
		require.Error(t, err)
		assert.Equal(t, parkscout.EUPSTREAM, parkscout.ErrorCode(err))
	})

	t.Run("returns upstream error when an entry has no link", func(t *testing.T) {
		t.Parallel()

		html := `<ul>
			<li class="clearfix"><h3>Isle Royale</h3></li>
			<li class="clearfix"><div>trailing</div></li>
		</ul>`

		_, err := parser.ParseSiteLinks(html, "https://www.nps.gov")
		require.Error(t, err)
		assert.Equal(t, parkscout.EUPSTREAM, parkscout.ErrorCode(err))
	})
}

func TestSiteParser_ParseSiteDetail(t *testing.T) {
	t.Parallel()

	parser := goquery.NewSiteParser()

	t.Run("extracts all fields", func(t *testing.T) {
		t.Parallel()

		site, err := parser.ParseSiteDetail(detailPage)
		require.NoError(t, err)

		assert.Equal(t, &parkscout.Site{
			Category: "National Park",
			Name:     "Isle Royale",
			Address:  "Houghton, MI",
			Zipcode:  "49931",
			Phone:    "906) 482-0984",
		}, site)
	})

	t.Run("strips exactly the first phone character", func(t *testing.T) {
		t.Parallel()

		html := `<a class="Hero-title">X</a><span class="Hero-designation">Y</span>
			<span itemprop="addressLocality">A</span><span itemprop="addressRegion">B</span>
			<span itemprop="postalCode">1</span><span itemprop="telephone">(616) 319-7906</span>`

		site, err := parser.ParseSiteDetail(html)
		require.NoError(t, err)

		assert.Equal(t, "616) 319-7906", site.Phone)
	})

	t.Run("keeps blank category", func(t *testing.T) {
		t.Parallel()

		html := `<a class="Hero-title">Father Marquette</a><span class="Hero-designation"></span>
			<span itemprop="addressLocality">Saint Ignace</span><span itemprop="addressRegion">MI</span>
			<span itemprop="postalCode">49781</span><span itemprop="telephone">x906-643-8620</span>`

		site, err := parser.ParseSiteDetail(html)
		require.NoError(t, err)

		assert.Empty(t, site.Category)
	})

	t.Run("returns upstream error for a missing element", func(t *testing.T) {
		t.Parallel()

		html := `<span class="Hero-designation">National Park</span>
			<span itemprop="addressLocality">Houghton</span><span itemprop="addressRegion">MI</span>
			<span itemprop="postalCode">49931</span><span itemprop="telephone">_906</span>`

		_, err := parser.ParseSiteDetail(html)
		require.Error(t, err)
		assert.Equal(t, parkscout.EUPSTREAM, parkscout.ErrorCode(err))
	})
}
