package parkscout_test

import (
	"testing"

	"github.com/award/parkscout"
	"github.com/stretchr/testify/assert"
)

func TestSite_Info(t *testing.T) {
	t.Parallel()

	t.Run("formats name, category, address, and zipcode", func(t *testing.T) {
		t.Parallel()

		site := &parkscout.Site{
			Category: "National Park",
			Name:     "Isle Royale",
			Address:  "Houghton, MI",
			Zipcode:  "49931",
			Phone:    "906) 482-0984",
		}

		assert.Equal(t, "Isle Royale (National Park): Houghton, MI 49931", site.Info())
	})

	t.Run("ignores the phone field", func(t *testing.T) {
		t.Parallel()

		a := &parkscout.Site{Name: "Keweenaw", Category: "National Historical Park", Address: "Calumet, MI", Zipcode: "49913", Phone: "111"}
		b := &parkscout.Site{Name: "Keweenaw", Category: "National Historical Park", Address: "Calumet, MI", Zipcode: "49913", Phone: "222"}

		assert.Equal(t, a.Info(), b.Info())
	})

	t.Run("keeps blank category visible", func(t *testing.T) {
		t.Parallel()

		site := &parkscout.Site{Name: "North Country", Address: "Lowell, MI", Zipcode: "49331"}

		assert.Equal(t, "North Country (): Lowell, MI 49331", site.Info())
	})
}
