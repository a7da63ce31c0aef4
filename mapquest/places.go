package mapquest

import (
	"encoding/json"

	"github.com/award/parkscout"
	"github.com/tidwall/gjson"
)

// Places extracts display records from a raw radius search response.
// The response shape is never validated on the fetch path, so extraction
// is tolerant here instead: a response without searchResults yields no
// places, and results with missing fields yield empty strings that the
// caller renders as placeholders.
func Places(raw json.RawMessage) []parkscout.Place {
	var places []parkscout.Place
	gjson.GetBytes(raw, "searchResults").ForEach(func(_, result gjson.Result) bool {
		fields := result.Get("fields")
		places = append(places, parkscout.Place{
			Name:     fields.Get("name").String(),
			Category: fields.Get("group_sic_code_name").String(),
			Address:  fields.Get("address").String(),
			City:     fields.Get("city").String(),
		})
		return true
	})
	return places
}
