// Package search narrows an already-fetched vehicle list. Everything here is
// pure: no I/O, no failure modes, callers re-run it on every change to the
// list, category or query.
package search

import (
	"strings"

	gosimple "github.com/gosimple/slug"

	"github.com/swiftwheels/swiftwheels-web/models"
)

// Filter returns the stable subsequence of list matching the category
// selector and the free-text query. The sentinel "All" (or an empty
// selector) matches every category; an empty query matches every vehicle.
// The query matches case-insensitively against name and description.
// An empty result is a valid result, not an error.
func Filter(list []models.Vehicle, category, query string) []models.Vehicle {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Vehicle, 0, len(list))
	for _, v := range list {
		if category != "" && category != models.CategoryAll && string(v.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(v.Name), q) &&
			!strings.Contains(strings.ToLower(v.Description), q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// MatchSlug finds a vehicle in the list by slug. Route parameters arrive
// user-typed, so both sides are normalized before comparison. The linear
// scan is intentional: the booking flow matches against the list it just
// fetched rather than issuing a second lookup.
func MatchSlug(list []models.Vehicle, raw string) (*models.Vehicle, bool) {
	want := gosimple.Make(raw)
	if want == "" {
		return nil, false
	}
	for i := range list {
		if gosimple.Make(list[i].Slug) == want {
			return &list[i], true
		}
	}
	return nil, false
}
