package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/models"
	"github.com/swiftwheels/swiftwheels-web/search"
	templates "github.com/swiftwheels/swiftwheels-web/templates/html"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// Fleet exported for testing purposes
type Fleet struct {
	Catalog upstream.CatalogService
}

// ListHandler renders the catalog listing, narrowed by the category and q
// query parameters. The whole list is re-fetched on every visit; filtering
// happens here against the snapshot just received.
func (f Fleet) ListHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}
	query := r.URL.Query().Get("q")
	zap.S().Debugf("category: %v, q: %v", category, query)

	fleet, err := f.Catalog.Fleet(r.Context())
	if err != nil {
		renderFetchError(w, r.URL.RequestURI(), err)
		return
	}

	renderPage(w, http.StatusOK, "fleet", templates.FleetPage{
		Page: templates.Page{
			Title:       "Our Fleet",
			Description: "Browse every car available to rent today.",
			Active:      "fleet",
		},
		Vehicles:   search.Filter(fleet, category, query),
		Categories: models.Categories(),
		Category:   category,
		Query:      query,
	})
}

// DetailHandler renders a single vehicle looked up by slug. An unknown slug
// gets the dedicated vehicle-not-found state, distinct from a fetch failure.
func (f Fleet) DetailHandler(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	zap.S().Debugf("slug: %v", slug)

	vehicle, err := f.Catalog.VehicleBySlug(r.Context(), slug)
	if errors.Is(err, upstream.ErrVehicleNotFound) {
		renderPage(w, http.StatusNotFound, "notfound", templates.NotFoundPage{
			Page:    templates.Page{Title: "Vehicle not found"},
			Vehicle: true,
		})
		return
	}
	if err != nil {
		renderFetchError(w, r.URL.RequestURI(), err)
		return
	}

	renderPage(w, http.StatusOK, "vehicle", templates.VehiclePage{
		Page: templates.Page{
			Title:       vehicle.Name,
			Description: vehicle.Description,
			Active:      "fleet",
		},
		Vehicle: *vehicle,
	})
}
