package handlers

import (
	"net/http"

	templates "github.com/swiftwheels/swiftwheels-web/templates/html"
)

// Pages serves the static marketing pages
type Pages struct{}

// HomeHandler renders the landing page
func (p Pages) HomeHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "home", templates.Page{
		Title:       "Car Rental Made Simple",
		Description: "Rent hatchbacks, sedans, SUVs and luxury cars at honest daily rates.",
		Active:      "home",
	})
}

// AboutHandler renders the about page
func (p Pages) AboutHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "about", templates.Page{
		Title:       "About Us",
		Description: "The story behind SwiftWheels.",
		Active:      "about",
	})
}

// PricingHandler renders the static plan comparison
func (p Pages) PricingHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "pricing", templates.Page{
		Title:       "Plans & Pricing",
		Description: "Daily rates per vehicle category, no hidden fees.",
		Active:      "pricing",
	})
}
