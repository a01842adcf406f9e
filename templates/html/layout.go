// Package templates renders the site's pages. Every page is defined as a Go
// template alongside the shared navigation/footer chrome; handlers pass a
// page-specific data struct and a template name to Render.
package templates

import (
	"html/template"
	"io"

	"github.com/swiftwheels/swiftwheels-web/models"
)

// Page carries the fields every page shares with the layout chrome.
type Page struct {
	Title       string
	Description string
	Active      string
}

// FleetPage feeds the catalog listing.
type FleetPage struct {
	Page
	Vehicles   []models.Vehicle
	Categories []models.Category
	Category   string
	Query      string
}

// VehiclePage feeds the vehicle detail view.
type VehiclePage struct {
	Page
	Vehicle models.Vehicle
}

// ContactPage feeds the contact form in all of its states: fresh, submitted
// successfully, failed with retained input, or invalid with field errors.
type ContactPage struct {
	Page
	Subjects []string
	Form     models.ContactMessage
	Errors   map[string]string
	Success  bool
	Failure  bool
}

// BookingPage feeds every step of the booking wizard.
type BookingPage struct {
	Page
	Step          int
	Vehicles      []models.Vehicle
	Draft         models.BookingDraft
	Reference     string
	MinPickupDate string
	MinReturnDate string
	Errors        map[string]string
	Banner        string
}

// ErrorPage feeds the full-page fetch failure state.
type ErrorPage struct {
	Page
	Message  string
	RetryURL string
}

// NotFoundPage feeds both the unknown-route page and the dedicated
// vehicle-not-found state.
type NotFoundPage struct {
	Page
	Vehicle bool
}

var site = template.Must(template.New("site").Parse(
	layoutHTML +
		homeHTML +
		aboutHTML +
		pricingHTML +
		fleetHTML +
		vehicleHTML +
		contactHTML +
		bookingHTML +
		errorHTML +
		notFoundHTML))

// Render writes the named page into w.
func Render(w io.Writer, name string, data interface{}) error {
	return site.ExecuteTemplate(w, name, data)
}

const layoutHTML = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | SwiftWheels Car Rental</title>
  {{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; color: #1f2937; }
    a { color: #2563eb; text-decoration: none; }
    .nav { display: flex; gap: 24px; align-items: center; padding: 16px 32px; border-bottom: 1px solid #e5e7eb; }
    .nav .brand { font-weight: 700; font-size: 20px; color: #111827; }
    .nav a.active { color: #111827; font-weight: 600; }
    .wrap { max-width: 960px; margin: 0 auto; padding: 32px; }
    .banner { padding: 12px 16px; border-radius: 6px; margin-bottom: 16px; }
    .banner.ok { background: #ecfdf5; color: #065f46; }
    .banner.err { background: #fef2f2; color: #991b1b; }
    .field-error { color: #991b1b; font-size: 13px; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 20px; }
    .card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; }
    .pill { display: inline-block; padding: 4px 12px; border: 1px solid #d1d5db; border-radius: 999px; margin-right: 6px; }
    .pill.active { background: #2563eb; color: #fff; border-color: #2563eb; }
    .btn { display: inline-block; background: #2563eb; color: #fff; padding: 10px 20px; border: none; border-radius: 6px; cursor: pointer; }
    .btn.secondary { background: #6b7280; }
    .steps { color: #6b7280; margin-bottom: 24px; }
    label { display: block; margin: 12px 0 4px; font-weight: 600; }
    input, select, textarea { width: 100%; max-width: 420px; padding: 8px; border: 1px solid #d1d5db; border-radius: 6px; }
    .footer { border-top: 1px solid #e5e7eb; padding: 24px 32px; color: #6b7280; font-size: 13px; margin-top: 48px; }
  </style>
</head>
<body>
<nav class="nav">
  <span class="brand">SwiftWheels</span>
  <a href="/" {{if eq .Active "home"}}class="active"{{end}}>Home</a>
  <a href="/fleet" {{if eq .Active "fleet"}}class="active"{{end}}>Our Fleet</a>
  <a href="/pricing" {{if eq .Active "pricing"}}class="active"{{end}}>Pricing</a>
  <a href="/about" {{if eq .Active "about"}}class="active"{{end}}>About</a>
  <a href="/contact" {{if eq .Active "contact"}}class="active"{{end}}>Contact</a>
  <a href="/book" {{if eq .Active "book"}}class="active"{{end}}>Book Now</a>
</nav>
<div class="wrap">
{{end}}

{{define "footer"}}
</div>
<footer class="footer">
  <p>&copy; SwiftWheels Car Rental &middot; <a href="/contact">Contact us</a> &middot; <a href="/fleet">Browse the fleet</a></p>
</footer>
</body>
</html>
{{end}}
`
