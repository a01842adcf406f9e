package handlers

import (
	"net/http"

	"go.uber.org/zap"

	templates "github.com/swiftwheels/swiftwheels-web/templates/html"
)

// renderPage writes a template with the given status. A render failure at
// this point can only be logged: the status line is already on the wire.
func renderPage(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, name, data); err != nil {
		zap.S().Errorw("failed to render page", "template", name, "error", err)
	}
}

// renderFetchError is the full-page failure state for catalog loads: log the
// cause, tell the user, and give them a manual way to retry. There is no
// automatic retry anywhere in the site.
func renderFetchError(w http.ResponseWriter, retryURL string, err error) {
	zap.S().With(err).Error("failed to load data from the rental API")
	renderPage(w, http.StatusBadGateway, "error", templates.ErrorPage{
		Page:     templates.Page{Title: "Something went wrong"},
		Message:  "We could not load our fleet right now.",
		RetryURL: retryURL,
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusNotFound, "notfound", templates.NotFoundPage{
		Page: templates.Page{Title: "Page not found"},
	})
}
