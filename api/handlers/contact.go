package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/models"
	templates "github.com/swiftwheels/swiftwheels-web/templates/html"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// Contact exported for testing purposes
type Contact struct {
	Service upstream.ContactService
}

func contactPage() templates.ContactPage {
	return templates.ContactPage{
		Page: templates.Page{
			Title:       "Contact Us",
			Description: "Questions about a booking or our fleet? Send us a message.",
			Active:      "contact",
		},
		Subjects: models.ContactSubjects,
	}
}

// FormHandler renders a fresh contact form
func (c Contact) FormHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, http.StatusOK, "contact", contactPage())
}

// SubmitHandler validates the message and forwards it to the rental API.
// Success clears the form behind a banner; any failure keeps every entered
// field so the user can correct and resubmit by hand.
func (c Contact) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderFetchError(w, "/contact", err)
		return
	}
	msg := models.ContactMessage{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}

	page := contactPage()
	if err := models.Validate(msg); err != nil {
		page.Form = msg
		page.Errors = models.FieldErrors(err)
		renderPage(w, http.StatusUnprocessableEntity, "contact", page)
		return
	}

	if err := c.Service.Send(r.Context(), msg); err != nil {
		zap.S().With(err).Error("failed to deliver contact message")
		page.Form = msg
		page.Failure = true
		renderPage(w, http.StatusBadGateway, "contact", page)
		return
	}

	page.Success = true
	renderPage(w, http.StatusOK, "contact", page)
}
