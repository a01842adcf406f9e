package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftwheels/swiftwheels-web/models"
)

func TestRenderStaticPages(t *testing.T) {
	for _, name := range []string{"home", "about", "pricing"} {
		var buf bytes.Buffer
		err := Render(&buf, name, Page{Title: "t", Active: name})
		assert.NoError(t, err, name)
		assert.Contains(t, buf.String(), "SwiftWheels")
	}
}

func TestRenderFleetEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "fleet", FleetPage{
		Page:       Page{Title: "Our Fleet", Active: "fleet"},
		Vehicles:   []models.Vehicle{},
		Categories: models.Categories(),
		Category:   "SUV",
		Query:      "corolla",
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Showing 0 vehicles")
	assert.Contains(t, buf.String(), "No vehicles match your search.")
	// category pills stay rendered even with no results
	assert.Contains(t, buf.String(), "Hatchback")
}

func TestRenderBookingStepOne(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "booking", BookingPage{
		Page:          Page{Title: "Book a Car", Active: "book"},
		Step:          1,
		Vehicles:      []models.Vehicle{{ID: 7, Name: "Suzuki Swift", Category: models.CategoryHatchback}},
		Reference:     "SW-ABC234",
		MinPickupDate: "2025-06-01",
		MinReturnDate: "2025-06-01",
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Step 1 of 4")
	assert.Contains(t, buf.String(), "SW-ABC234")
	assert.Contains(t, buf.String(), "Suzuki Swift")
}

func TestRenderBookingConfirmation(t *testing.T) {
	var buf bytes.Buffer
	draft := models.BookingDraft{
		Trip:     models.TripDetails{VehicleName: "Toyota Corolla", PickupLocation: "Airport", PickupDate: "2025-06-01", PickupTime: "09:00", ReturnDate: "2025-06-03"},
		Customer: models.CustomerInfo{FullName: "Ali Khan"},
		Payment:  models.PaymentInfo{Method: models.PaymentCash},
	}
	err := Render(&buf, "booking", BookingPage{
		Page: Page{Title: "Book a Car", Active: "book"}, Step: 4, Draft: draft, Reference: "SW-ABC234",
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "same as pickup")
	assert.Contains(t, buf.String(), "Ali Khan")
}

func TestRenderContactRetainsInput(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "contact", ContactPage{
		Page:     Page{Title: "Contact", Active: "contact"},
		Subjects: models.ContactSubjects,
		Form:     models.ContactMessage{Name: "Ali Khan", Message: "hello there"},
		Failure:  true,
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ali Khan")
	assert.Contains(t, buf.String(), "hello there")
	assert.Contains(t, buf.String(), "could not send")
}

func TestRenderErrorAndNotFound(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, "error", ErrorPage{
		Page: Page{Title: "Error"}, Message: "could not load the fleet", RetryURL: "/fleet",
	}))
	assert.Contains(t, buf.String(), "Try again")

	buf.Reset()
	assert.NoError(t, Render(&buf, "notfound", NotFoundPage{Page: Page{Title: "Not Found"}, Vehicle: true}))
	assert.Contains(t, buf.String(), "Vehicle not found")
}
