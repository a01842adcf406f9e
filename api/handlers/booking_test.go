package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/swiftwheels/swiftwheels-web/api/handlers"
	"github.com/swiftwheels/swiftwheels-web/booking"
	"github.com/swiftwheels/swiftwheels-web/models"
	"github.com/swiftwheels/swiftwheels-web/upstream/mocks"
)

func newBooking(catalog *mocks.CatalogService, svc *mocks.BookingService) handlers.Booking {
	return handlers.Booking{
		Catalog: catalog,
		Service: svc,
		Drafts:  booking.NewStore(30 * time.Minute),
	}
}

// startBooking performs the GET that opens the wizard and returns the draft
// cookie the browser would carry into every later POST.
func startBooking(t *testing.T, b handlers.Booking) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest("GET", "/book", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StartHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "swiftwheels_draft" {
			return cookie
		}
	}
	t.Fatal("draft cookie was not set")
	return nil
}

func postStep(b handlers.Booking, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/book", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StepHandler).ServeHTTP(rr, req)
	return rr
}

func tripForm() url.Values {
	today := time.Now().Format(models.DateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	return url.Values{
		"action":          {"next"},
		"vehicle":         {"3"},
		"pickup_location": {"Airport Terminal 1"},
		"pickup_date":     {today},
		"pickup_time":     {"10:00"},
		"return_date":     {tomorrow},
	}
}

func customerForm() url.Values {
	return url.Values{
		"action":    {"next"},
		"full_name": {"Ali Khan"},
		"email":     {"ali@example.com"},
		"phone":     {"+92 300 1234567"},
	}
}

func TestBooking_StartHandler(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})

	req := httptest.NewRequest("GET", "/book", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StartHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 1 of 4")
	assert.Contains(t, rr.Body.String(), "Toyota RAV4")
	assert.Equal(t, 1, b.Drafts.Len())
}

func TestBooking_StartHandlerPreselectsBySlug(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})

	req := httptest.NewRequest("GET", "/book/toyota-rav4", nil)
	req = mux.SetURLVars(req, map[string]string{"slug": "toyota-rav4"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StartHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `value="3" checked`)
}

func TestBooking_StartHandlerUnknownSlug(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})

	req := httptest.NewRequest("GET", "/book/no-such-car", nil)
	req = mux.SetURLVars(req, map[string]string{"slug": "no-such-car"})
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StartHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Vehicle not found")
	assert.Equal(t, 0, b.Drafts.Len())
}

func TestBooking_StartHandlerReloadDiscardsDraft(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})

	first := startBooking(t, b)
	second := startBooking(t, b)

	// a reload always mints a brand-new draft with a new reference
	assert.NotEqual(t, first.Value, second.Value)
	assert.Equal(t, 2, b.Drafts.Len())
}

func TestBooking_StartHandlerUpstreamError(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(nil, errors.New("mocked-error"))
	b := newBooking(catalog, &mocks.BookingService{})

	req := httptest.NewRequest("GET", "/book", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StartHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "Try again")
}

func TestBooking_StepHandlerWithoutCookieStartsOver(t *testing.T) {
	b := newBooking(&mocks.CatalogService{}, &mocks.BookingService{})

	req := httptest.NewRequest("POST", "/book", strings.NewReader(tripForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	http.HandlerFunc(b.StepHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/book", rr.Header().Get("Location"))
}

func TestBooking_StepHandlerExpiredDraftStartsOver(t *testing.T) {
	b := newBooking(&mocks.CatalogService{}, &mocks.BookingService{})

	stale := &http.Cookie{Name: "swiftwheels_draft", Value: "gone"}
	rr := postStep(b, stale, tripForm())

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/book", rr.Header().Get("Location"))
}

func TestBooking_StepHandlerMissingTripFieldStays(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})
	cookie := startBooking(t, b)

	form := tripForm()
	form.Del("pickup_location")
	rr := postStep(b, cookie, form)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 1 of 4")
	assert.Contains(t, rr.Body.String(), "Pickup location is required")
	// the rest of the trip input survives the failed attempt
	assert.Contains(t, rr.Body.String(), `value="3" checked`)
}

func TestBooking_StepHandlerUnknownVehicleStays(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})
	cookie := startBooking(t, b)

	form := tripForm()
	form.Set("vehicle", "99") // not in the snapshot
	rr := postStep(b, cookie, form)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 1 of 4")
	assert.Contains(t, rr.Body.String(), "Select a vehicle to continue")
}

func TestBooking_BackFromContactKeepsTrip(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	b := newBooking(catalog, &mocks.BookingService{})
	cookie := startBooking(t, b)

	rr := postStep(b, cookie, tripForm())
	assert.Contains(t, rr.Body.String(), "Step 2 of 4")

	rr = postStep(b, cookie, url.Values{"action": {"back"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 1 of 4")
	assert.Contains(t, rr.Body.String(), "Airport Terminal 1")
	assert.Contains(t, rr.Body.String(), `value="3" checked`)
}

func TestBooking_FullFlowCashPayment(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	svc := &mocks.BookingService{}
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(draft models.BookingDraft) bool {
		return draft.Trip.VehicleID == 3 &&
			draft.Customer.FullName == "Ali Khan" &&
			draft.Payment.Method == models.PaymentCash
	}), mock.AnythingOfType("string")).Return(nil)

	b := newBooking(catalog, svc)
	cookie := startBooking(t, b)

	rr := postStep(b, cookie, tripForm())
	assert.Contains(t, rr.Body.String(), "Step 2 of 4")

	rr = postStep(b, cookie, customerForm())
	assert.Contains(t, rr.Body.String(), "Step 3 of 4")

	rr = postStep(b, cookie, url.Values{"action": {"submit"}, "payment_method": {"cash"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Your booking request is in!")
	assert.Contains(t, rr.Body.String(), "Toyota RAV4")
	assert.Contains(t, rr.Body.String(), "same as pickup")
	svc.AssertExpectations(t)

	// the completed draft is gone and the cookie is expired
	assert.Equal(t, 0, b.Drafts.Len())
	var expired bool
	for _, c := range rr.Result().Cookies() {
		if c.Name == "swiftwheels_draft" && c.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestBooking_SubmitBankTransferWithoutProofStays(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	svc := &mocks.BookingService{}
	b := newBooking(catalog, svc)
	cookie := startBooking(t, b)

	postStep(b, cookie, tripForm())
	postStep(b, cookie, customerForm())

	rr := postStep(b, cookie, url.Values{"action": {"submit"}, "payment_method": {"bank-transfer"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 3 of 4")
	assert.Contains(t, rr.Body.String(), "transaction reference")
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestBooking_SubmitFailureKeepsDraftForRetry(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Fleet", mock.Anything).Return(testFleet(), nil)
	svc := &mocks.BookingService{}
	svc.On("Submit", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(errors.New("mocked-error")).Once()
	svc.On("Submit", mock.Anything, mock.Anything, mock.AnythingOfType("string")).
		Return(nil).Once()

	b := newBooking(catalog, svc)
	cookie := startBooking(t, b)

	postStep(b, cookie, tripForm())
	postStep(b, cookie, customerForm())

	rr := postStep(b, cookie, url.Values{"action": {"submit"}, "payment_method": {"cash"}})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Body.String(), "Step 3 of 4")
	assert.Contains(t, rr.Body.String(), "We could not submit your booking")
	assert.Equal(t, 1, b.Drafts.Len())

	// a manual retry goes through
	rr = postStep(b, cookie, url.Values{"action": {"submit"}, "payment_method": {"cash"}})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Your booking request is in!")
	assert.Equal(t, 0, b.Drafts.Len())
}
