package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/booking"
	"github.com/swiftwheels/swiftwheels-web/models"
	"github.com/swiftwheels/swiftwheels-web/search"
	templates "github.com/swiftwheels/swiftwheels-web/templates/html"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// draftCookie names the cookie carrying the opaque draft handle. The value
// is a random uuid with no meaning outside the draft store.
const draftCookie = "swiftwheels_draft"

// maxUploadBytes caps the proof-of-payment upload.
const maxUploadBytes = 8 << 20

// Booking exported for testing purposes
type Booking struct {
	Catalog upstream.CatalogService
	Service upstream.BookingService
	Drafts  *booking.Store
}

// StartHandler begins a brand-new draft. Every GET starts over: reloading
// the booking page deliberately discards whatever was in progress and issues
// a fresh display reference. A slug in the path pre-selects that vehicle by
// matching it against the list fetched within this same request.
func (b Booking) StartHandler(w http.ResponseWriter, r *http.Request) {
	fleet, err := b.Catalog.Fleet(r.Context())
	if err != nil {
		renderFetchError(w, r.URL.RequestURI(), err)
		return
	}

	wiz := booking.New()
	if raw := mux.Vars(r)["slug"]; raw != "" {
		vehicle, ok := search.MatchSlug(fleet, raw)
		if !ok {
			renderPage(w, http.StatusNotFound, "notfound", templates.NotFoundPage{
				Page:    templates.Page{Title: "Vehicle not found"},
				Vehicle: true,
			})
			return
		}
		wiz.SelectVehicle(*vehicle)
	}

	b.Drafts.Put(wiz)
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Value:    wiz.ID(),
		Path:     "/book",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	b.renderStep(w, r, wiz, fleet, http.StatusOK, nil, "")
}

// StepHandler drives one wizard action: bind the posted fields into the
// current step, then apply next, back or submit. A missing or expired draft
// sends the visitor back to a fresh step 1.
func (b Booking) StepHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(draftCookie)
	if err != nil {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}
	wiz, ok := b.Drafts.Get(cookie.Value)
	if !ok {
		http.Redirect(w, r, "/book", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		zap.S().With(err).Error("failed to parse booking form")
		b.renderStep(w, r, wiz, nil, http.StatusBadRequest, nil, "We could not read your form. Please try again.")
		return
	}

	// Bind the posted fields into the step the wizard is currently on. A
	// stale tab posting older-step fields only touches that step's record.
	var fleet []models.Vehicle
	switch wiz.Step() {
	case booking.StepTripDetails:
		fleet, err = b.Catalog.Fleet(r.Context())
		if err != nil {
			renderFetchError(w, "/book", err)
			return
		}
		b.bindTrip(r, wiz, fleet)
	case booking.StepContactInfo:
		wiz.SetCustomer(bindCustomer(r))
	case booking.StepPayment:
		wiz.SetPayment(bindPayment(r))
	}

	switch r.FormValue("action") {
	case "back":
		wiz.Prev()
		b.renderStep(w, r, wiz, fleet, http.StatusOK, nil, "")
	case "submit":
		b.submit(w, r, wiz)
	default:
		if err := wiz.Next(); err != nil {
			b.renderStep(w, r, wiz, fleet, http.StatusUnprocessableEntity, stepErrorFields(err), "")
			return
		}
		b.renderStep(w, r, wiz, fleet, http.StatusOK, nil, "")
	}
}

func (b Booking) submit(w http.ResponseWriter, r *http.Request, wiz *booking.Wizard) {
	err := wiz.Submit(r.Context(), b.Service)
	switch {
	case err == nil:
		// the draft is done: forget it and expire the cookie
		b.Drafts.Delete(wiz.ID())
		http.SetCookie(w, &http.Cookie{Name: draftCookie, Value: "", Path: "/book", MaxAge: -1})
		b.renderStep(w, r, wiz, nil, http.StatusOK, nil, "")
	case errors.Is(err, booking.ErrSubmitInFlight):
		b.renderStep(w, r, wiz, nil, http.StatusConflict, nil, "Your booking is already being submitted. Please wait a moment.")
	case isStepError(err):
		b.renderStep(w, r, wiz, nil, http.StatusUnprocessableEntity, stepErrorFields(err), "")
	default:
		zap.S().With(err).Error("failed to submit booking")
		b.renderStep(w, r, wiz, nil, http.StatusBadGateway, nil,
			"We could not submit your booking. Nothing you entered has been lost, please try again.")
	}
}

// bindTrip merges the posted step-1 fields and resolves the chosen vehicle
// against the catalog snapshot fetched in this request. Identifiers that are
// not in the snapshot are ignored: a vehicle must exist in the most recent
// fetch before the wizard may advance.
func (b Booking) bindTrip(r *http.Request, wiz *booking.Wizard, fleet []models.Vehicle) {
	wiz.SetTrip(models.TripDetails{
		PickupLocation:  r.FormValue("pickup_location"),
		DropoffLocation: r.FormValue("dropoff_location"),
		PickupDate:      r.FormValue("pickup_date"),
		PickupTime:      r.FormValue("pickup_time"),
		ReturnDate:      r.FormValue("return_date"),
	})
	if raw := r.FormValue("vehicle"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return
		}
		for _, v := range fleet {
			if v.ID == id {
				wiz.SelectVehicle(v)
				return
			}
		}
		zap.S().Warnw("posted vehicle id not in catalog snapshot", "vehicle", id)
	}
}

func bindCustomer(r *http.Request) models.CustomerInfo {
	return models.CustomerInfo{
		FullName:        r.FormValue("full_name"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		SpecialRequests: r.FormValue("special_requests"),
	}
}

func bindPayment(r *http.Request) models.PaymentInfo {
	info := models.PaymentInfo{
		Method:        models.PaymentMethod(r.FormValue("payment_method")),
		TransactionID: r.FormValue("transaction_id"),
	}
	file, header, err := r.FormFile("payment_proof")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if readErr != nil {
			zap.S().With(readErr).Error("failed to read payment proof upload")
			return info
		}
		info.Proof = &models.ProofFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return info
}

// renderStep renders the wizard's current step. Step 1 needs the vehicle
// list; it is fetched here only when the caller does not already hold the
// snapshot from this request.
func (b Booking) renderStep(w http.ResponseWriter, r *http.Request, wiz *booking.Wizard, fleet []models.Vehicle, status int, fieldErrors map[string]string, banner string) {
	step := wiz.Step()
	if step == booking.StepTripDetails && fleet == nil {
		var err error
		fleet, err = b.Catalog.Fleet(r.Context())
		if err != nil {
			renderFetchError(w, "/book", err)
			return
		}
	}
	renderPage(w, status, "booking", templates.BookingPage{
		Page: templates.Page{
			Title:       "Book a Car",
			Description: "Reserve your rental in four quick steps.",
			Active:      "book",
		},
		Step:          int(step),
		Vehicles:      fleet,
		Draft:         wiz.Draft(),
		Reference:     wiz.Reference(),
		MinPickupDate: wiz.MinPickupDate(),
		MinReturnDate: wiz.MinReturnDate(),
		Errors:        fieldErrors,
		Banner:        banner,
	})
}

func isStepError(err error) bool {
	var stepErr *booking.StepError
	return errors.As(err, &stepErr)
}

// stepErrorFields maps a guard failure onto template field keys. The bare
// no-vehicle error gets its own key so step 1 can point at the radio list.
func stepErrorFields(err error) map[string]string {
	if errors.Is(err, booking.ErrNoVehicle) {
		return map[string]string{"Vehicle": "required"}
	}
	var stepErr *booking.StepError
	if errors.As(err, &stepErr) {
		return stepErr.Fields
	}
	return map[string]string{"": err.Error()}
}
