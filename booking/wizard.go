// Package booking owns the multi-step reservation flow: a draft record, a
// step cursor, and the guards that decide when the flow may move forward.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swiftwheels/swiftwheels-web/models"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// Step is the wizard's cursor. Steps only ever advance one at a time and
// never move backwards past TripDetails or forwards past Confirmation.
type Step int

const (
	StepTripDetails Step = iota + 1
	StepContactInfo
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepTripDetails:
		return "trip details"
	case StepContactInfo:
		return "contact info"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	// ErrNoVehicle blocks the 1→2 transition until a vehicle is chosen.
	ErrNoVehicle = errors.New("select a vehicle to continue")
	// ErrSubmitInFlight rejects repeat submissions while one is outstanding,
	// so a double-click cannot create two bookings.
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	// ErrNotAtPayment is returned when Submit is called from any step other
	// than Payment.
	ErrNotAtPayment = errors.New("booking can only be submitted from the payment step")
	// ErrConfirmed is returned on any attempt to move a finished wizard.
	ErrConfirmed = errors.New("booking already confirmed")
)

// StepError reports which fields kept a step from advancing.
type StepError struct {
	Step   Step
	Fields map[string]string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step is incomplete (%d field(s))", e.Step, len(e.Fields))
}

// Wizard drives one booking draft across the four steps. A wizard belongs to
// exactly one visit; overlapping requests for the same visit are serialized
// by the mutex.
type Wizard struct {
	mu         sync.Mutex
	id         string
	reference  string
	step       Step
	draft      models.BookingDraft
	initDate   time.Time
	submitting bool
}

// New starts an empty draft at the trip details step with a fresh display
// reference. The pickup date lower bound is fixed now, at draft
// initialization, and is deliberately not re-checked against "now" at
// submission time.
func New() *Wizard {
	now := time.Now()
	return &Wizard{
		id:        uuid.New().String(),
		reference: newReference(),
		step:      StepTripDetails,
		initDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
}

// ID is the opaque handle the session cookie carries.
func (w *Wizard) ID() string { return w.id }

// Reference is the display-only booking reference. It is cosmetic, shown to
// the customer and forwarded for support correlation; it is never a key.
func (w *Wizard) Reference() string { return w.reference }

// Step returns the current cursor.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the current draft for rendering.
func (w *Wizard) Draft() models.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// SelectVehicle records the chosen vehicle. Identifier and display name are
// set together; they must never disagree once the wizard is past step 1.
func (w *Wizard) SelectVehicle(v models.Vehicle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Trip.VehicleID = v.ID
	w.draft.Trip.VehicleName = v.Name
}

// SetTrip merges posted step-1 fields into the draft. Vehicle selection is
// excluded: it only changes through SelectVehicle, after the identifier has
// been checked against the fetched catalog.
func (w *Wizard) SetTrip(t models.TripDetails) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t.VehicleID = w.draft.Trip.VehicleID
	t.VehicleName = w.draft.Trip.VehicleName
	w.draft.Trip = t
}

// SetCustomer merges posted step-2 fields into the draft.
func (w *Wizard) SetCustomer(c models.CustomerInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Customer = c
}

// SetPayment merges posted step-3 fields into the draft. Cash bookings do
// not collect a transaction reference or proof, so both are dropped when
// the method is cash.
func (w *Wizard) SetPayment(p models.PaymentInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p.Method == models.PaymentCash {
		p.TransactionID = ""
		p.Proof = nil
	}
	// an upload survives a failed submit; keep it unless replaced
	if p.Proof == nil && p.Method == models.PaymentBankTransfer {
		p.Proof = w.draft.Payment.Proof
	}
	w.draft.Payment = p
}

// MinPickupDate is the lower bound for the pickup date input.
func (w *Wizard) MinPickupDate() string {
	return w.initDate.Format(models.DateLayout)
}

// MinReturnDate is the lower bound for the return date input: the chosen
// pickup date when one is set, otherwise the draft initialization date.
func (w *Wizard) MinReturnDate() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, err := time.Parse(models.DateLayout, w.draft.Trip.PickupDate); err == nil {
		return p.Format(models.DateLayout)
	}
	return w.initDate.Format(models.DateLayout)
}

// Next advances one step when the current step's guard passes. On a failed
// guard the cursor does not move and the error names the offending fields.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepTripDetails:
		if err := w.validateTrip(); err != nil {
			return err
		}
		w.step = StepContactInfo
	case StepContactInfo:
		if err := models.Validate(w.draft.Customer); err != nil {
			return &StepError{Step: w.step, Fields: models.FieldErrors(err)}
		}
		w.step = StepPayment
	case StepPayment:
		// the only way past payment is a successful Submit
		return ErrNotAtPayment
	case StepConfirmation:
		return ErrConfirmed
	}
	return nil
}

// Prev steps back without clearing anything the customer already entered.
// Confirmation is terminal: there is no way back into a confirmed flow.
func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepContactInfo || w.step == StepPayment {
		w.step--
	}
}

// Submit validates the payment step, issues the upstream call exactly once,
// and advances to confirmation on success. On failure the cursor stays at
// payment and the draft is retained for a manual retry.
func (w *Wizard) Submit(ctx context.Context, svc upstream.BookingService) error {
	w.mu.Lock()
	if w.step == StepConfirmation {
		w.mu.Unlock()
		return ErrConfirmed
	}
	if w.step != StepPayment {
		w.mu.Unlock()
		return ErrNotAtPayment
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := models.Validate(w.draft.Payment); err != nil {
		w.mu.Unlock()
		return &StepError{Step: StepPayment, Fields: models.FieldErrors(err)}
	}
	w.submitting = true
	draft := w.draft
	reference := w.reference
	w.mu.Unlock()

	err := svc.Submit(ctx, draft, reference)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		return err
	}
	w.step = StepConfirmation
	return nil
}

// validateTrip is the strengthened step-1 guard: vehicle selection plus all
// declared-required trip fields, with date ordering on top. Callers hold the
// mutex.
func (w *Wizard) validateTrip() error {
	if w.draft.Trip.VehicleID == 0 {
		return ErrNoVehicle
	}
	if err := models.Validate(w.draft.Trip); err != nil {
		return &StepError{Step: StepTripDetails, Fields: models.FieldErrors(err)}
	}
	pickup, err := time.Parse(models.DateLayout, w.draft.Trip.PickupDate)
	if err != nil {
		return &StepError{Step: StepTripDetails, Fields: map[string]string{"PickupDate": "bookingdate"}}
	}
	ret, err := time.Parse(models.DateLayout, w.draft.Trip.ReturnDate)
	if err != nil {
		return &StepError{Step: StepTripDetails, Fields: map[string]string{"ReturnDate": "bookingdate"}}
	}
	fields := map[string]string{}
	if pickup.Before(w.initDate) {
		fields["PickupDate"] = "pickup date is in the past"
	}
	if ret.Before(pickup) {
		fields["ReturnDate"] = "return date precedes pickup date"
	}
	if len(fields) > 0 {
		return &StepError{Step: StepTripDetails, Fields: fields}
	}
	return nil
}
