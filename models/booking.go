package models

// PaymentMethod is how the customer intends to pay. Payment is never
// processed here; the chosen method only changes which fields the booking
// wizard collects before submission.
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentCash         PaymentMethod = "cash"
)

// DateLayout is the wire format for all booking dates.
const DateLayout = "2006-01-02"

// TripDetails carries the step-1 fields of a booking draft. VehicleID and
// VehicleName are set together via the wizard and must never disagree once
// the wizard has moved past step 1.
type TripDetails struct {
	VehicleID       int64  `form:"vehicle"`
	VehicleName     string `form:"-"`
	PickupLocation  string `form:"pickup_location" validate:"required"`
	DropoffLocation string `form:"dropoff_location"`
	PickupDate      string `form:"pickup_date" validate:"required,bookingdate"`
	PickupTime      string `form:"pickup_time" validate:"required"`
	ReturnDate      string `form:"return_date" validate:"required,bookingdate"`
}

// CustomerInfo carries the step-2 fields of a booking draft.
type CustomerInfo struct {
	FullName        string `form:"full_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Phone           string `form:"phone" validate:"required"`
	SpecialRequests string `form:"special_requests"`
}

// ProofFile is an uploaded proof-of-payment attachment, held in memory for
// the lifetime of one submission and forwarded verbatim to the booking API.
type ProofFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PaymentInfo carries the step-3 fields of a booking draft. Transaction
// reference and proof are only collected, and only required, for bank
// transfers.
type PaymentInfo struct {
	Method        PaymentMethod `form:"payment_method" validate:"required,oneof=bank-transfer cash"`
	TransactionID string        `form:"transaction_id" validate:"required_if=Method bank-transfer"`
	Proof         *ProofFile    `form:"payment_proof" validate:"required_if=Method bank-transfer"`
}

// BookingDraft is the in-progress reservation request owned by the booking
// wizard for the duration of one visit. It is split into step-scoped
// sub-records so a step can only touch the fields that belong to it.
type BookingDraft struct {
	Trip     TripDetails
	Customer CustomerInfo
	Payment  PaymentInfo
}
