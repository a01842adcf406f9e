package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/models"
)

// BookingService submits completed booking drafts to the rental API.
type BookingService interface {
	Submit(ctx context.Context, draft models.BookingDraft, reference string) error
}

type bookingService struct {
	client *Client
}

// NewBookingService creates a new instance of BookingService
func NewBookingService(client *Client) BookingService {
	return &bookingService{client: client}
}

// aliasedFields duplicates customer and location fields under the key names
// the legacy booking backend still reads. Both keys must be present on the
// wire; do not remove the aliases without coordinating an API change.
var aliasedFields = map[string]string{
	"customer_name":    "name",
	"customer_email":   "email",
	"customer_phone":   "phone",
	"pickup_location":  "pickup",
	"dropoff_location": "dropoff",
}

// Submit serializes the whole draft as one multipart payload. All fields
// travel as text parts; the proof of payment, when present, is attached as
// a binary part and forwarded untouched.
func (s *bookingService) Submit(ctx context.Context, draft models.BookingDraft, reference string) error {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	fields := []struct {
		key   string
		value string
	}{
		{"vehicle", strconv.FormatInt(draft.Trip.VehicleID, 10)},
		{"pickup_location", draft.Trip.PickupLocation},
		{"dropoff_location", draft.Trip.DropoffLocation},
		{"pickup_date", draft.Trip.PickupDate},
		{"pickup_time", draft.Trip.PickupTime},
		{"return_date", draft.Trip.ReturnDate},
		{"customer_name", draft.Customer.FullName},
		{"customer_email", draft.Customer.Email},
		{"customer_phone", draft.Customer.Phone},
		{"special_requests", draft.Customer.SpecialRequests},
		{"payment_method", string(draft.Payment.Method)},
		{"booking_reference", reference},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.key, f.value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", f.key, err)
		}
		if alias, ok := aliasedFields[f.key]; ok {
			if err := mw.WriteField(alias, f.value); err != nil {
				return fmt.Errorf("failed to write field %s: %w", alias, err)
			}
		}
	}
	if draft.Payment.Method == models.PaymentBankTransfer {
		if err := mw.WriteField("transaction_id", draft.Payment.TransactionID); err != nil {
			return fmt.Errorf("failed to write field transaction_id: %w", err)
		}
	}
	if proof := draft.Payment.Proof; proof != nil {
		part, err := mw.CreatePart(proofPartHeader(proof))
		if err != nil {
			return fmt.Errorf("failed to create proof part: %w", err)
		}
		if _, err := part.Write(proof.Data); err != nil {
			return fmt.Errorf("failed to write proof part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.base+"/api/v1/booking/", body)
	if err != nil {
		return fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("booking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Status: resp.StatusCode}
	}
	zap.S().Infow("booking submitted",
		"vehicle", draft.Trip.VehicleID,
		"reference", reference,
	)
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func proofPartHeader(proof *models.ProofFile) textproto.MIMEHeader {
	contentType := proof.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="payment_proof"; filename="%s"`, quoteEscaper.Replace(proof.Filename)))
	h.Set("Content-Type", contentType)
	return h
}
