package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/models"
)

// ContactService delivers contact form submissions to the rental API.
type ContactService interface {
	Send(ctx context.Context, msg models.ContactMessage) error
}

type contactService struct {
	client *Client
}

// NewContactService creates a new instance of ContactService
func NewContactService(client *Client) ContactService {
	return &contactService{client: client}
}

// Send posts the message as JSON. The API acknowledges with 201 Created;
// any other status, 2xx included, counts as a failure.
func (s *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.base+"/api/v1/contact/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return &StatusError{Status: resp.StatusCode}
	}
	zap.S().Infow("contact message delivered", "subject", msg.Subject)
	return nil
}
