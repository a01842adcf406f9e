// Package upstream contains the clients for the external rental API. The
// site keeps no state of its own: every read and write in the application
// goes through one of the services defined here.
package upstream

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RequestTimeout bounds every upstream call.
const RequestTimeout = 15 * time.Second

// Client is the shared transport for the rental API services.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client rooted at the API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: RequestTimeout},
	}
}

// StatusError is returned when the API answers with an unexpected status.
// The handlers only ever surface it as a generic retryable failure; no
// field-level error mapping is attempted.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}
