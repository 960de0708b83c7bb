// Package mailer assembles and dispatches the booking notification email
// through Resend, the transactional delivery provider behind the site.
package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"

	"detailwave.be/booking-api/pkg/models"
)

// Receipt is the delivery provider's acknowledgement for one sent email.
type Receipt struct {
	ID string `json:"id"`
}

// Sender dispatches exactly one notification per booking request. Satisfied
// by Client; tests substitute their own.
type Sender interface {
	SendBooking(ctx context.Context, req *models.BookingRequest) (*Receipt, error)
}

// Client sends booking notifications from a fixed sender identity to the
// business inbox.
type Client struct {
	resend *resend.Client
	from   string
	to     string
}

func New(apiKey, from, to string) *Client {
	return &Client{
		resend: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// SendError represents a delivery failure.
type SendError struct {
	Message string
	Cause   error
}

func (e *SendError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SendError) Unwrap() error {
	return e.Cause
}
