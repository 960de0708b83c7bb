package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"detailwave.be/booking-api/pkg/models"
)

// SendBooking renders the booking request into the notification email and
// performs exactly one send. Either the provider is reached once and its
// verdict returned, or no network effect occurs at all. No retries.
func (c *Client) SendBooking(ctx context.Context, req *models.BookingRequest) (*Receipt, error) {
	attachments := DecodeAttachments(req.Photos)

	htmlContent, err := RenderBookingEmail(req)
	if err != nil {
		return nil, &SendError{Message: "failed to render booking email", Cause: err}
	}

	params := &resend.SendEmailRequest{
		From:        c.from,
		To:          []string{c.to},
		ReplyTo:     req.Email,
		Subject:     fmt.Sprintf("Nouvelle demande de rendez-vous - %s", req.FullName()),
		Html:        htmlContent,
		Attachments: toResendAttachments(attachments),
	}

	sent, err := c.resend.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, &SendError{Message: "failed to send booking email", Cause: err}
	}

	return &Receipt{ID: sent.Id}, nil
}

func toResendAttachments(attachments []models.Attachment) []*resend.Attachment {
	out := make([]*resend.Attachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, &resend.Attachment{
			Filename: a.Filename,
			Content:  a.Content,
		})
	}
	return out
}
