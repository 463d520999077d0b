// Package mailer sends the booking confirmation email through the Resend
// API. Delivery is best effort: there is no retry, and a failure never
// blocks or rolls back the booking it confirms.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// BookingEmail carries everything the confirmation message shows.
type BookingEmail struct {
	To            string
	RequesterName string
	VenueName     string
	VenueAddress  string
	EventDate     string
	StartTime     string
	EndTime       string
}

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, email BookingEmail) error
	Configured() bool
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Configured() bool { return true }

func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, email BookingEmail) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: fmt.Sprintf("Your booking request for %s", email.VenueName),
		Text:    textBody(email),
		Html:    htmlBody(email),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send confirmation email: %v", err)
	}

	return nil
}

func textBody(email BookingEmail) string {
	venue := email.VenueName
	if email.VenueAddress != "" {
		venue += " — " + email.VenueAddress
	}

	lines := []string{
		fmt.Sprintf("Hello %s,", email.RequesterName),
		"",
		"Thank you for submitting a booking request. Here is a summary of your request:",
		"",
		"Venue: " + venue,
		"Date: " + email.EventDate,
		"Start time: " + email.StartTime,
		"End time: " + email.EndTime,
		"",
		"The Chamber team will review your request and contact you.",
		"",
		"Best regards,",
		"Chamber of Commerce",
	}
	return strings.Join(lines, "\n")
}

func htmlBody(email BookingEmail) string {
	venue := email.VenueName
	if email.VenueAddress != "" {
		venue += " — " + email.VenueAddress
	}

	return fmt.Sprintf(`<p>Hello %s,</p>
<p>Thank you for submitting a booking request. Here is a summary of your request:</p>
<ul>
  <li><strong>Venue:</strong> %s</li>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Start time:</strong> %s</li>
  <li><strong>End time:</strong> %s</li>
</ul>
<p>The Chamber team will review your request.</p>
<p>Best regards,<br/>Chamber of Commerce</p>`,
		email.RequesterName, venue, email.EventDate, email.StartTime, email.EndTime)
}

// Noop is used when the email provider is unconfigured; bookings proceed
// and the send is skipped silently.
type Noop struct{}

func (Noop) Configured() bool { return false }

func (Noop) SendBookingConfirmation(ctx context.Context, email BookingEmail) error {
	return nil
}
