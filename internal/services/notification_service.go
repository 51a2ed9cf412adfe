package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshua-takyi/eventmarket/internal/mailer"
)

// NotificationService is the best-effort email side-channel. Sends run on
// their own goroutine with their own context; a failure is logged and
// swallowed, never surfaced to the operation that triggered the send.
type NotificationService struct {
	sender mailer.Sender
	logger *slog.Logger
}

func NewNotificationService(sender mailer.Sender, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		sender: sender,
		logger: logger,
	}
}

func (ns *NotificationService) SendWelcome(email, name string) {
	subject := "Welcome to Event Marketplace"
	body := fmt.Sprintf("Hi %s,\n\nYour registration was successful!\n\nThank you for registering at Event Marketplace.\n\nBest regards,\nEvent Marketplace Team", name)
	ns.dispatch(email, subject, body)
}

func (ns *NotificationService) SendBookingConfirmation(email, name, reference string) {
	subject := "Booking Confirmation"
	body := fmt.Sprintf("Hi %s,\n\nYour booking is confirmed with the following booking number: %s.\n\nBest regards,\nEvent Marketplace Team", name, reference)
	ns.dispatch(email, subject, body)
}

func (ns *NotificationService) dispatch(to, subject, body string) {
	if ns.sender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := ns.sender.Send(ctx, to, subject, body); err != nil {
			ns.logger.Error("failed to send notification email",
				"to", to,
				"subject", subject,
				"error", err,
			)
		}
	}()
}
