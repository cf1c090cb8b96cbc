package billing

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/lemonbridge/pkg/email"
)

// Notifier sends customer-facing billing notifications.
type Notifier interface {
	PaymentFailed(ctx context.Context, sub Subscription) error
	SubscriptionCancelled(ctx context.Context, sub Subscription) error
}

type emailNotifier struct {
	sender email.EmailSender
}

// NewEmailNotifier creates a Notifier that delivers via email.
func NewEmailNotifier(sender email.EmailSender) Notifier {
	if sender == nil {
		panic("billing: EmailSender is required")
	}
	return &emailNotifier{sender: sender}
}

func (n *emailNotifier) PaymentFailed(ctx context.Context, sub Subscription) error {
	body := fmt.Sprintf(
		"<p>We could not process the latest payment for your <strong>%s</strong> subscription.</p>"+
			"<p>Please update your payment method from the billing portal to keep your subscription active.</p>",
		sub.ProductName,
	)
	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   sub.UserEmail,
		Subject:  "Payment failed for your subscription",
		BodyHTML: body,
		Tag:      "billing-payment-failed",
	})
}

func (n *emailNotifier) SubscriptionCancelled(ctx context.Context, sub Subscription) error {
	body := fmt.Sprintf(
		"<p>Your <strong>%s</strong> subscription has been cancelled.</p>"+
			"<p>You keep access until the end of the paid period. You can resume anytime from the billing portal.</p>",
		sub.ProductName,
	)
	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   sub.UserEmail,
		Subject:  "Your subscription has been cancelled",
		BodyHTML: body,
		Tag:      "billing-cancelled",
	})
}
