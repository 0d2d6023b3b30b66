package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gulfrate/gulfrate/internal/model"
)

// ErrDisabled is returned by the disabled mailer so callers leave the
// email_sent flag untouched.
var ErrDisabled = errors.New("email delivery disabled")

// Disabled is the mailer used when no email transport is configured. It
// never claims delivery.
type Disabled struct{}

func (Disabled) SendLeadConfirmation(_ context.Context, lead *model.Lead) error {
	log.Debug().Str("email", lead.Email).Msg("email delivery disabled, skipping confirmation")
	return ErrDisabled
}

func confirmationSubject() string {
	return "Thanks for subscribing to Gulf Rate Alerts"
}

func confirmationBody(lead *model.Lead) string {
	targetLine := ""
	if lead.TargetRate != nil {
		targetLine = fmt.Sprintf("<p>Your target rate: <strong>%s</strong></p>", *lead.TargetRate)
	}

	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #0F52BA; padding: 20px; text-align: center; color: white;">
    <h1>Gulf Rate</h1>
  </div>
  <div style="padding: 20px; border: 1px solid #eee; background-color: #fff;">
    <h2>Thank you for subscribing to Rate Alerts!</h2>
    <p>Hello %s,</p>
    <p>Thank you for subscribing to Gulf Rate alerts. We'll notify you when the exchange rate from %s to %s reaches your target rate.</p>
    %s
    <p>You can update your preferences or unsubscribe at any time by visiting your profile on our website.</p>
    <p>Best regards,<br>The Gulf Rate Team</p>
  </div>
  <div style="background-color: #f5f5f5; padding: 15px; text-align: center; font-size: 12px; color: #666;">
    <p>&copy; %d Gulf Rate. All rights reserved.</p>
    <p>This email was sent to %s. If you didn't sign up for rate alerts, please ignore this email.</p>
  </div>
</div>`,
		lead.FullName, lead.FromCurrency, lead.ToCurrency, targetLine,
		time.Now().Year(), lead.Email)
}
