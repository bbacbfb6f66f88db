package notify

import (
	"fmt"

	"tesoro-api/internal/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Notifier emails treasury owner contacts about recovery events. Recovery is
// the one flow where a credential holder may be locked out, so out-of-band
// notice matters more than for ordinary spends. A nil Notifier is a no-op.
type Notifier struct {
	client *resend.Client
	from   string
}

// NewNotifier builds a Notifier sending from the given address.
func NewNotifier(apiKey, from string) *Notifier {
	return &Notifier{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// RecoveryEvent carries what the email needs to say.
type RecoveryEvent struct {
	TreasuryName string
	ScopeName    string
	Action       string
	Accepted     bool
}

// SendRecoveryAlert emails every owner contact about a recovery-flow
// transition. Failures are logged and swallowed: the decision is already
// recorded, the email is a courtesy.
func (n *Notifier) SendRecoveryAlert(recipients []string, event RecoveryEvent) {
	if n == nil || len(recipients) == 0 {
		return
	}

	verdict := "rejected"
	if event.Accepted {
		verdict = "accepted"
	}
	subject := fmt.Sprintf("[%s] %s on scope %q %s",
		event.TreasuryName, event.Action, event.ScopeName, verdict)
	body := fmt.Sprintf(
		"A %s transition for scope %q of treasury %q was %s.\n\n"+
			"If you did not expect this, contest it from any owner credential "+
			"before the contestation window closes.\n",
		event.Action, event.ScopeName, event.TreasuryName, verdict)

	_, err := n.client.Emails.Send(&resend.SendEmailRequest{
		From:    n.from,
		To:      recipients,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		logger.Error("Failed to send recovery alert",
			zap.Error(err),
			zap.String("scope", event.ScopeName),
		)
		return
	}
	logger.Info("Sent recovery alert",
		zap.String("scope", event.ScopeName),
		zap.String("action", event.Action),
		zap.Int("recipients", len(recipients)),
	)
}
