package services

import (
	"context"

	"gopkg.in/gomail.v2"
)

// MailChannel delivers point-to-point messages over SMTP. Every message is
// sent from the fixed operator address.
type MailChannel struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailChannel creates a MailChannel.
func NewMailChannel(host string, port int, username, password, from string) *MailChannel {
	return &MailChannel{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message to one recipient, bounded by the context
// deadline. The SMTP dial itself has no deadline support, so the send runs
// in a goroutine and is abandoned once the context expires.
func (m *MailChannel) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
