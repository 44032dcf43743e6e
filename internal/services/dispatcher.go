package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Broadcaster is the publish side of the broadcast channel.
type Broadcaster interface {
	Configured() bool
	Publish(ctx context.Context, subject, body string) error
}

// MailSender is the direct-mail channel.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Notifier is the dispatch contract handlers depend on.
type Notifier interface {
	Dispatch(ctx context.Context, recipient, subject, body string) bool
}

// Dispatcher attempts delivery of one message through the broadcast and
// direct-mail channels. Channel failures are absorbed here: they are
// logged, isolated from each other, and never propagate to the caller.
// A failed notification must not reject a submission whose record is
// already written.
type Dispatcher struct {
	broadcast Broadcaster
	mail      MailSender
	timeout   time.Duration
}

// NewDispatcher creates a Dispatcher. Each channel attempt is bounded by
// the given timeout.
func NewDispatcher(broadcast Broadcaster, mail MailSender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		broadcast: broadcast,
		mail:      mail,
		timeout:   timeout,
	}
}

// Dispatch sends the message to one recipient through both channels. The
// two attempts run concurrently; an unconfigured broadcast channel is
// skipped. The result reports whether the mail channel succeeded.
func (d *Dispatcher) Dispatch(ctx context.Context, recipient, subject, body string) bool {
	var wg sync.WaitGroup
	var mailErr error

	if d.broadcast != nil && d.broadcast.Configured() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bctx, cancel := context.WithTimeout(ctx, d.timeout)
			defer cancel()
			if err := d.broadcast.Publish(bctx, subject, body); err != nil {
				zap.S().Warnf("broadcast publish failed: %v", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		mctx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()
		if err := d.mail.Send(mctx, recipient, subject, body); err != nil {
			zap.S().Warnf("mail send to %s failed: %v", recipient, err)
			mailErr = err
		}
	}()

	wg.Wait()
	return mailErr == nil
}

// PublishAlert sends a message on the broadcast channel alone. An
// unconfigured channel reports false without being an error.
func (d *Dispatcher) PublishAlert(ctx context.Context, subject, body string) bool {
	if d.broadcast == nil || !d.broadcast.Configured() {
		return false
	}

	bctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.broadcast.Publish(bctx, subject, body); err != nil {
		zap.S().Warnf("broadcast publish failed: %v", err)
		return false
	}
	return true
}

// BroadcastConfigured reports the broadcast channel's configuration state.
func (d *Dispatcher) BroadcastConfigured() bool {
	return d.broadcast != nil && d.broadcast.Configured()
}
