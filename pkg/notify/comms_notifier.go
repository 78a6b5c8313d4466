package notify

import (
	"context"
	"fmt"
	"log/slog"

	comms "github.com/nats-io/nats.go"

	"github.com/paydeck/payment-dispatch/pkg/commsutil"
)

const commsNotifierLogPrefix = "notify:comms_notifier"

// CommsNotifier emits notifications on the COMMS subject of its channel
// (e.g. notify.email, notify.sms).
type CommsNotifier struct {
	nc      *comms.Conn
	channel string
	subject string
}

// NewCommsNotifier creates a CommsNotifier for the given channel.
func NewCommsNotifier(nc *comms.Conn, channel string) *CommsNotifier {
	return &CommsNotifier{
		nc:      nc,
		channel: channel,
		subject: commsutil.BuildNotifySubject(channel),
	}
}

// Send publishes the notification to the channel subject.
func (c *CommsNotifier) Send(_ context.Context, n Notification) error {
	data, err := commsutil.EncodePayload(n)
	if err != nil {
		return fmt.Errorf("%s - failed to encode notification: %w", commsNotifierLogPrefix, err)
	}
	if err := c.nc.Publish(c.subject, data); err != nil {
		slog.Error(fmt.Sprintf("%s - failed to publish to %s: %v", commsNotifierLogPrefix, c.subject, err))
		return err
	}
	slog.Debug(fmt.Sprintf("%s - Sent %s notification to %s", commsNotifierLogPrefix, c.channel, n.Recipient))
	return nil
}

// CallbackNotifier is a Notifier that calls a callback function (for testing).
type CallbackNotifier struct {
	callback func(ctx context.Context, n Notification) error
}

// NewCallbackNotifier creates a new CallbackNotifier.
func NewCallbackNotifier(cb func(ctx context.Context, n Notification) error) *CallbackNotifier {
	return &CallbackNotifier{callback: cb}
}

// Send calls the callback.
func (c *CallbackNotifier) Send(ctx context.Context, n Notification) error {
	return c.callback(ctx, n)
}
