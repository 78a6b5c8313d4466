// Package notify implements channel-keyed notification dispatch. A Notifier
// is the messaging counterpart of a payment operation: instead of
// transforming an amount it emits a message on its channel.
package notify

import (
	"context"

	"github.com/paydeck/payment-dispatch/pkg/registry"
)

// Notification is the message handed to a Notifier.
type Notification struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body"`
}

// Notifier sends a notification over one channel. The observable side effect
// is the emitted message; implementations hold no other state.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Mux routes notifications to the Notifier registered for a channel.
// Channels follow the same normalization and last-write-wins rules as
// payment operation keys.
type Mux struct {
	channels *registry.Registry[Notifier]
}

// NewMux creates a Mux with no channels bound.
func NewMux() *Mux {
	return &Mux{channels: registry.New[Notifier]()}
}

// Register binds a channel to a Notifier.
func (m *Mux) Register(channel string, n Notifier) {
	m.channels.Register(channel, n)
}

// Channels returns the registered channel names in sorted order.
func (m *Mux) Channels() []string {
	return m.channels.Keys()
}

// Send resolves the channel and delegates to its Notifier. An unknown
// channel fails with *registry.NotFoundError; nothing is sent.
func (m *Mux) Send(ctx context.Context, channel string, n Notification) error {
	notifier, err := m.channels.Resolve(channel)
	if err != nil {
		return err
	}
	return notifier.Send(ctx, n)
}
