package events

import "context"

// Publisher is the interface for publishing processed payment events.
type Publisher interface {
	PublishProcessed(ctx context.Context, event *PaymentProcessedEvent) error
}

// NoOpPublisher is a Publisher that does nothing (for in-process usage
// without events).
type NoOpPublisher struct{}

// PublishProcessed is a no-op.
func (p *NoOpPublisher) PublishProcessed(_ context.Context, _ *PaymentProcessedEvent) error {
	return nil
}

// CallbackPublisher is a Publisher that calls a callback function (for testing).
type CallbackPublisher struct {
	callback func(ctx context.Context, event *PaymentProcessedEvent) error
}

// NewCallbackPublisher creates a new CallbackPublisher.
func NewCallbackPublisher(cb func(ctx context.Context, event *PaymentProcessedEvent) error) *CallbackPublisher {
	return &CallbackPublisher{callback: cb}
}

// PublishProcessed calls the callback.
func (p *CallbackPublisher) PublishProcessed(ctx context.Context, event *PaymentProcessedEvent) error {
	return p.callback(ctx, event)
}
