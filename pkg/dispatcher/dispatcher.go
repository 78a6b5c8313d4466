package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paydeck/payment-dispatch/pkg/events"
	"github.com/paydeck/payment-dispatch/pkg/notify"
	"github.com/paydeck/payment-dispatch/pkg/operation"
	"github.com/paydeck/payment-dispatch/pkg/pricing"
	"github.com/paydeck/payment-dispatch/pkg/registry"
)

const logPrefix = "dispatcher:dispatch"

// Dispatcher is the single entry point for payment processing. It owns no
// mutable state of its own; the registry it holds is read-only after
// construction.
type Dispatcher struct {
	registry  *registry.Registry[operation.Operation]
	notifier  *notify.Mux
	publisher events.Publisher
}

// NewDispatcherParams holds parameters for NewDispatcher.
type NewDispatcherParams struct {
	Registry  *registry.Registry[operation.Operation]
	Notifier  *notify.Mux
	Publisher events.Publisher
}

// NewDispatcher creates a new Dispatcher. A nil Publisher defaults to a
// no-op; a nil Notifier leaves the notify method without channels.
func NewDispatcher(params NewDispatcherParams) *Dispatcher {
	pub := params.Publisher
	if pub == nil {
		pub = &events.NoOpPublisher{}
	}
	mux := params.Notifier
	if mux == nil {
		mux = notify.NewMux()
	}
	reg := params.Registry
	if reg == nil {
		reg = registry.New[operation.Operation]()
	}
	return &Dispatcher{registry: reg, notifier: mux, publisher: pub}
}

// Process normalizes the key, resolves the bound operation, applies it to
// the amount, and returns a fresh Result. An unknown key fails with
// INVALID_OPERATION_KEY carrying the offending key; a negative amount fails
// with INVALID_AMOUNT. No partial result is ever returned.
func (d *Dispatcher) Process(ctx context.Context, amount float64, key string) (*Result, error) {
	if amount < 0 {
		return nil, &Error{
			Code:    CodeInvalidAmount,
			Message: fmt.Sprintf("amount must be non-negative, got %v", amount),
		}
	}

	norm := registry.NormalizeKey(key)
	op, err := d.registry.Resolve(norm)
	if err != nil {
		var nf *registry.NotFoundError
		if errors.As(err, &nf) {
			return nil, &Error{
				Code:    CodeInvalidOperationKey,
				Message: fmt.Sprintf("unknown operation key %q", nf.Key),
				Details: map[string]string{"key": nf.Key},
			}
		}
		return nil, &Error{Code: CodeInternalError, Message: err.Error()}
	}

	result := &Result{
		ID:    newResultID(),
		Value: op.Apply(amount),
		Key:   norm,
	}

	// The event is advisory; a publish failure does not void the result.
	event := &events.PaymentProcessedEvent{
		ID:        result.ID,
		Key:       result.Key,
		AmountIn:  amount,
		AmountOut: result.Value,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := d.publisher.PublishProcessed(ctx, event); err != nil {
		slog.Warn(fmt.Sprintf("%s - failed to publish processed event %s: %v", logPrefix, result.ID, err))
	}

	slog.Debug(fmt.Sprintf("%s - processed key=%s amount=%v value=%v id=%s", logPrefix, result.Key, amount, result.Value, result.ID))
	return result, nil
}

// Quote builds an order from the base item and components and returns the
// aggregate total with its rendered description.
func (d *Dispatcher) Quote(_ context.Context, input *QuoteInput) (*QuoteOutput, error) {
	if input.Base.Name == "" {
		return nil, &Error{Code: CodeInvalidArgument, Message: "quote requires a base item name"}
	}
	if input.Base.Price < 0 {
		return nil, &Error{
			Code:    CodeInvalidAmount,
			Message: fmt.Sprintf("base price must be non-negative, got %v", input.Base.Price),
		}
	}
	for _, c := range input.Components {
		if c.UnitPrice < 0 {
			return nil, &Error{
				Code:    CodeInvalidAmount,
				Message: fmt.Sprintf("component %q has negative price %v", c.Name, c.UnitPrice),
			}
		}
	}

	order := pricing.NewOrder(input.Base.Name, input.Base.Price)
	for _, c := range input.Components {
		order.AddComponent(pricing.Component{Name: c.Name, UnitPrice: c.UnitPrice})
	}
	return &QuoteOutput{Total: order.TotalPrice(), Description: order.Describe()}, nil
}

// Notify sends a notification over the requested channel. An unknown channel
// fails with INVALID_CHANNEL and nothing is sent.
func (d *Dispatcher) Notify(ctx context.Context, input *NotifyInput) (*NotifyOutput, error) {
	norm := registry.NormalizeKey(input.Channel)
	err := d.notifier.Send(ctx, norm, notify.Notification{
		Recipient: input.Recipient,
		Subject:   input.Subject,
		Body:      input.Body,
	})
	if err != nil {
		var nf *registry.NotFoundError
		if errors.As(err, &nf) {
			return nil, &Error{
				Code:    CodeInvalidChannel,
				Message: fmt.Sprintf("unknown notification channel %q", nf.Key),
				Details: map[string]string{"channel": nf.Key},
			}
		}
		return nil, &Error{Code: CodeInternalError, Message: err.Error()}
	}
	return &NotifyOutput{Channel: norm, Sent: true}, nil
}

// Operations lists the registered operation keys with descriptions where the
// bound operation can describe itself.
func (d *Dispatcher) Operations(_ context.Context) *OperationsOutput {
	keys := d.registry.Keys()
	out := &OperationsOutput{
		Operations: make([]OperationInfo, 0, len(keys)),
		Channels:   d.notifier.Channels(),
	}
	for _, key := range keys {
		info := OperationInfo{Key: key}
		if op, err := d.registry.Resolve(key); err == nil {
			if desc, ok := op.(operation.Describer); ok {
				info.Description = desc.Description()
			}
		}
		out.Operations = append(out.Operations, info)
	}
	return out
}

// Health reports dispatcher readiness. A dispatcher with no registered
// operations is degraded: every process call would fail.
func (d *Dispatcher) Health(_ context.Context) *HealthOutput {
	status := "healthy"
	if d.registry.Len() == 0 {
		status = "degraded"
	}
	return &HealthOutput{
		Status:     status,
		Operations: d.registry.Len(),
		Channels:   len(d.notifier.Channels()),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
