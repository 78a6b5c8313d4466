// Package events defines event types and publisher interfaces for processed
// payment events.
package events

// PaymentProcessedEvent is emitted after a dispatch call succeeds.
type PaymentProcessedEvent struct {
	ID        string  `json:"id"`
	Key       string  `json:"key"`
	AmountIn  float64 `json:"amountIn"`
	AmountOut float64 `json:"amountOut"`
	Timestamp string  `json:"timestamp"`
}
