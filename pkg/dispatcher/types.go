package dispatcher

// Error codes returned by the dispatcher.
const (
	CodeInvalidOperationKey = "INVALID_OPERATION_KEY"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInvalidChannel      = "INVALID_CHANNEL"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeMethodNotFound      = "METHOD_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Error is a structured error from the dispatcher.
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// ProcessInput holds parameters for the process method.
type ProcessInput struct {
	Amount float64 `json:"amount"`
	Key    string  `json:"key"`
}

// QuoteBase is the base item of a quote request.
type QuoteBase struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// QuoteComponent is an add-on item of a quote request.
type QuoteComponent struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

// QuoteInput holds parameters for the quote method. Component order is
// preserved in the rendered description.
type QuoteInput struct {
	Base       QuoteBase        `json:"base"`
	Components []QuoteComponent `json:"components,omitempty"`
}

// QuoteOutput holds the result of the quote method.
type QuoteOutput struct {
	Total       float64 `json:"total"`
	Description string  `json:"description"`
}

// NotifyInput holds parameters for the notify method.
type NotifyInput struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"body"`
}

// NotifyOutput holds the result of the notify method.
type NotifyOutput struct {
	Channel string `json:"channel"`
	Sent    bool   `json:"sent"`
}

// OperationInfo describes one registered operation.
type OperationInfo struct {
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
}

// OperationsOutput holds the result of the operations method.
type OperationsOutput struct {
	Operations []OperationInfo `json:"operations"`
	Channels   []string        `json:"channels,omitempty"`
}

// HealthOutput holds the result of the health method.
type HealthOutput struct {
	Status     string `json:"status"`
	Operations int    `json:"operations"`
	Channels   int    `json:"channels"`
	Timestamp  string `json:"timestamp"`
}
