// Package dispatcher routes incoming COMMS messages to payment operations.
package dispatcher

import "encoding/json"

// DispatchRequest is the JSON envelope for incoming COMMS dispatch requests.
type DispatchRequest struct {
	ID     string             `json:"id"`
	Type   string             `json:"type"`
	Method string             `json:"method"`
	Params json.RawMessage    `json:"params"`
	Ctx    *InvocationContext `json:"ctx,omitempty"`
}

// DispatchResponse is the JSON envelope for COMMS dispatch responses.
type DispatchResponse struct {
	ID     string       `json:"id"`
	Ok     bool         `json:"ok"`
	Result interface{}  `json:"result,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail holds structured error information.
type ErrorDetail struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Retryable bool        `json:"retryable"`
}

// InvocationContext holds context from the caller.
type InvocationContext struct {
	UserID        string `json:"userId,omitempty"`
	RequestID     string `json:"requestId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
	TimeoutMs     int    `json:"timeoutMs,omitempty"`
}
