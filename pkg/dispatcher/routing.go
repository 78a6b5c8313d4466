package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const routingLogPrefix = "dispatcher:routing"

// Dispatch routes a request envelope to the appropriate dispatcher method
// and returns a response envelope. It never returns nil.
func (d *Dispatcher) Dispatch(ctx context.Context, req *DispatchRequest) *DispatchResponse {
	slog.Debug(fmt.Sprintf("%s - method=%s id=%s", routingLogPrefix, req.Method, req.ID))

	switch req.Method {
	case "process":
		return d.handleProcess(ctx, req)
	case "quote":
		return d.handleQuote(ctx, req)
	case "notify":
		return d.handleNotify(ctx, req)
	case "operations":
		return &DispatchResponse{ID: req.ID, Ok: true, Result: d.Operations(ctx)}
	case "health":
		return &DispatchResponse{ID: req.ID, Ok: true, Result: d.Health(ctx)}
	default:
		return errorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Unknown method: %s", req.Method), false)
	}
}

func (d *Dispatcher) handleProcess(ctx context.Context, req *DispatchRequest) *DispatchResponse {
	var input ProcessInput
	if err := json.Unmarshal(req.Params, &input); err != nil {
		return errorResponse(req.ID, CodeInvalidArgument, "Failed to parse process params", false)
	}

	result, err := d.Process(ctx, input.Amount, input.Key)
	if err != nil {
		return dispatchErrorToResponse(req.ID, err)
	}
	return &DispatchResponse{ID: req.ID, Ok: true, Result: result}
}

func (d *Dispatcher) handleQuote(ctx context.Context, req *DispatchRequest) *DispatchResponse {
	var input QuoteInput
	if err := json.Unmarshal(req.Params, &input); err != nil {
		return errorResponse(req.ID, CodeInvalidArgument, "Failed to parse quote params", false)
	}

	result, err := d.Quote(ctx, &input)
	if err != nil {
		return dispatchErrorToResponse(req.ID, err)
	}
	return &DispatchResponse{ID: req.ID, Ok: true, Result: result}
}

func (d *Dispatcher) handleNotify(ctx context.Context, req *DispatchRequest) *DispatchResponse {
	var input NotifyInput
	if err := json.Unmarshal(req.Params, &input); err != nil {
		return errorResponse(req.ID, CodeInvalidArgument, "Failed to parse notify params", false)
	}

	result, err := d.Notify(ctx, &input)
	if err != nil {
		return dispatchErrorToResponse(req.ID, err)
	}
	return &DispatchResponse{ID: req.ID, Ok: true, Result: result}
}

// --- helpers ---

func errorResponse(id, code, message string, retryable bool) *DispatchResponse {
	return &DispatchResponse{
		ID: id,
		Ok: false,
		Error: &ErrorDetail{
			Code:      code,
			Message:   message,
			Retryable: retryable,
		},
	}
}

func dispatchErrorToResponse(id string, err error) *DispatchResponse {
	if dispErr, ok := err.(*Error); ok {
		retryable := dispErr.Code == CodeInternalError
		return &DispatchResponse{
			ID: id,
			Ok: false,
			Error: &ErrorDetail{
				Code:      dispErr.Code,
				Message:   dispErr.Message,
				Details:   dispErr.Details,
				Retryable: retryable,
			},
		}
	}
	return errorResponse(id, CodeInternalError, err.Error(), true)
}
