package commsutil

import (
	"encoding/json"
	"fmt"
)

// Dispatch requests, responses, processed-payment events, and
// notifications all travel as JSON. The codec wraps failures with enough
// context to tell a bad payload apart from a transport fault.

// EncodePayload renders a dispatch payload as JSON for the wire.
func EncodePayload(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("commsutil - encode payload: %w", err)
	}
	return data, nil
}

// DecodePayload parses a JSON wire payload into v. Empty payloads are
// rejected outright rather than reported as a JSON syntax error.
func DecodePayload(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("commsutil - empty payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("commsutil - decode payload: %w", err)
	}
	return nil
}
