package dispatcher

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Result is the immutable record returned by a successful process call. The
// caller owns it; the dispatcher keeps no reference.
type Result struct {
	// ID is an opaque 8-hex-character token, unique per call.
	ID string `json:"id"`
	// Value is the computed amount.
	Value float64 `json:"value"`
	// Key is the normalized discriminator the operation was resolved with.
	Key string `json:"key"`
}

// newResultID returns an 8-hex-character token from a random UUID.
func newResultID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}
