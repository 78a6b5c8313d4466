package commsutil

import (
	"fmt"
	"strings"
)

// Default COMMS subjects.
const (
	SubjectDispatch       = "pay.dispatch.v1"
	SubjectProcessedEvent = "payments.processed"
	SubjectNotifyPrefix   = "notify"
)

// BuildProcessedSubject builds a granular processed-event subject for an
// operation key.
func BuildProcessedSubject(key string) string {
	safe := strings.ReplaceAll(key, ".", "_")
	return fmt.Sprintf("%s.%s", SubjectProcessedEvent, safe)
}

// BuildNotifySubject builds the COMMS subject for a notification channel.
func BuildNotifySubject(channel string) string {
	safe := strings.ReplaceAll(channel, ".", "_")
	return fmt.Sprintf("%s.%s", SubjectNotifyPrefix, safe)
}
