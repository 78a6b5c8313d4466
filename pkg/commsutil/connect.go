// Package commsutil provides messaging helpers shared by the dispatch
// server, event publishers, and notifiers: connection setup, the JSON
// payload codec, and subject naming.
package commsutil

import (
	"fmt"
	"log/slog"
	"time"

	comms "github.com/nats-io/nats.go"
)

const logPrefix = "commsutil:connect"

// Dial failures surface quickly so serve can exit with a useful error;
// an established connection keeps retrying for several minutes while
// dispatch requests queue on the client side.
const (
	DefaultDialTimeout = 5 * time.Second
	reconnectWait      = 3 * time.Second
	maxReconnects      = 100
)

// Connect dials the messaging server that carries dispatch requests,
// processed-payment events, and notifications. name labels the connection
// in server monitoring; pass the configured service name. A zero or
// negative dialTimeout falls back to DefaultDialTimeout.
func Connect(url, name string, dialTimeout time.Duration) (*comms.Conn, error) {
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	slog.Info(fmt.Sprintf("%s - Dialing %s as %s (timeout %s)", logPrefix, url, name, dialTimeout))

	nc, err := comms.Connect(url,
		comms.Name(name),
		comms.Timeout(dialTimeout),
		comms.ReconnectWait(reconnectWait),
		comms.MaxReconnects(maxReconnects),
		comms.DisconnectErrHandler(func(_ *comms.Conn, err error) {
			slog.Warn(fmt.Sprintf("%s - Connection to %s lost, dispatch traffic paused: %v", logPrefix, url, err))
		}),
		comms.ReconnectHandler(func(nc *comms.Conn) {
			slog.Info(fmt.Sprintf("%s - Reconnected, dispatch traffic resumed via %s", logPrefix, nc.ConnectedUrl()))
		}),
		comms.ClosedHandler(func(*comms.Conn) {
			slog.Info(fmt.Sprintf("%s - Connection closed, dispatch traffic stopped", logPrefix))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s - dial %s: %w", logPrefix, url, err)
	}

	slog.Info(fmt.Sprintf("%s - Connected to %s", logPrefix, nc.ConnectedUrl()))
	return nc, nil
}
