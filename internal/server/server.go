// Package server orchestrates all components: NATS client, tariff registry,
// dispatcher, HTTP health.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	comms "github.com/nats-io/nats.go"

	"github.com/paydeck/payment-dispatch/internal/config"
	"github.com/paydeck/payment-dispatch/pkg/commsutil"
	"github.com/paydeck/payment-dispatch/pkg/dispatcher"
	"github.com/paydeck/payment-dispatch/pkg/events"
	"github.com/paydeck/payment-dispatch/pkg/notify"
	"github.com/paydeck/payment-dispatch/pkg/tariff"
)

const logPrefix = "server:server"

// dispatcherForServer is the slice of the dispatcher the HTTP handlers need.
type dispatcherForServer interface {
	Health(ctx context.Context) *dispatcher.HealthOutput
	Operations(ctx context.Context) *dispatcher.OperationsOutput
}

// Server is the payment-dispatch orchestrator.
type Server struct {
	cfg        *config.Config
	nc         *comms.Conn
	httpServer *http.Server
	disp       dispatcherForServer
}

// Run starts the server, blocks until shutdown signal, then cleans up.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("%s - failed to load config: %w", logPrefix, err)
	}
	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info(fmt.Sprintf("%s - Starting payment-dispatch", logPrefix))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := &Server{cfg: cfg}

	// Step 1: Load tariff config and build the operation registry
	tariffCfg, err := tariff.LoadConfig(cfg.TariffFile)
	if err != nil {
		return fmt.Errorf("%s - failed to load tariff config: %w", logPrefix, err)
	}
	reg := tariff.BuildRegistry(tariffCfg)
	slog.Info(fmt.Sprintf("%s - Tariff %s loaded, %d operations registered", logPrefix, tariffCfg.Name, reg.Len()))

	dispatchSubject := cfg.DispatchSubject
	if dispatchSubject == "" {
		dispatchSubject = commsutil.SubjectDispatch
	}
	slog.Info(fmt.Sprintf("%s - Dispatch subject: %s", logPrefix, dispatchSubject))

	// Step 2: Connect to NATS
	nc, err := commsutil.Connect(cfg.COMMSURL, cfg.COMMSName, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("%s - failed to connect to NATS: %w", logPrefix, err)
	}
	s.nc = nc
	slog.Info(fmt.Sprintf("%s - Connected to NATS at %s", logPrefix, cfg.COMMSURL))

	// Step 3: Build the publisher, notification channels, and dispatcher
	publisherOpts := &events.CommsPublisherOpts{}
	if cfg.ProcessedEventSubject != "" {
		publisherOpts.GlobalSubject = cfg.ProcessedEventSubject
	}
	publisher := events.NewCommsPublisher(nc, publisherOpts)

	mux := notify.NewMux()
	for _, channel := range cfg.NotifyChannels {
		mux.Register(channel, notify.NewCommsNotifier(nc, channel))
	}

	disp := dispatcher.NewDispatcher(dispatcher.NewDispatcherParams{
		Registry:  reg,
		Notifier:  mux,
		Publisher: publisher,
	})
	s.disp = disp

	// Step 4: Subscribe to the dispatch subject
	requestTimeout := cfg.RequestTimeout
	sub, err := nc.Subscribe(dispatchSubject, func(msg *comms.Msg) {
		var req dispatcher.DispatchRequest
		if err := commsutil.DecodePayload(msg.Data, &req); err != nil {
			resp := &dispatcher.DispatchResponse{
				Ok: false,
				Error: &dispatcher.ErrorDetail{
					Code:    dispatcher.CodeInvalidArgument,
					Message: "Failed to decode request",
				},
			}
			data, _ := commsutil.EncodePayload(resp)
			msg.Respond(data)
			return
		}

		// Per-request context with timeout; optionally respect client timeout
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		if req.Ctx != nil && req.Ctx.TimeoutMs > 0 {
			if d := time.Duration(req.Ctx.TimeoutMs) * time.Millisecond; d < requestTimeout {
				reqCtx, cancel = context.WithTimeout(ctx, d)
			}
		}
		defer cancel()

		resp := disp.Dispatch(reqCtx, &req)

		data, err := commsutil.EncodePayload(resp)
		if err != nil {
			slog.Error(fmt.Sprintf("%s - failed to encode response: %v", logPrefix, err))
			return
		}
		msg.Respond(data)
	})
	if err != nil {
		nc.Close()
		return fmt.Errorf("%s - failed to subscribe to %s: %w", logPrefix, dispatchSubject, err)
	}
	slog.Info(fmt.Sprintf("%s - Subscribed to %s", logPrefix, dispatchSubject))

	// Step 5: Start HTTP health server
	healthTimeout := cfg.HealthCheckTimeout
	httpMux := http.NewServeMux()
	httpMux.HandleFunc("/", s.handleHome())
	httpMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		healthCtx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		h := s.disp.Health(healthCtx)
		w.Header().Set("Content-Type", "application/json")
		if h.Status != "healthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(h)
	})
	httpMux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	s.httpServer = &http.Server{Addr: httpAddr, Handler: httpMux}
	go func() {
		slog.Info(fmt.Sprintf("%s - HTTP health server listening on %s", logPrefix, httpAddr))
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error(fmt.Sprintf("%s - HTTP server error: %v", logPrefix, err))
		}
	}()

	slog.Info(fmt.Sprintf("%s - Payment-dispatch is ready", logPrefix))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info(fmt.Sprintf("%s - Received signal %s, shutting down", logPrefix, sig))

	// Graceful shutdown
	sub.Unsubscribe()
	s.httpServer.Shutdown(ctx)
	nc.Drain()

	slog.Info(fmt.Sprintf("%s - Shutdown complete", logPrefix))
	return nil
}

// homePageTemplate is the HTML for the dispatch home page (white bg, black/blue text).
const homePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Payment Dispatch</title>
  <style>
    * { box-sizing: border-box; }
    body { background: #fff; color: #000; font-family: system-ui, sans-serif; margin: 0; padding: 2rem; line-height: 1.5; }
    a { color: #0066cc; }
    h1, h2, h3 { color: #0066cc; }
    .status-healthy { color: #0066cc; font-weight: bold; }
    .status-degraded { color: #cc0000; font-weight: bold; }
    table { border-collapse: collapse; width: 100%; max-width: 900px; margin-top: 0.5rem; }
    th, td { text-align: left; padding: 0.5rem 0.75rem; border: 1px solid #ccc; }
    th { background: #f0f4f8; color: #0066cc; }
    .stat { font-weight: bold; color: #0066cc; }
    .meta { color: #333; font-size: 0.9rem; margin-top: 1rem; }
    section { margin-bottom: 2rem; }
  </style>
</head>
<body>
  <h1>Payment Dispatch</h1>
  <p class="meta">Dispatcher health and registered operations.</p>

  <section>
    <h2>Health</h2>
    <p>Status: <span class="status-{{.Health.Status}}">{{.Health.Status}}</span></p>
    <p>Operations: <span class="stat">{{.Health.Operations}}</span></p>
    <p>Notification channels: <span class="stat">{{.Health.Channels}}</span></p>
    <p>Timestamp: {{.Health.Timestamp}}</p>
  </section>

  <section>
    <h2>Operations</h2>
    {{if not .Operations.Operations}}
    <p>No operations registered.</p>
    {{else}}
    <table>
      <thead>
        <tr><th>Key</th><th>Description</th></tr>
      </thead>
      <tbody>
        {{range .Operations.Operations}}
        <tr>
          <td>{{.Key}}</td>
          <td>{{.Description}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
  </section>

  <section>
    <h2>Notification channels</h2>
    {{if not .Operations.Channels}}
    <p>No channels bound.</p>
    {{else}}
    <ul>
      {{range .Operations.Channels}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </section>
</body>
</html>
`

type homePageData struct {
	Health     *dispatcher.HealthOutput
	Operations *dispatcher.OperationsOutput
}

// handleHome returns an HTTP handler for the dispatch home page.
func (s *Server) handleHome() http.HandlerFunc {
	tmpl := template.Must(template.New("home").Parse(homePageTemplate))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		healthCtx, cancel := context.WithTimeout(r.Context(), s.cfg.HealthCheckTimeout)
		defer cancel()

		data := homePageData{
			Health:     s.disp.Health(healthCtx),
			Operations: s.disp.Operations(healthCtx),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			slog.Error(fmt.Sprintf("%s - home page render: %v", logPrefix, err))
		}
	}
}
