//go:build integration

package tests

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	commsserver "github.com/nats-io/nats-server/v2/server"
	comms "github.com/nats-io/nats.go"

	"github.com/paydeck/payment-dispatch/pkg/commsutil"
	"github.com/paydeck/payment-dispatch/pkg/dispatcher"
	"github.com/paydeck/payment-dispatch/pkg/events"
	"github.com/paydeck/payment-dispatch/pkg/tariff"
)

const integrationTestPrefix = "tests:integration_test"
const integrationNatsPort = 14241
const integrationSubject = "pay.test.dispatch.integration"

// TestIntegration_TariffFileToWire loads a tariff from disk, wires the
// dispatcher with a real comms publisher, and checks the whole path: request
// over NATS, response envelope, processed event on the wire.
func TestIntegration_TariffFileToWire(t *testing.T) {
	dir := t.TempDir()
	tariffPath := filepath.Join(dir, "tariff.json")
	content := `{
		"name": "integration-tariff",
		"version": "1.0.0",
		"operations": {
			"cash": {"kind": "markup", "rate": 0.05, "description": "Cash handling charge", "enabled": true},
			"debit": {"kind": "cut", "rate": 0.02, "enabled": true},
			"creidt": {"enabled": false}
		}
	}`
	if err := os.WriteFile(tariffPath, []byte(content), 0o644); err != nil {
		t.Fatalf("%s - write tariff file: %v", integrationTestPrefix, err)
	}

	cfg, err := tariff.LoadConfig(tariffPath)
	if err != nil {
		t.Fatalf("%s - LoadConfig failed: %v", integrationTestPrefix, err)
	}
	reg := tariff.BuildRegistry(cfg)
	if reg.Len() != 2 {
		t.Fatalf("%s - expected 2 operations from tariff file, got %d", integrationTestPrefix, reg.Len())
	}

	opts := &commsserver.Options{
		Host:   "127.0.0.1",
		Port:   integrationNatsPort,
		NoLog:  true,
		NoSigs: true,
	}
	ns, err := commsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("%s - failed to create NATS server: %v", integrationTestPrefix, err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		t.Fatalf("%s - NATS server failed to start", integrationTestPrefix)
	}
	defer func() {
		ns.Shutdown()
		ns.WaitForShutdown()
	}()

	nc, err := comms.Connect(ns.ClientURL(), comms.Timeout(5*time.Second))
	if err != nil {
		t.Fatalf("%s - failed to connect to NATS: %v", integrationTestPrefix, err)
	}
	defer nc.Close()

	disp := dispatcher.NewDispatcher(dispatcher.NewDispatcherParams{
		Registry:  reg,
		Publisher: events.NewCommsPublisher(nc, nil),
	})

	sub, err := nc.Subscribe(integrationSubject, func(msg *comms.Msg) {
		var req dispatcher.DispatchRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		resp := disp.Dispatch(ctx, &req)
		data, _ := json.Marshal(resp)
		msg.Respond(data)
	})
	if err != nil {
		t.Fatalf("%s - failed to subscribe: %v", integrationTestPrefix, err)
	}
	defer sub.Unsubscribe()

	// Watch for the processed event on the granular subject.
	eventCh := make(chan *events.PaymentProcessedEvent, 1)
	eventSub, err := nc.Subscribe(commsutil.BuildProcessedSubject("debit"), func(msg *comms.Msg) {
		var event events.PaymentProcessedEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			return
		}
		eventCh <- &event
	})
	if err != nil {
		t.Fatalf("%s - failed to subscribe to event subject: %v", integrationTestPrefix, err)
	}
	defer eventSub.Unsubscribe()

	reqData, _ := json.Marshal(&dispatcher.DispatchRequest{
		ID:     "int-1",
		Type:   "invoke",
		Method: "process",
		Params: json.RawMessage(`{"amount": 100, "key": "Debit"}`),
	})
	msg, err := nc.Request(integrationSubject, reqData, 10*time.Second)
	if err != nil {
		t.Fatalf("%s - request failed: %v", integrationTestPrefix, err)
	}

	var resp dispatcher.DispatchResponse
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		t.Fatalf("%s - failed to unmarshal response: %v", integrationTestPrefix, err)
	}
	if !resp.Ok {
		t.Fatalf("%s - expected Ok=true, got error: %v", integrationTestPrefix, resp.Error)
	}

	resultData, _ := json.Marshal(resp.Result)
	var result dispatcher.Result
	if err := json.Unmarshal(resultData, &result); err != nil {
		t.Fatalf("%s - failed to decode result: %v", integrationTestPrefix, err)
	}
	if result.Value != 98.0 || result.Key != "debit" {
		t.Errorf("%s - unexpected result: %+v", integrationTestPrefix, result)
	}

	select {
	case event := <-eventCh:
		if event.ID != result.ID || event.AmountIn != 100 || event.AmountOut != 98 {
			t.Errorf("%s - unexpected processed event: %+v", integrationTestPrefix, event)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("%s - no processed event observed", integrationTestPrefix)
	}
}
