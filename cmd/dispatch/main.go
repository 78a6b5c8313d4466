// Package main is the entrypoint for the payment-dispatch server (binary name "dispatch").
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/paydeck/payment-dispatch/internal/server"
	"github.com/paydeck/payment-dispatch/pkg/tariff"
)

const usage = `Usage: dispatch [command]
       dispatch serve                  Start the dispatch server (NATS, HTTP, dispatch API).
       dispatch tariff show [file]      Print the effective tariff config as JSON.
       dispatch tariff validate [file]  Validate a tariff config file.

Commands:
  serve             (default) Start the payment dispatch server.
  tariff show       Print the tariff that would be loaded (file, TARIFF_FILE env, or built-in default).
  tariff validate   Check a tariff file for schema and entry errors.

Environment: COMMS_URL, TARIFF_FILE, DISPATCH_SUBJECT, HTTP_PORT, LOG_LEVEL. See README.
`

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 && args[0] != "" {
		cmd = args[0]
	}

	switch cmd {
	case "tariff":
		if len(args) < 2 {
			log.Fatalf("dispatch tariff: require subcommand (show, validate)")
		}
		sub := args[1]
		path := ""
		if len(args) > 2 {
			path = args[2]
		}
		switch sub {
		case "show":
			if err := runTariffShow(path); err != nil {
				log.Fatalf("dispatch tariff show: %v", err)
			}
		case "validate":
			if err := runTariffValidate(path); err != nil {
				log.Fatalf("dispatch tariff validate: %v", err)
			}
		default:
			log.Fatalf("dispatch tariff: unknown subcommand %q (use show, validate)", sub)
		}
		return
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	case "serve", "":
		// serve (explicit or default)
		break
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n%s", cmd, usage)
		os.Exit(1)
	}

	if err := server.Run(); err != nil {
		log.Fatalf("dispatch: %v", err)
	}
}

// loadTariff resolves the tariff for the CLI subcommands. An explicit path
// is loaded strictly, so a typo fails instead of silently reporting on
// whatever the search-order fallback found.
func loadTariff(path string) (*tariff.Config, error) {
	if path != "" {
		return tariff.LoadFile(path)
	}
	return tariff.LoadConfig()
}

func runTariffShow(path string) error {
	cfg, err := loadTariff(path)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tariff: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runTariffValidate(path string) error {
	cfg, err := loadTariff(path)
	if err != nil {
		return err
	}
	if err := tariff.Validate(cfg); err != nil {
		return err
	}
	enabled := 0
	for _, def := range cfg.Operations {
		if def.Enabled {
			enabled++
		}
	}
	fmt.Printf("Tariff %q is valid: %d operations, %d enabled.\n", cfg.Name, len(cfg.Operations), enabled)
	return nil
}
