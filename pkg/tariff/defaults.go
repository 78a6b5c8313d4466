package tariff

import (
	"github.com/paydeck/payment-dispatch/pkg/operation"
	"github.com/paydeck/payment-dispatch/pkg/registry"
)

// DefaultConfig returns the embedded fallback tariff configuration.
//
// The "creidt" entry keeps the historical spelling and has been declared but
// never enabled; it stays here so the key remains reserved.
func DefaultConfig() *Config {
	return &Config{
		Name:        "paydeck-default-tariff",
		Version:     "1.0.0",
		Description: "Default payment operation tariff",
		Operations: map[string]OperationDef{
			operation.KeyCash: {
				Kind:        KindMarkup,
				Rate:        operation.DefaultCashRate,
				Description: "Cash handling charge",
				Enabled:     true,
			},
			operation.KeyDebit: {
				Kind:        KindCut,
				Rate:        operation.DefaultDebitRate,
				Description: "Debit settlement adjustment",
				Enabled:     true,
			},
			operation.KeyCredit: {
				Description: "Reserved, not yet in service",
				Enabled:     false,
			},
		},
	}
}

// BuildRegistry constructs an operation registry from the enabled entries of
// a tariff config. Disabled entries are skipped entirely.
func BuildRegistry(cfg *Config) *registry.Registry[operation.Operation] {
	reg := registry.New[operation.Operation]()
	for key, def := range cfg.Operations {
		if !def.Enabled {
			continue
		}
		switch def.Kind {
		case KindMarkup:
			reg.Register(key, operation.Markup{Rate: def.Rate, Note: def.Description})
		case KindCut:
			reg.Register(key, operation.Cut{Rate: def.Rate, Note: def.Description})
		}
	}
	return reg
}
