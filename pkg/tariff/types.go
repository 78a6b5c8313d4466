// Package tariff provides tariff configuration loading: the file-driven set
// of payment operations registered at startup.
package tariff

// Operation kinds.
const (
	KindMarkup = "markup"
	KindCut    = "cut"
)

// OperationDef is a single operation entry in the tariff config. Entries with
// Enabled=false are declared but never registered; dispatching with their key
// fails like any unknown key.
type OperationDef struct {
	Kind        string  `json:"kind,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	Description string  `json:"description,omitempty"`
	Enabled     bool    `json:"enabled"`
}

// Config is the root tariff configuration.
type Config struct {
	Name        string                  `json:"name"`
	Version     string                  `json:"version"`
	Description string                  `json:"description,omitempty"`
	Operations  map[string]OperationDef `json:"operations"`
}
