package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Account is the raw account configuration as stored by the dashboard
// backend. It is loosely typed: numeric fields may arrive as numbers or as
// quoted strings, keys may be missing entirely, and enum fields may hold
// unknown values. Normalize is total over all of that — malformed input is
// clamped or defaulted, never rejected.
type Account struct {
	Name            string        `json:"name" yaml:"name"`
	StartingBalance Number        `json:"starting_balance" yaml:"starting_balance"`
	ProfitTargetPct Number        `json:"profit_target_pct,omitempty" yaml:"profit_target_pct,omitempty"`
	DailyDrawdown   DailyDrawdown `json:"daily_drawdown" yaml:"daily_drawdown"`
	MaxDrawdown     MaxDrawdown   `json:"max_drawdown" yaml:"max_drawdown"`
	Consistency     Consistency   `json:"consistency" yaml:"consistency"`
}

// DailyDrawdown holds the raw daily drawdown rule parameters.
type DailyDrawdown struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	Pct        Number `json:"pct" yaml:"pct"`
	Type       string `json:"type" yaml:"type"`             // "static" or "trailing"
	ResetTime  string `json:"reset_time" yaml:"reset_time"` // "HH:MM"
	LocksAt    string `json:"locks_at" yaml:"locks_at"`     // "start_balance" or "custom"
	LocksAtPct Number `json:"locks_at_pct" yaml:"locks_at_pct"`
}

// MaxDrawdown holds the raw maximum drawdown rule parameters. LegacyPct is
// the old single-percentage representation kept for accounts created before
// the rule editor existed; it only applies when the new rule is disabled.
type MaxDrawdown struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	Pct             Number `json:"pct" yaml:"pct"`
	Type            string `json:"type" yaml:"type"` // "static" or "trailing"
	LegacyPct       Number `json:"legacy_pct,omitempty" yaml:"legacy_pct,omitempty"`
	TrailingStopsAt string `json:"trailing_stops_at" yaml:"trailing_stops_at"` // never|initial|buffer|custom
	LocksAtPct      Number `json:"locks_at_pct" yaml:"locks_at_pct"`
	TrailingMode    string `json:"trailing_mode,omitempty" yaml:"trailing_mode,omitempty"` // eod|realtime (legacy path)
}

// Consistency holds the raw consistency rule parameters.
type Consistency struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Pct     Number `json:"pct" yaml:"pct"`
}

// Number is a float64 that tolerates the loose typing of stored configs: it
// decodes plain numbers, quoted numbers, and null. Anything unparseable
// decodes to NaN, which Normalize later clamps to the field's minimum.
type Number float64

func parseLoose(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// UnmarshalJSON accepts a number, a quoted number, or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, ok := parseLoose(s); ok {
			*n = Number(f)
			return nil
		}
	}
	*n = Number(math.NaN())
	return nil
}

// UnmarshalYAML accepts a scalar number or a quoted number.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := value.Decode(&s); err == nil {
		if f, ok := parseLoose(s); ok {
			*n = Number(f)
			return nil
		}
	}
	*n = Number(math.NaN())
	return nil
}

// LoadFile loads an account configuration from a file. YAML is tried first
// with a JSON fallback, matching whichever format the caller exported.
func LoadFile(path string) (*Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	acct := &Account{}
	if yerr := yaml.Unmarshal(data, acct); yerr != nil {
		if jerr := json.Unmarshal(data, acct); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", yerr)
		}
	}
	return acct, nil
}
