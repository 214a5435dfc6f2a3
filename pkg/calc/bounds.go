package calc

import (
	"strconv"
	"strings"
)

// Bound is an inclusive numeric range.
type Bound struct {
	Min float64
	Max float64
}

// Clamp returns v limited to the bound. Clamping is idempotent: an in-range
// value is returned unchanged.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// ParseField parses a raw input field, substituting fallback when the value
// is empty or unparseable. Both "1.95" and "1,95" are accepted since the
// widget runs on sites with comma-decimal locales.
func ParseField(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	raw = strings.ReplaceAll(raw, "'", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
