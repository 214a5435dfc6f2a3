// Package calc implements the savings calculation engine for the additive
// widget. It covers two modes: vehicle fuel (fleet diesel consumption) and
// heating oil.
//
// Every function in this package is pure and total: malformed input is
// substituted with a documented fallback, out-of-range input is clamped to
// its bound, and no call can fail or panic. Callers that want to surface
// validation feedback must inspect the raw values before calling in.
//
// The engine never retains state between calls. A Result is recomputed in
// full from its inputs plus the fixed product constants on every invocation,
// which makes concurrent use safe without synchronization.
package calc
