package banca

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// encoding/json sorts map keys, which would lose the roster order that the
// whole engine is pinned to; this writer preserves it. Its zero value is ready
// to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key/value pair, marshalling the value with json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(raw)
	w.WriteString(",")
	return w
}

// Optional appends the pair only when the value is not the zero string/number,
// to keep empty fields out of the output.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	switch v := value.(type) {
	case string:
		if v == "" {
			return w
		}
	case float64:
		if v == 0 {
			return w
		}
	case int:
		if v == 0 {
			return w
		}
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the object, wrapping the accumulated pairs in braces.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// cents rounds a float amount to cent precision for encoding. Balances are
// settled to the cent anyway; full float digits in exports are noise. The
// result goes through decimal so the rounding is exact, and back to float64 so
// it encodes as a bare JSON number.
func cents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// MarshalJSON encodes the transfer with its amount at cent precision.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("from", t.From)
	w.Append("to", t.To)
	w.Append("amount", cents(t.Amount))
	return w.MarshalJSON()
}

// MarshalJSON encodes the balances as a JSON object in roster order.
func (b *Balances) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, name := range b.names {
		w.Append(name, cents(b.amount[name]))
	}
	return w.MarshalJSON()
}

// MarshalJSON encodes the session with its derived result.
func (s Session) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("host", s.Host)
	w.Append("totalInvested", cents(s.TotalInvested))
	w.Append("finalAmount", cents(s.FinalAmount))
	w.Append("result", cents(s.Result()))
	w.Append("contributions", s.Contributions)
	return w.MarshalJSON()
}

// MarshalJSON encodes the exit plan.
func (p *ExitPlan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("dayBalance", cents(p.DayBalance))
	w.Append("inProgress", cents(p.InProgress))
	w.Append("net", cents(p.Net))
	w.Append("transfers", p.Transfers)
	return w.MarshalJSON()
}

// MarshalJSON encodes the day summary. The balances object preserves roster
// order, which makes the output a valid input for the stateless planner.
func (s *DaySummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("balances", s.Balances)
	if s.Drift != 0 {
		w.Append("drift", cents(s.Drift))
	}
	w.Optional("reference", s.Reference)
	w.Append("plan", s.Plan)
	w.Append("sessions", s.Sessions)
	w.Append("totalInvested", cents(s.TotalInvested))
	w.Append("totalResult", cents(s.TotalResult))
	return w.MarshalJSON()
}
