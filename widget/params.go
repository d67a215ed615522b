package widget

import (
	"math"
	"net/url"
	"strconv"
)

// Range is an inclusive numeric interval with a slider step.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp limits v to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) control(name, label string, v float64) Control {
	return Control{
		Type:  ControlRange,
		Name:  name,
		Label: label,
		Value: formatFloat(v),
		Min:   formatFloat(r.Min),
		Max:   formatFloat(r.Max),
		Step:  formatFloat(r.Step),
	}
}

// floatParam reads key from q, falling back to def when the value is
// missing or not a finite number, and clamps the result to r.
func floatParam(q url.Values, key string, r Range, def float64) float64 {
	s := q.Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return r.Clamp(v)
}

// intParam is floatParam for integer controls. Fractions are truncated.
func intParam(q url.Values, key string, lo, hi, def int) int {
	v := floatParam(q, key, Range{Min: float64(lo), Max: float64(hi)}, float64(def))
	return int(v)
}

// boolParam accepts the values a checkbox or hidden field submits.
func boolParam(q url.Values, key string) bool {
	switch q.Get(key) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// roundTenth rounds v to one decimal. Values that round to zero come back
// as positive zero, so readouts never show "-0.0".
func roundTenth(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0
	}
	return r
}

// formatTenth formats v with one decimal for readouts.
func formatTenth(v float64) string {
	return strconv.FormatFloat(roundTenth(v), 'f', 1, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
