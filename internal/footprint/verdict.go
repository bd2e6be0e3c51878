package footprint

import "fmt"

// Verdict is a coarse classification of a total against the world average.
type Verdict int

const (
	// VerdictLow is below 75% of the world average.
	VerdictLow Verdict = iota

	// VerdictAverage is between 75% and 100% of the world average, inclusive.
	VerdictAverage

	// VerdictHigh is above the world average.
	VerdictHigh
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictLow:
		return "Low"
	case VerdictAverage:
		return "Average"
	case VerdictHigh:
		return "High"
	default:
		return fmt.Sprintf("Verdict(%d)", v)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Message returns the sentence shown next to the total.
func (v Verdict) Message() string {
	switch v {
	case VerdictLow:
		return "Great job! Your footprint is well below the world average."
	case VerdictAverage:
		return "You're around the world average. Small changes can make a big difference."
	case VerdictHigh:
		return "Your footprint is above the world average. Consider reducing energy use and travel."
	default:
		return ""
	}
}

// Classify places totalTonnes relative to worldAvg.
//
//   - Low:     total <  0.75 * worldAvg
//   - Average: 0.75 * worldAvg <= total <= worldAvg
//   - High:    total >  worldAvg
//
// Both boundaries belong to Average.
func Classify(totalTonnes, worldAvg float64) Verdict {
	switch {
	case totalTonnes > worldAvg:
		return VerdictHigh
	case totalTonnes < LowVerdictRatio*worldAvg:
		return VerdictLow
	default:
		return VerdictAverage
	}
}
