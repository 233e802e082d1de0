// Package curriculum is the static catalogue of practice topics, keyed by
// their National Curriculum module id.
package curriculum

import "fmt"

// Strand is a programme-of-study strand.
type Strand string

const (
	StrandMeasurement Strand = "measurement"
	StrandCalculation Strand = "calculation"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{StrandMeasurement, StrandCalculation}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandMeasurement:
		return "Measurement"
	case StrandCalculation:
		return "Calculation"
	default:
		return string(s)
	}
}

// Topic is one practice topic.
type Topic struct {
	ID            string
	Name          string
	Description   string
	Year          int
	Strand        Strand
	Substrand     string
	Prerequisites []string
}

// YearLabel returns e.g. "Year 4".
func (t Topic) YearLabel() string {
	return fmt.Sprintf("Year %d", t.Year)
}
