package types

import "encoding/json"

// OutcomeKind enumerates the normalized comparison outcomes.
type OutcomeKind int

// OutcomeKind values.
const (
	OutcomeIdentical OutcomeKind = iota
	OutcomeDiffers
	OutcomeComparatorUnavailable
)

// Persisted ComparisonResult.Status values.
const (
	ResultStatusDiffers     = "differs"
	ResultStatusUnavailable = "comparator_unavailable"
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeIdentical:
		return "identical"
	case OutcomeDiffers:
		return ResultStatusDiffers
	case OutcomeComparatorUnavailable:
		return ResultStatusUnavailable
	default:
		return "unknown"
	}
}

// ComparisonOutcome is the comparator result reduced to a tri-state,
// independent of the backend's own output schema.
type ComparisonOutcome struct {
	Kind OutcomeKind
	// Summary is a one-line human-readable description (empty when identical).
	Summary string
	// Details is backend-defined JSON, set only for OutcomeDiffers.
	Details json.RawMessage
}

// Identical returns the outcome for byte-equivalent artifacts.
func Identical() ComparisonOutcome {
	return ComparisonOutcome{Kind: OutcomeIdentical}
}

// Differs returns a difference outcome carrying the comparator's details.
func Differs(summary string, details json.RawMessage) ComparisonOutcome {
	return ComparisonOutcome{Kind: OutcomeDiffers, Summary: summary, Details: details}
}

// ComparatorUnavailable returns the outcome used when no comparison could run.
func ComparatorUnavailable(reason string) ComparisonOutcome {
	return ComparisonOutcome{Kind: OutcomeComparatorUnavailable, Summary: reason}
}

// IsIdentical reports whether the artifacts matched.
func (o ComparisonOutcome) IsIdentical() bool {
	return o.Kind == OutcomeIdentical
}

// Result converts a non-identical outcome to its persisted form.
// It returns nil for OutcomeIdentical.
func (o ComparisonOutcome) Result() *ComparisonResult {
	if o.IsIdentical() {
		return nil
	}
	return &ComparisonResult{
		Status:  o.Kind.String(),
		Summary: o.Summary,
		Details: o.Details,
	}
}
