package models

// Outcome classifies how far a prediction landed from the rolled sum
type Outcome string

const (
	// OutcomeExact indicates the prediction matched the sum (a win)
	OutcomeExact Outcome = "exact"

	// OutcomeOffByOne indicates the prediction missed by exactly one
	OutcomeOffByOne Outcome = "off_by_one"

	// OutcomeClose indicates the prediction missed by two
	OutcomeClose Outcome = "close"

	// OutcomeFar indicates the prediction missed by more than two
	OutcomeFar Outcome = "far"
)

// ClassifyOutcome maps the distance between prediction and sum to an Outcome.
// Negative distances are treated by their absolute value.
func ClassifyOutcome(diff int) Outcome {
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return OutcomeExact
	case diff == 1:
		return OutcomeOffByOne
	case diff <= 2:
		return OutcomeClose
	default:
		return OutcomeFar
	}
}

// Score classifies a prediction against a rolled sum
func Score(prediction, sum int) Outcome {
	return ClassifyOutcome(prediction - sum)
}

// IsWin returns true only for an exact prediction
func (o Outcome) IsWin() bool {
	return o == OutcomeExact
}
