package booking

// Step is one stage of the booking flow. Transitions only move forward;
// a step whose prerequisites are missing redirects backward instead.
type Step string

const (
	StepDetail      Step = "detail"
	StepSelectSeats Step = "select_seats"
	StepSummary     Step = "summary"
	StepTicket      Step = "ticket"
)

// IsValid checks if the step is a known value
func (s Step) IsValid() bool {
	switch s {
	case StepDetail, StepSelectSeats, StepSummary, StepTicket:
		return true
	}
	return false
}

// String returns the string representation of Step
func (s Step) String() string {
	return string(s)
}
