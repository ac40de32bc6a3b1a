package planner

import "fmt"

// PlanningError is a local validation failure. Two PlanningErrors match under
// errors.Is when their codes are equal, so callers compare against the
// sentinels below.
type PlanningError struct {
	Code    string
	Message string
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PlanningError) Is(target error) bool {
	t, ok := target.(*PlanningError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidProfile     = &PlanningError{Code: "invalidProfile", Message: "invalid preference profile"}
	ErrInvalidDateRange   = &PlanningError{Code: "invalidDateRange", Message: "invalid date range"}
	ErrMissingWeatherData = &PlanningError{Code: "missingWeatherData", Message: "no forecast for date"}
	ErrInvalidPlanRequest = &PlanningError{Code: "invalidPlanRequest", Message: "invalid plan request"}
	ErrWeatherUnavailable = &PlanningError{Code: "weatherUnavailable", Message: "weather source unavailable"}
	ErrEventsUnavailable  = &PlanningError{Code: "eventsUnavailable", Message: "events source unavailable"}

	// ErrOutcomesNotStored means bookings were attempted but the updated days
	// could not be written back. Running the reservations again would book
	// confirmed activities twice.
	ErrOutcomesNotStored = &PlanningError{Code: "outcomesNotStored", Message: "reservation outcomes not stored"}
)

func newPlanningError(base *PlanningError, format string, args ...any) error {
	return &PlanningError{Code: base.Code, Message: fmt.Sprintf(format, args...)}
}
