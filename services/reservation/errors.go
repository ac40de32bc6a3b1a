package reservation

import (
	"errors"
	"fmt"
)

var ErrInvalidReservationRequest = errors.New("invalid reservation request")

const (
	ReasonNoAvailability = "no availability through any channel"
	ReasonCancelled      = "reservation cancelled"
	ReasonNotRequired    = "reservation not required"
)

func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidReservationRequest, fmt.Sprintf(format, args...))
}
