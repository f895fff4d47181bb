package modeltime

import "errors"

var (
	ErrNoPeriods         = errors.New("no periods")
	ErrYearsNotAscending = errors.New("period years not ascending")
	ErrInvalidTimeStep   = errors.New("invalid time step")
)
