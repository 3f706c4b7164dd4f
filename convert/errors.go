package convert

import (
	"errors"
	"fmt"
)

var (
	ErrShortRow     = errors.New("nr of columns smaller than expected")
	ErrBadYear      = errors.New("couldn't convert year to int")
	ErrBadSalary    = errors.New("couldn't convert salary to int")
	ErrYearMismatch = errors.New("years don't match")
)

// Error describes an anomaly found while scanning a sheet. It wraps one of
// the sentinel errors above.
type Error struct {
	Err    error
	Sheet  string
	Job    string
	Column int
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: sheet %q, job %q, column %d", e.Err, e.Sheet, e.Job, e.Column)
	if e.Detail != "" {
		msg += ", " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
