package timesheet

import "errors"

var (
	ErrBatchNotFound = errors.New("timesheet batch not found")
	ErrBatchLocked   = errors.New("timesheet batch is approved and locked")
)
