package payroll

import "errors"

var (
	ErrInvalidDate          = errors.New("work date must be a valid YYYY-MM-DD date")
	ErrRunNotFound          = errors.New("payroll run not found")
	ErrBatchNotApproved     = errors.New("timesheet batch must be approved before a payroll run")
	ErrInvalidRunTransition = errors.New("payroll run status transition not allowed")
)
