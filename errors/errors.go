package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrEmptyServiceLabel = fmt.Errorf("empty service label")
	ErrInvalidHours      = fmt.Errorf("hours must be a positive integer")
)
