package diskgrid

import "errors"

var (
	// ErrEmptyKey indicates New was called with an empty (or blank) key.
	ErrEmptyKey = errors.New("diskgrid: key must not be empty")
	// ErrWorkers indicates a worker count below 1.
	ErrWorkers = errors.New("diskgrid: worker count must be at least 1")
	// ErrRowIndex indicates a row outside [0, Rows).
	ErrRowIndex = errors.New("diskgrid: row index out of range")
)
