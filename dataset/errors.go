package dataset

import "errors"

var (
	ErrUnknownCity   = errors.New("unknown city")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidColumn = errors.New("invalid column values")
)
