package services

import "errors"

// Error taxonomy the handlers translate to HTTP statuses. Services
// wrap these with context via fmt.Errorf("...: %w", Err...).
var (
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)
