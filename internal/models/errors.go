package models

import "errors"

// Catalog error taxonomy. Repositories and services return these sentinels,
// optionally wrapped with context, and handlers map them to HTTP statuses
// and flash messages with errors.Is.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateName    = errors.New("name already in use")
	ErrInvalidExtension = errors.New("file extension not allowed")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrInvalidReference = errors.New("referenced category does not exist")
	ErrNotFound         = errors.New("resource not found")
	ErrPayloadTooLarge  = errors.New("request body too large")
	ErrStorageFailure   = errors.New("storage failure")
	ErrAuthFailure      = errors.New("invalid password")
)
