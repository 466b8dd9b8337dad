package errors

import "errors"

var (
	ErrNotFound = errors.New("resource not found")

	// ErrValidation wraps every request validation failure so handlers can
	// tell a 422 apart from other errors with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUpload marks an object storage failure during report creation. The
	// report document must not be written when this is returned.
	ErrUpload = errors.New("image upload failed")

	// ErrWrite marks a document store failure after validation (and any
	// upload) succeeded. An already uploaded image is left orphaned.
	ErrWrite = errors.New("document write failed")
)
