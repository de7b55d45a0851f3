package domain

import "errors"

// Sentinel errors for the project domain. Use errors.Is() to check these.
var (
	// ErrProjectNotFound indicates the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrItemNotFound indicates the requested item does not exist in the project.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidProject indicates project fields violate domain constraints.
	ErrInvalidProject = errors.New("invalid project")

	// ErrInvalidItem indicates item fields violate domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrUnsupportedExportFormat indicates an export format other than text or xlsx.
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
