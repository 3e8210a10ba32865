package ontology

import "errors"

// Common ontology errors.
var (
	// ErrUnknownScheme is returned when an adapter string names a scheme
	// no registered factory handles.
	ErrUnknownScheme = errors.New("unknown adapter scheme")

	// ErrInvalidAdapterString is returned when an adapter string has no
	// scheme component.
	ErrInvalidAdapterString = errors.New("invalid adapter string")
)
