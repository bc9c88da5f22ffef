package script

import "errors"

// Sentinel errors for script validation and parsing.
var (
	ErrInvalidScript     = errors.New("invalid script")
	ErrTooManyCharacters = errors.New("too many characters")
	ErrScriptTooLarge    = errors.New("script exceeds maximum size")
	ErrInvalidCatalog    = errors.New("invalid character catalog")
)
