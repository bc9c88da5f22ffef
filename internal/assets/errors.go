package assets

import "errors"

// Lookup errors. The resolver falls back to the embedded assets only for
// these.
var (
	ErrStyleNotFound       = errors.New("style not found")
	ErrTemplateSetNotFound = errors.New("template set not found")
)

// Errors for malformed names, directories or template sets.
var (
	ErrInvalidAssetName      = errors.New("invalid asset name")
	ErrInvalidBasePath       = errors.New("invalid asset directory")
	ErrIncompleteTemplateSet = errors.New("incomplete template set")
	ErrAssetRead             = errors.New("reading asset")
	ErrPathTraversal         = errors.New("asset path escapes asset directory")
)

// IsNotFound reports whether err means a style or template set does not
// exist, as opposed to existing but being unreadable or invalid.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateSetNotFound)
}
