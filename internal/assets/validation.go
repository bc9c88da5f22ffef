package assets

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxAssetNameLen bounds style and template set names, in runes.
const maxAssetNameLen = 64

// ValidateAssetName checks that name can be joined to an asset directory
// as a single file or directory name. Separators and dots are refused, so
// a name can neither climb out of the directory nor pick an extension.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case utf8.RuneCountInString(name) > maxAssetNameLen:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxAssetNameLen)
	case strings.ContainsAny(name, `/\.`):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return fmt.Errorf("%w: %q contains control characters", ErrInvalidAssetName, name)
	}
	return nil
}
