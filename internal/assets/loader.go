package assets

// AssetLoader looks up styles and template sets by name. Names are
// validated with ValidateAssetName before any lookup.
type AssetLoader interface {
	// LoadStyle returns the CSS of a style, named without its .css
	// extension, or an error wrapping ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplateSet returns a template set, or an error wrapping
	// ErrTemplateSetNotFound, or ErrIncompleteTemplateSet when one of its
	// files is missing.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
