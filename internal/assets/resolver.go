package assets

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)

// AssetResolver serves styles and template sets from an optional asset
// directory, falling back to the embedded assets for names the directory
// does not provide.
type AssetResolver struct {
	custom   AssetLoader // nil without an asset directory
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty dir means embedded
// assets only; otherwise dir must be a readable directory.
func NewAssetResolver(dir string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if dir == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(dir)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle returns the CSS of the named style.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return withFallback(r, func(l AssetLoader) (string, error) {
		return l.LoadStyle(name)
	})
}

// LoadTemplateSet returns the named template set.
func (r *AssetResolver) LoadTemplateSet(name string) (*TemplateSet, error) {
	return withFallback(r, func(l AssetLoader) (*TemplateSet, error) {
		return l.LoadTemplateSet(name)
	})
}

// HasCustomLoader reports whether an asset directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// withFallback tries the asset directory first. Only a not-found error
// moves on to the embedded assets; invalid names and read errors are
// returned as is.
func withFallback[T any](r *AssetResolver, load func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil || !IsNotFound(err) {
		return v, err
	}
	return load(r.embedded)
}
