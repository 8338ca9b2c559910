package assets

// AssetLoader loads stylesheets and template sets.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplateSet loads the document and index templates of a set.
	LoadTemplateSet(name string) (*TemplateSet, error)
}
