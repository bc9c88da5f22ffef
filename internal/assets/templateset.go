package assets

// TemplateSet holds the HTML templates for sheet rendering.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Document string // Page skeleton iterating over plan sides
	Sheets   string // {{define}} blocks for each sheet content type
}

// Template file names inside a template set directory.
const (
	documentFile = "document.html"
	sheetsFile   = "sheets.html"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"
