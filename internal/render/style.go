package render

import "github.com/alnah/go-scriptpdf/internal/script"

// Page holds the physical sheet dimensions in millimetres.
type Page struct {
	Width  float64
	Height float64
	Margin float64
	Bleed  float64
}

// Style holds the cosmetic options of a document.
type Style struct {
	Colors              []string // hex colours, two or more draw a gradient
	Logo                string
	ShowLogo            bool
	ShowTitle           bool
	ShowAuthor          bool
	ShowSwirls          bool
	IncludeMargins      bool
	SolidTitle          bool
	Appearance          string // normal, compact, super-compact, mega-compact
	IconScale           float64
	FormatMinorWords    bool
	DisplayNightOrder   bool
	DisplayPlayerCounts bool
	InlineJinxIcons     script.JinxIconMode
	IconURLTemplate     string
	TitleFont           string
	TitleLetterSpacing  float64 // mm
	TitleWordSpacing    float64 // mm
	CustomFontURL       string
	Page                Page
}

// DefaultColor is the sheet colour used when none is configured.
const DefaultColor = "#4e2e8c"

// Appearance values.
const (
	AppearanceNormal       = "normal"
	AppearanceCompact      = "compact"
	AppearanceSuperCompact = "super-compact"
	AppearanceMegaCompact  = "mega-compact"
)

// IsAppearance reports whether s names a known appearance.
func IsAppearance(s string) bool {
	switch s {
	case AppearanceNormal, AppearanceCompact, AppearanceSuperCompact, AppearanceMegaCompact:
		return true
	}
	return false
}
