package scriptpdf

import (
	"fmt"

	"github.com/alnah/go-scriptpdf/internal/layout"
	"github.com/alnah/go-scriptpdf/internal/render"
	"github.com/alnah/go-scriptpdf/internal/script"
)

// Overleaf is the content printed on the back of every character sheet.
type Overleaf string

// Overleaf values.
const (
	OverleafNone    Overleaf = "none"
	OverleafBacking Overleaf = "backingSheet"
	OverleafInfo    Overleaf = "infoSheet"
)

// Appearance controls how densely the character list is typeset.
type Appearance string

// Appearance values.
const (
	AppearanceNormal       Appearance = render.AppearanceNormal
	AppearanceCompact      Appearance = render.AppearanceCompact
	AppearanceSuperCompact Appearance = render.AppearanceSuperCompact
	AppearanceMegaCompact  Appearance = render.AppearanceMegaCompact
)

// JinxIconMode selects which characters show a jinx icon next to their
// ability text.
type JinxIconMode string

// Inline jinx icon modes.
const (
	JinxIconsNone    JinxIconMode = JinxIconMode(script.JinxIconsNone)
	JinxIconsPrimary JinxIconMode = JinxIconMode(script.JinxIconsPrimary)
	JinxIconsBoth    JinxIconMode = JinxIconMode(script.JinxIconsBoth)
)

// Option defaults.
const (
	DefaultIconURLTemplate    = "https://raw.githubusercontent.com/tomozbot/botc-icons/refs/heads/main/PNG/{id}.png"
	DefaultTitleFont          = "Utm Agin"
	DefaultTitleLetterSpacing = -0.6
	DefaultIconScale          = 1.7
	DefaultColor              = render.DefaultColor

	// MaxCharacterSheets bounds NumberOfCharacterSheets.
	MaxCharacterSheets = 100

	// MaxCharacters is the most characters a script may list, "_meta" excluded.
	MaxCharacters = script.MaxCharacters
	// MaxScriptSize is the largest accepted script payload in bytes.
	MaxScriptSize = script.MaxScriptSize
)

// Dimensions are the physical sheet size in millimetres. Margin is the
// printer-safe inset and Bleed the extra area trimmed after printing.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Margin float64 `json:"margin" yaml:"margin"`
	Bleed  float64 `json:"bleed" yaml:"bleed"`
}

// A4 is the default sheet size.
var A4 = Dimensions{Width: 210, Height: 297}

// Options controls the layout and look of a script document.
type Options struct {
	// NumberOfCharacterSheets is how many copies of the character sheet to
	// print. Night sheets are always printed once.
	NumberOfCharacterSheets int
	Overleaf                Overleaf
	// Teensy prints half-size sheets, two side by side on a landscape page.
	Teensy         bool
	ShowNightSheet bool

	Colors              []string
	Logo                string
	ShowLogo            bool
	ShowTitle           bool
	ShowAuthor          bool
	ShowJinxes          bool
	UseOldJinxes        bool
	ShowSwirls          bool
	IncludeMargins      bool
	SolidTitle          bool
	Appearance          Appearance
	IconScale           float64
	FormatMinorWords    bool
	DisplayNightOrder   bool
	DisplayPlayerCounts bool
	InlineJinxIcons     JinxIconMode
	// IconURLTemplate builds character icon URLs; "{id}" is replaced by the
	// character id.
	IconURLTemplate    string
	TitleFont          string
	TitleLetterSpacing float64
	TitleWordSpacing   float64
	CustomFontURL      string
	Dimensions         Dimensions
}

// DefaultOptions returns the options used when an Input carries none.
func DefaultOptions() *Options {
	return &Options{
		NumberOfCharacterSheets: 1,
		Overleaf:                OverleafBacking,
		ShowNightSheet:          true,
		Colors:                  []string{DefaultColor},
		ShowLogo:                true,
		ShowTitle:               true,
		ShowAuthor:              true,
		ShowJinxes:              true,
		ShowSwirls:              true,
		Appearance:              AppearanceNormal,
		IconScale:               DefaultIconScale,
		DisplayNightOrder:       true,
		DisplayPlayerCounts:     true,
		InlineJinxIcons:         JinxIconsPrimary,
		IconURLTemplate:         DefaultIconURLTemplate,
		TitleFont:               DefaultTitleFont,
		TitleLetterSpacing:      DefaultTitleLetterSpacing,
		Dimensions:              A4,
	}
}

// Validate checks option values. A nil Options is valid and means defaults.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	if o.NumberOfCharacterSheets < 1 || o.NumberOfCharacterSheets > MaxCharacterSheets {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidSheetCount, o.NumberOfCharacterSheets, MaxCharacterSheets)
	}
	if _, ok := layout.ParseOverleaf(string(o.Overleaf)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOverleaf, o.Overleaf)
	}
	if o.Appearance != "" && !render.IsAppearance(string(o.Appearance)) {
		return fmt.Errorf("%w: %q", ErrInvalidAppearance, o.Appearance)
	}
	if _, ok := script.ParseJinxIconMode(string(o.InlineJinxIcons)); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidJinxIconMode, o.InlineJinxIcons)
	}
	if o.IconScale < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidIconScale, o.IconScale)
	}
	for _, c := range o.Colors {
		if !render.ValidColor(c) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}
	return o.Dimensions.validate()
}

func (d Dimensions) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrInvalidDimensions)
	}
	if d.Margin < 0 || d.Bleed < 0 {
		return fmt.Errorf("%w: margin and bleed must not be negative", ErrInvalidDimensions)
	}
	if 2*(d.Margin+d.Bleed) >= min(d.Width, d.Height) {
		return fmt.Errorf("%w: margin and bleed leave no printable area", ErrInvalidDimensions)
	}
	return nil
}

// orDefault returns o, or DefaultOptions when o is nil.
func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}

// overleaf returns the layout overleaf. Options must be valid.
func (o *Options) overleaf() layout.Overleaf {
	ov, _ := layout.ParseOverleaf(string(o.Overleaf))
	return ov
}

// duplicates reports whether the PDF is rendered once and its pages copied
// afterwards rather than rendering every copy.
func (o *Options) duplicates() bool {
	return !o.Teensy && o.NumberOfCharacterSheets > 1 && o.overleaf() != layout.OverleafNone
}

// resolveOptions maps o to the script resolver options.
func (o *Options) resolveOptions(catalog script.Catalog) script.ResolveOptions {
	return script.ResolveOptions{
		CatalogJinxes:   catalog.Jinxes(),
		ShowJinxes:      o.ShowJinxes,
		UseOldJinxes:    o.UseOldJinxes,
		IconURLTemplate: o.IconURLTemplate,
	}
}

// layoutRequest maps o and the resolved night orders to a pagination request.
func (o *Options) layoutRequest(r *script.Resolved, copies int) layout.Request {
	return layout.Request{
		Copies:        copies,
		Overleaf:      o.overleaf(),
		Teensy:        o.Teensy,
		NightSheet:    o.ShowNightSheet,
		HasFirstNight: len(r.Night.First) > 0,
		HasOtherNight: len(r.Night.Other) > 0,
	}
}

// style maps o to the renderer style.
func (o *Options) style() render.Style {
	mode, _ := script.ParseJinxIconMode(string(o.InlineJinxIcons))
	appearance := string(o.Appearance)
	if appearance == "" {
		appearance = render.AppearanceNormal
	}
	return render.Style{
		Colors:              o.Colors,
		Logo:                o.Logo,
		ShowLogo:            o.ShowLogo,
		ShowTitle:           o.ShowTitle,
		ShowAuthor:          o.ShowAuthor,
		ShowSwirls:          o.ShowSwirls,
		IncludeMargins:      o.IncludeMargins,
		SolidTitle:          o.SolidTitle,
		Appearance:          appearance,
		IconScale:           o.IconScale,
		FormatMinorWords:    o.FormatMinorWords,
		DisplayNightOrder:   o.DisplayNightOrder,
		DisplayPlayerCounts: o.DisplayPlayerCounts,
		InlineJinxIcons:     mode,
		IconURLTemplate:     o.IconURLTemplate,
		TitleFont:           o.TitleFont,
		TitleLetterSpacing:  o.TitleLetterSpacing,
		TitleWordSpacing:    o.TitleWordSpacing,
		CustomFontURL:       o.CustomFontURL,
		Page: render.Page{
			Width:  o.Dimensions.Width,
			Height: o.Dimensions.Height,
			Margin: o.Dimensions.Margin,
			Bleed:  o.Dimensions.Bleed,
		},
	}
}

// paperSize returns the physical page size in millimetres. Teensy pages are
// the sheet dimensions turned landscape.
func (o *Options) paperSize() (width, height float64) {
	if o.Teensy {
		return o.Dimensions.Height, o.Dimensions.Width
	}
	return o.Dimensions.Width, o.Dimensions.Height
}
