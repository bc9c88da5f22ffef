package scriptpdf

import "github.com/alnah/go-scriptpdf/internal/layout"

// ContentType identifies what a sheet carries.
type ContentType string

// Sheet content types.
const (
	ContentCharacterFront     = ContentType(layout.CharacterFront)
	ContentBackingSheet       = ContentType(layout.BackingSheet)
	ContentInfoSheet          = ContentType(layout.InfoSheet)
	ContentNightSheetFirst    = ContentType(layout.NightSheetFirst)
	ContentNightSheetOther    = ContentType(layout.NightSheetOther)
	ContentNightSheetCombined = ContentType(layout.NightSheetCombined)
	ContentBlank              = ContentType(layout.Blank)
)

// SheetDescriptor is one logical sheet within a side.
type SheetDescriptor struct {
	Content ContentType `json:"content" yaml:"content"`
	// DuplicateOfFirst marks a character sheet or back repeating the first copy.
	DuplicateOfFirst bool `json:"duplicateOfFirst,omitempty" yaml:"duplicateOfFirst,omitempty"`
}

// Side is one printed page side. In teensy mode it holds up to two
// half-size sheets, left to right.
type Side struct {
	Sheets []SheetDescriptor `json:"sheets" yaml:"sheets"`
}

// Plan is the ordered list of printed sides of a document.
type Plan struct {
	Teensy bool   `json:"teensy" yaml:"teensy"`
	Sides  []Side `json:"sides" yaml:"sides"`
}

// Pages returns the number of printed sides.
func (p Plan) Pages() int {
	return len(p.Sides)
}

// Count returns the number of sheets carrying content c.
func (p Plan) Count(c ContentType) int {
	n := 0
	for _, side := range p.Sides {
		for _, s := range side.Sheets {
			if s.Content == c {
				n++
			}
		}
	}
	return n
}

func planFromLayout(lp layout.Plan) Plan {
	p := Plan{Teensy: lp.Teensy, Sides: make([]Side, len(lp.Sides))}
	for i, side := range lp.Sides {
		sheets := make([]SheetDescriptor, len(side.Sheets))
		for j, s := range side.Sheets {
			sheets[j] = SheetDescriptor{Content: ContentType(s.Content), DuplicateOfFirst: s.DuplicateOfFirst}
		}
		p.Sides[i] = Side{Sheets: sheets}
	}
	return p
}
