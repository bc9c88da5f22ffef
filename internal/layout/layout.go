// Package layout decides which sheet sides a script document is made of and
// in which physical order they print. It renders nothing.
package layout

// ContentType identifies what a sheet (or half-sheet) carries.
type ContentType string

// Sheet content types.
const (
	CharacterFront     ContentType = "characterFront"
	BackingSheet       ContentType = "backingSheet"
	InfoSheet          ContentType = "infoSheet"
	NightSheetFirst    ContentType = "nightSheetFirst"
	NightSheetOther    ContentType = "nightSheetOther"
	NightSheetCombined ContentType = "nightSheetCombined"

	// Blank is an empty teensy half kept so the other half stays in place.
	Blank ContentType = "blank"
)

// Overleaf is the content printed on the back of a character sheet.
type Overleaf string

// Overleaf modes.
const (
	OverleafNone    Overleaf = "none"
	OverleafBacking Overleaf = "backingSheet"
	OverleafInfo    Overleaf = "infoSheet"
)

// ParseOverleaf returns the overleaf named by s. The empty string maps to
// OverleafNone.
func ParseOverleaf(s string) (Overleaf, bool) {
	switch o := Overleaf(s); o {
	case "":
		return OverleafNone, true
	case OverleafNone, OverleafBacking, OverleafInfo:
		return o, true
	}
	return "", false
}

// content returns the back content type of the overleaf.
func (o Overleaf) content() (ContentType, bool) {
	switch o {
	case OverleafBacking:
		return BackingSheet, true
	case OverleafInfo:
		return InfoSheet, true
	}
	return "", false
}

// Sheet is one logical sheet within a side.
type Sheet struct {
	Content ContentType
	// DuplicateOfFirst is set on every character sheet or back that repeats
	// the first copy.
	DuplicateOfFirst bool
}

// Side is one physical page side. In normal mode a side holds one sheet; in
// teensy mode it holds up to two half-size sheets, left to right.
type Side struct {
	Sheets []Sheet
}

// Plan is the ordered list of physical sides of a document.
type Plan struct {
	Teensy bool
	Sides  []Side
}

// Sheets flattens the plan into sheets in physical order.
func (p Plan) Sheets() []Sheet {
	var out []Sheet
	for _, s := range p.Sides {
		out = append(out, s.Sheets...)
	}
	return out
}

// Count returns the number of sheets of content type c.
func (p Plan) Count(c ContentType) int {
	n := 0
	for _, s := range p.Sheets() {
		if s.Content == c {
			n++
		}
	}
	return n
}

// Pages returns the number of physical sides.
func (p Plan) Pages() int {
	return len(p.Sides)
}
