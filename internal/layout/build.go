package layout

// Request describes the document to lay out.
type Request struct {
	Copies     int // character sheets requested, values below 1 count as 1
	Overleaf   Overleaf
	Teensy     bool
	NightSheet bool

	// Whether the first night and other nights sequences have entries.
	HasFirstNight bool
	HasOtherNight bool
}

func (r Request) copies() int {
	return max(r.Copies, 1)
}

// nightRequested reports whether any night content is owed.
func (r Request) nightRequested() bool {
	return r.NightSheet && (r.HasFirstNight || r.HasOtherNight)
}

// Build computes the plan for r. It is a pure function of r.
func Build(r Request) Plan {
	if r.Teensy {
		return Plan{Teensy: true, Sides: teensySides(r)}
	}
	return Plan{Sides: normalSides(r)}
}

func single(c ContentType, dup bool) Side {
	return Side{Sheets: []Sheet{{Content: c, DuplicateOfFirst: dup}}}
}

// normalSides repeats front (and back) per copy, then appends the night
// sides that have content.
func normalSides(r Request) []Side {
	back, hasBack := r.Overleaf.content()
	var sides []Side
	for i := range r.copies() {
		sides = append(sides, single(CharacterFront, i > 0))
		if hasBack {
			sides = append(sides, single(back, i > 0))
		}
	}
	if r.NightSheet && r.HasFirstNight {
		sides = append(sides, single(NightSheetFirst, false))
	}
	if r.NightSheet && r.HasOtherNight {
		sides = append(sides, single(NightSheetOther, false))
	}
	return sides
}

// nightHalf returns c for a night sequence with entries, Blank otherwise.
func nightHalf(hasEntries bool, c ContentType) ContentType {
	if hasEntries {
		return c
	}
	return Blank
}

// teensySides imposes two half-size sheets per side. The copy count is
// rounded up to even; when it was odd, the spare half of the last front
// carries the first night and the matching half of its back the other
// nights, provided there is a back to carry it. Otherwise night content
// gets its own trailing side.
func teensySides(r Request) []Side {
	n := r.copies()
	rounded := n + n%2
	back, hasBack := r.Overleaf.content()
	night := r.nightRequested()

	var sides []Side
	for i := 0; i < rounded; i += 2 {
		real2 := i+1 < n
		spareNight := !real2 && night && hasBack

		front := Side{Sheets: []Sheet{{Content: CharacterFront, DuplicateOfFirst: i > 0}}}
		switch {
		case real2:
			front.Sheets = append(front.Sheets, Sheet{Content: CharacterFront, DuplicateOfFirst: true})
		case spareNight:
			front.Sheets = append(front.Sheets, Sheet{Content: nightHalf(r.HasFirstNight, NightSheetFirst)})
		}
		sides = append(sides, front)

		if !hasBack {
			continue
		}
		// The back mirrors the front so halves line up when printed
		// double-sided.
		var b Side
		switch {
		case spareNight:
			b.Sheets = []Sheet{{Content: nightHalf(r.HasOtherNight, NightSheetOther)}, {Content: back, DuplicateOfFirst: i > 0}}
		case real2:
			b.Sheets = []Sheet{{Content: back, DuplicateOfFirst: i > 0}, {Content: back, DuplicateOfFirst: true}}
		default:
			b.Sheets = []Sheet{{Content: back, DuplicateOfFirst: i > 0}}
		}
		sides = append(sides, b)
	}

	if night && (n%2 == 0 || !hasBack) {
		sides = append(sides, single(NightSheetCombined, false))
	}
	return sides
}
