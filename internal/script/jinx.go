package script

// Jinx is an interaction rule between two characters. Characters holds
// folded ids in display order.
type Jinx struct {
	Characters [2]string
	Text       string
	OldText    string
}

// JinxIconMode controls which characters show inline jinx icons.
type JinxIconMode string

// Inline jinx icon modes.
const (
	JinxIconsNone    JinxIconMode = "none"
	JinxIconsPrimary JinxIconMode = "primary" // only the first character of a pair
	JinxIconsBoth    JinxIconMode = "both"
)

// ParseJinxIconMode returns the mode named by s. An empty string is primary.
func ParseJinxIconMode(s string) (JinxIconMode, bool) {
	switch m := JinxIconMode(s); m {
	case "":
		return JinxIconsPrimary, true
	case JinxIconsNone, JinxIconsPrimary, JinxIconsBoth:
		return m, true
	}
	return "", false
}

// pairKey identifies an unordered id pair.
type pairKey [2]string

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// FindJinxes returns the jinxes active for chars: catalog jinxes whose two
// characters are in chars (in catalog order), then jinxes declared inline by
// characters of the script. A pair never appears twice regardless of
// direction; the first discovered direction is kept. When useOld is set,
// catalog jinxes with an old text use it instead.
func FindJinxes(chars []Character, catalogJinxes []Jinx, useOld bool) []Jinx {
	ids := idSet(chars)
	seen := make(map[pairKey]bool)
	var out []Jinx

	add := func(a, b, text, oldText string) {
		key := newPairKey(a, b)
		if a == b || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Jinx{Characters: [2]string{a, b}, Text: text, OldText: oldText})
	}

	for _, j := range catalogJinxes {
		a, b := FoldID(j.Characters[0]), FoldID(j.Characters[1])
		if !ids[a] || !ids[b] {
			continue
		}
		text := j.Text
		if useOld && j.OldText != "" {
			text = j.OldText
		}
		add(a, b, text, j.OldText)
	}

	for _, c := range chars {
		a := FoldID(c.ID)
		for _, decl := range c.Jinxes {
			b := FoldID(decl.ID)
			if ids[b] {
				add(a, b, decl.Reason, "")
			}
		}
	}
	return out
}

// JinxedWith returns the characters of all that share a jinx with c, in the
// order they appear in all. In primary mode only pairs where c comes first
// count.
func JinxedWith(c Character, jinxes []Jinx, all []Character, mode JinxIconMode) []Character {
	if mode == JinxIconsNone || mode == "" {
		return nil
	}
	id := FoldID(c.ID)
	partners := make(map[string]bool)
	for _, j := range jinxes {
		switch {
		case j.Characters[0] == id:
			partners[j.Characters[1]] = true
		case j.Characters[1] == id && mode == JinxIconsBoth:
			partners[j.Characters[0]] = true
		}
	}
	if len(partners) == 0 {
		return nil
	}

	var out []Character
	for _, other := range all {
		if partners[FoldID(other.ID)] {
			out = append(out, other)
		}
	}
	return out
}

// ResolvedJinx is a jinx with both of its characters looked up.
type ResolvedJinx struct {
	First  Character
	Second Character
	Text   string
}

// ResolveJinxes maps jinx ids back to characters. Jinxes referencing a
// character missing from chars are skipped.
func ResolveJinxes(jinxes []Jinx, chars []Character) []ResolvedJinx {
	index := byID(chars)
	out := make([]ResolvedJinx, 0, len(jinxes))
	for _, j := range jinxes {
		first, ok1 := index[j.Characters[0]]
		second, ok2 := index[j.Characters[1]]
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, ResolvedJinx{First: first, Second: second, Text: j.Text})
	}
	return out
}
