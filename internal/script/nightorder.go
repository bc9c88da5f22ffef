package script

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
)

// Marker is a night order entry that is not a character.
type Marker string

// Night order markers.
const (
	Dusk       Marker = "dusk"
	Dawn       Marker = "dawn"
	MinionInfo Marker = "minioninfo"
	DemonInfo  Marker = "demoninfo"
)

// Night selects one of the two night order sequences.
type Night int

// Nights.
const (
	FirstNight Night = iota
	OtherNights
)

type markerText struct {
	name  string
	first string
	other string
}

// markerTexts holds the reminder wording of each marker. Minion and demon
// info only happen on the first night.
var markerTexts = map[Marker]markerText{
	Dusk: {
		name:  "Dusk",
		first: "Start the Night Phase.",
		other: "Start the Night Phase.",
	},
	Dawn: {
		name:  "Dawn",
		first: "Wait for a few seconds. End the Night Phase.",
		other: "Wait for a few seconds. End the Night Phase.",
	},
	MinionInfo: {
		name:  "Minion Info",
		first: "If there are 7 or more players, wake all Minions: Show the *THIS IS THE DEMON* token. Point to the Demon. Show the *THESE ARE YOUR MINIONS* token. Point to the other Minions.",
	},
	DemonInfo: {
		name:  "Demon Info",
		first: "If there are 7 or more players, wake the Demon: Show the *THESE ARE YOUR MINIONS* token. Point to all Minions. Show the *THESE CHARACTERS ARE NOT IN PLAY* token. Show 3 not-in-play good character tokens.",
	},
}

// ParseMarker returns the marker named by s (case-insensitive).
func ParseMarker(s string) (Marker, bool) {
	m := Marker(strings.ToLower(strings.TrimSpace(s)))
	_, ok := markerTexts[m]
	return m, ok
}

// NightEntry is one step of a night order: either a marker or a character.
type NightEntry struct {
	Marker    Marker
	Character *Character
}

// IsMarker reports whether the entry is a non-character marker.
func (e NightEntry) IsMarker() bool {
	return e.Character == nil
}

// ID returns the character id or the marker name.
func (e NightEntry) ID() string {
	if e.Character != nil {
		return e.Character.ID
	}
	return string(e.Marker)
}

// Name returns the display name of the entry.
func (e NightEntry) Name() string {
	if e.Character != nil {
		return e.Character.Name
	}
	return markerTexts[e.Marker].name
}

// Reminder returns the reminder text for the given night.
func (e NightEntry) Reminder(n Night) string {
	if e.Character != nil {
		if n == FirstNight {
			return e.Character.FirstNightReminder
		}
		return e.Character.OtherNightReminder
	}
	t := markerTexts[e.Marker]
	if n == FirstNight {
		return t.first
	}
	return t.other
}

// NightOrders holds the two independent night sequences.
type NightOrders struct {
	First []NightEntry
	Other []NightEntry
}

// CalculateNightOrders builds the first night and other nights sequences for
// chars. Lists declared in meta are followed exactly; an id that is neither a
// marker nor one of chars is logged and dropped. A night without a declared
// list falls back to the characters' numeric night positions.
func CalculateNightOrders(meta *Metadata, chars []Character, logger *slog.Logger) NightOrders {
	logger = orDiscard(logger)
	index := byID(chars)

	var orders NightOrders
	if meta != nil && len(meta.FirstNight) > 0 {
		orders.First = fromDeclared(meta.FirstNight, index, "first", logger)
	} else {
		orders.First = fromPositions(chars, FirstNight)
	}
	if meta != nil && len(meta.OtherNight) > 0 {
		orders.Other = fromDeclared(meta.OtherNight, index, "other", logger)
	} else {
		orders.Other = fromPositions(chars, OtherNights)
	}
	return orders
}

func fromDeclared(ids []string, index map[string]Character, night string, logger *slog.Logger) []NightEntry {
	entries := make([]NightEntry, 0, len(ids))
	for _, id := range ids {
		if m, ok := ParseMarker(id); ok {
			entries = append(entries, NightEntry{Marker: m})
			continue
		}
		c, ok := index[FoldID(id)]
		if !ok {
			logger.Warn("night order references a character not in the script, dropping",
				slog.String("id", id),
				slog.String("night", night))
			continue
		}
		entries = append(entries, NightEntry{Character: &c})
	}
	return entries
}

// fromPositions orders characters waking on night n by position (stable on
// script order), bracketed by dusk and dawn. The first night also wakes the
// minions and demon for their info when the script has any.
func fromPositions(chars []Character, n Night) []NightEntry {
	type positioned struct {
		pos float64
		c   Character
	}
	var waking []positioned
	hasMinion, hasDemon := false, false
	for _, c := range chars {
		switch c.Team {
		case Minion:
			hasMinion = true
		case Demon:
			hasDemon = true
		}
		pos := c.FirstNight
		if n == OtherNights {
			pos = c.OtherNight
		}
		if pos > 0 {
			waking = append(waking, positioned{pos: pos, c: c})
		}
	}
	if len(waking) == 0 {
		return nil
	}
	slices.SortStableFunc(waking, func(a, b positioned) int {
		return cmp.Compare(a.pos, b.pos)
	})

	entries := []NightEntry{{Marker: Dusk}}
	if n == FirstNight {
		if hasMinion {
			entries = append(entries, NightEntry{Marker: MinionInfo})
		}
		if hasDemon {
			entries = append(entries, NightEntry{Marker: DemonInfo})
		}
	}
	for _, w := range waking {
		c := w.c
		entries = append(entries, NightEntry{Character: &c})
	}
	return append(entries, NightEntry{Marker: Dawn})
}
