package script

import (
	"strings"

	"golang.org/x/text/cases"
)

// Team classifies a character on the sheet.
type Team string

// Known teams, in sheet order.
const (
	Townsfolk Team = "townsfolk"
	Outsider  Team = "outsider"
	Minion    Team = "minion"
	Demon     Team = "demon"
	Traveller Team = "traveller"
	Fabled    Team = "fabled"
	Loric     Team = "loric"
)

// Teams lists every known team in sheet order.
func Teams() []Team {
	return []Team{Townsfolk, Outsider, Minion, Demon, Traveller, Fabled, Loric}
}

// ParseTeam returns the known team matching s (case-insensitive).
func ParseTeam(s string) (Team, bool) {
	t := Team(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Townsfolk, Outsider, Minion, Demon, Traveller, Fabled, Loric:
		return t, true
	}
	return "", false
}

// Character is a single game role. Values are never mutated after parsing.
type Character struct {
	ID                 string
	Name               string
	Team               Team
	Ability            string
	FirstNightReminder string
	OtherNightReminder string
	FirstNight         float64 // night order position, 0 = does not wake
	OtherNight         float64
	Images             []string
	WikiImage          string
	Jinxes             []JinxDeclaration
	Custom             bool // defined inline in the script rather than in the catalog
}

// JinxDeclaration is an inline jinx declared by a custom character.
type JinxDeclaration struct {
	ID     string
	Reason string
}

// Metadata is the content of the "_meta" script entry.
type Metadata struct {
	Name       string
	Author     string
	Logo       string
	Bootlegger []string
	FirstNight []string
	OtherNight []string
}

// Script is a parsed raw script: optional metadata plus characters in
// script order.
type Script struct {
	Metadata   *Metadata
	Characters []Character
}

// FoldID normalizes a character id for case-insensitive comparison.
// A new Caser is built per call since casers carry state.
func FoldID(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}

// idSet returns the folded ids of chars.
func idSet(chars []Character) map[string]bool {
	set := make(map[string]bool, len(chars))
	for _, c := range chars {
		set[FoldID(c.ID)] = true
	}
	return set
}

// byID indexes chars by folded id, keeping the first occurrence.
func byID(chars []Character) map[string]Character {
	index := make(map[string]Character, len(chars))
	for _, c := range chars {
		key := FoldID(c.ID)
		if _, ok := index[key]; !ok {
			index[key] = c
		}
	}
	return index
}
