package script

import "log/slog"

// Classifier decides which team a character belongs to. The second return
// value is false when the character cannot be classified.
type Classifier interface {
	Classify(c Character) (Team, bool)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(c Character) (Team, bool)

// Classify implements Classifier.
func (f ClassifierFunc) Classify(c Character) (Team, bool) {
	return f(c)
}

// DeclaredTeam classifies characters by their declared team field.
var DeclaredTeam Classifier = ClassifierFunc(func(c Character) (Team, bool) {
	return ParseTeam(string(c.Team))
})

// Grouped partitions characters into the seven team buckets. Characters
// that could not be classified are kept apart in Excluded.
type Grouped struct {
	Townsfolk []Character
	Outsider  []Character
	Minion    []Character
	Demon     []Character
	Traveller []Character
	Fabled    []Character
	Loric     []Character

	// Known holds every classified character in script order.
	Known []Character
	// Excluded holds characters the classifier rejected.
	Excluded []Character
}

// Team returns the bucket for t (nil for an unknown team).
func (g *Grouped) Team(t Team) []Character {
	switch t {
	case Townsfolk:
		return g.Townsfolk
	case Outsider:
		return g.Outsider
	case Minion:
		return g.Minion
	case Demon:
		return g.Demon
	case Traveller:
		return g.Traveller
	case Fabled:
		return g.Fabled
	case Loric:
		return g.Loric
	}
	return nil
}

// Len returns the number of grouped (classified) characters.
func (g *Grouped) Len() int {
	n := 0
	for _, t := range Teams() {
		n += len(g.Team(t))
	}
	return n
}

func (g *Grouped) add(t Team, c Character) {
	switch t {
	case Townsfolk:
		g.Townsfolk = append(g.Townsfolk, c)
	case Outsider:
		g.Outsider = append(g.Outsider, c)
	case Minion:
		g.Minion = append(g.Minion, c)
	case Demon:
		g.Demon = append(g.Demon, c)
	case Traveller:
		g.Traveller = append(g.Traveller, c)
	case Fabled:
		g.Fabled = append(g.Fabled, c)
	case Loric:
		g.Loric = append(g.Loric, c)
	}
}

// GroupByTeam partitions chars into team buckets, preserving script order
// inside each bucket. A character the classifier rejects is logged and
// excluded; the rest of the script is still grouped.
func GroupByTeam(chars []Character, classifier Classifier, logger *slog.Logger) Grouped {
	if classifier == nil {
		classifier = DeclaredTeam
	}
	logger = orDiscard(logger)

	var g Grouped
	for _, c := range chars {
		team, ok := classifier.Classify(c)
		if !ok {
			logger.Warn("unknown team, excluding character",
				slog.String("id", c.ID),
				slog.String("team", string(c.Team)))
			g.Excluded = append(g.Excluded, c)
			continue
		}
		// The bucket is authoritative for the team from here on.
		c.Team = team
		g.add(team, c)
		g.Known = append(g.Known, c)
	}
	return g
}
