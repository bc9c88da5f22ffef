package script

import "log/slog"

// DefaultTitle is used when the script has no name.
const DefaultTitle = "Custom Script"

// ResolveOptions controls Resolve.
type ResolveOptions struct {
	Classifier      Classifier // nil = DeclaredTeam
	CatalogJinxes   []Jinx
	ShowJinxes      bool
	UseOldJinxes    bool
	IconURLTemplate string
}

// Resolved is everything the renderer needs from a script.
type Resolved struct {
	Title      string
	Author     string
	Logo       string
	Bootlegger []string

	Grouped     Grouped
	Jinxes      []Jinx
	JinxPairs   []ResolvedJinx
	FabledLoric []FabledOrLoric
	Night       NightOrders
}

// Characters returns the classified characters in script order.
func (r *Resolved) Characters() []Character {
	return r.Grouped.Known
}

// Resolve groups, cross-references and orders the characters of s.
// Only classified characters take part in jinxes and night orders, so an
// excluded character never leaves a dangling reference.
func Resolve(s *Script, opts ResolveOptions, logger *slog.Logger) *Resolved {
	logger = orDiscard(logger)

	r := &Resolved{Title: DefaultTitle}
	var meta *Metadata
	if s != nil {
		meta = s.Metadata
	}
	if meta != nil {
		if meta.Name != "" {
			r.Title = meta.Name
		}
		r.Author = meta.Author
		r.Logo = meta.Logo
		r.Bootlegger = append([]string(nil), meta.Bootlegger...)
	}

	var chars []Character
	if s != nil {
		chars = s.Characters
	}
	r.Grouped = GroupByTeam(chars, opts.Classifier, logger)
	known := r.Grouped.Known

	if opts.ShowJinxes {
		r.Jinxes = FindJinxes(known, opts.CatalogJinxes, opts.UseOldJinxes)
		r.JinxPairs = ResolveJinxes(r.Jinxes, known)
	}
	r.FabledLoric = ExtractFabledAndLoric(known, opts.IconURLTemplate)
	r.Night = CalculateNightOrders(meta, known, logger)

	logger.Debug("script resolved",
		slog.String("title", r.Title),
		slog.Int("characters", r.Grouped.Len()),
		slog.Int("excluded", len(r.Grouped.Excluded)),
		slog.Int("jinxes", len(r.Jinxes)),
		slog.Int("first_night", len(r.Night.First)),
		slog.Int("other_nights", len(r.Night.Other)))
	return r
}
