package script

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	s := &Script{
		Metadata: &Metadata{
			Name:       "Spies Everywhere",
			Author:     "Sam",
			Bootlegger: []string{"No nominations on day one."},
			FirstNight: []string{"dusk", "spy", "stranger", "dawn"},
		},
		Characters: []Character{
			{ID: "spy", Name: "Spy", Team: Minion, OtherNight: 68},
			{ID: "magician", Name: "Magician", Team: Townsfolk},
			{ID: "stranger", Name: "Stranger", Team: "mystery", FirstNight: 1},
			{ID: "djinn", Name: "Djinn", Team: Fabled},
		},
	}
	opts := ResolveOptions{
		CatalogJinxes: []Jinx{
			{Characters: [2]string{"spy", "magician"}, Text: "new"},
			{Characters: [2]string{"spy", "stranger"}, Text: "excluded partner"},
		},
		ShowJinxes: true,
	}

	r := Resolve(s, opts, nil)

	if r.Title != "Spies Everywhere" || r.Author != "Sam" {
		t.Errorf("title/author = %q/%q", r.Title, r.Author)
	}
	if diff := cmp.Diff([]string{"spy", "magician", "djinn"}, ids(r.Characters())); diff != "" {
		t.Errorf("characters mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"stranger"}, ids(r.Grouped.Excluded)); diff != "" {
		t.Errorf("excluded mismatch (-want +got):\n%s", diff)
	}
	wantJinxes := []Jinx{{Characters: [2]string{"spy", "magician"}, Text: "new"}}
	if diff := cmp.Diff(wantJinxes, r.Jinxes); diff != "" {
		t.Errorf("jinxes mismatch (-want +got):\n%s", diff)
	}
	if len(r.JinxPairs) != 1 || r.JinxPairs[0].Second.Name != "Magician" {
		t.Errorf("jinx pairs = %+v", r.JinxPairs)
	}
	if diff := cmp.Diff([]string{"dusk", "spy", "dawn"}, entryIDs(r.Night.First)); diff != "" {
		t.Errorf("first night mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dusk", "spy", "dawn"}, entryIDs(r.Night.Other)); diff != "" {
		t.Errorf("other nights mismatch (-want +got):\n%s", diff)
	}
	if len(r.FabledLoric) != 1 || r.FabledLoric[0].ID != "djinn" {
		t.Errorf("fabled/loric = %+v", r.FabledLoric)
	}
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	s := &Script{Characters: []Character{
		{ID: "spy", Team: Minion},
		{ID: "magician", Team: Townsfolk},
	}}
	r := Resolve(s, ResolveOptions{
		CatalogJinxes: []Jinx{{Characters: [2]string{"spy", "magician"}}},
	}, nil)

	if r.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", r.Title, DefaultTitle)
	}
	if r.Jinxes != nil || r.JinxPairs != nil {
		t.Errorf("jinxes computed although ShowJinxes is off: %+v", r.Jinxes)
	}
}

func TestResolve_NilScript(t *testing.T) {
	t.Parallel()

	r := Resolve(nil, ResolveOptions{}, nil)
	if r.Title != DefaultTitle || r.Grouped.Len() != 0 {
		t.Errorf("Resolve(nil) = %+v", r)
	}
}

func TestResolve_LogsGroupedCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := &Script{Characters: []Character{
		{ID: "spy", Team: Minion},
		{ID: "magician", Team: Townsfolk},
		{ID: "ghost", Team: "spirit"},
	}}

	r := Resolve(s, ResolveOptions{}, logger)
	if r.Grouped.Len() != 2 {
		t.Fatalf("Grouped.Len() = %d, want 2", r.Grouped.Len())
	}
	if out := buf.String(); !strings.Contains(out, "characters=2 excluded=1") {
		t.Errorf("resolve log = %q, want characters=2 excluded=1", out)
	}
}
