package script

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ids(chars []Character) []string {
	out := make([]string, 0, len(chars))
	for _, c := range chars {
		out = append(out, c.ID)
	}
	return out
}

func TestParseTeam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Team
		wantOK bool
	}{
		{in: "townsfolk", want: Townsfolk, wantOK: true},
		{in: " Demon ", want: Demon, wantOK: true},
		{in: "LORIC", want: Loric, wantOK: true},
		{in: "villager", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTeam(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseTeam(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGroupByTeam(t *testing.T) {
	t.Parallel()

	chars := []Character{
		{ID: "chef", Team: Townsfolk},
		{ID: "imp", Team: Demon},
		{ID: "drunk", Team: Outsider},
		{ID: "mystery", Team: "villager"},
		{ID: "poisoner", Team: Minion},
		{ID: "empath", Team: Townsfolk},
		{ID: "thief", Team: Traveller},
		{ID: "djinn", Team: Fabled},
		{ID: "bootlegger", Team: Loric},
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	g := GroupByTeam(chars, nil, logger)

	want := map[Team][]string{
		Townsfolk: {"chef", "empath"},
		Outsider:  {"drunk"},
		Minion:    {"poisoner"},
		Demon:     {"imp"},
		Traveller: {"thief"},
		Fabled:    {"djinn"},
		Loric:     {"bootlegger"},
	}
	for team, wantIDs := range want {
		if diff := cmp.Diff(wantIDs, ids(g.Team(team))); diff != "" {
			t.Errorf("team %s mismatch (-want +got):\n%s", team, diff)
		}
	}
	if diff := cmp.Diff([]string{"mystery"}, ids(g.Excluded)); diff != "" {
		t.Errorf("excluded mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != len(chars)-1 {
		t.Errorf("Len() = %d, want %d", g.Len(), len(chars)-1)
	}
	if diff := cmp.Diff([]string{"chef", "imp", "drunk", "poisoner", "empath", "thief", "djinn", "bootlegger"}, ids(g.Known)); diff != "" {
		t.Errorf("known mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "id=mystery") {
		t.Errorf("expected a warning naming the excluded character, got %q", buf.String())
	}
}

func TestGroupByTeam_Classifier(t *testing.T) {
	t.Parallel()

	// Everything is a demon except ids starting with "x".
	classifier := ClassifierFunc(func(c Character) (Team, bool) {
		if strings.HasPrefix(c.ID, "x") {
			return "", false
		}
		return Demon, true
	})
	chars := []Character{
		{ID: "a", Team: Townsfolk},
		{ID: "xb", Team: Townsfolk},
		{ID: "c"},
	}

	g := GroupByTeam(chars, classifier, nil)

	if diff := cmp.Diff([]string{"a", "c"}, ids(g.Demon)); diff != "" {
		t.Errorf("demon bucket mismatch (-want +got):\n%s", diff)
	}
	if len(g.Townsfolk) != 0 {
		t.Errorf("townsfolk bucket = %v, want empty", ids(g.Townsfolk))
	}
	for _, c := range g.Demon {
		if c.Team != Demon {
			t.Errorf("character %s carries team %q, want %q", c.ID, c.Team, Demon)
		}
	}
	if diff := cmp.Diff([]string{"xb"}, ids(g.Excluded)); diff != "" {
		t.Errorf("excluded mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByTeam_Empty(t *testing.T) {
	t.Parallel()

	g := GroupByTeam(nil, nil, nil)
	if g.Len() != 0 || len(g.Excluded) != 0 {
		t.Errorf("GroupByTeam(nil) = %+v, want empty", g)
	}
}
