package scriptpdf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-scriptpdf/internal/layout"
)

func TestPlanFromLayout(t *testing.T) {
	t.Parallel()

	lp := layout.Build(layout.Request{
		Copies:        3,
		Overleaf:      layout.OverleafNone,
		Teensy:        true,
		NightSheet:    true,
		HasFirstNight: true,
	})
	got := planFromLayout(lp)

	want := Plan{Teensy: true, Sides: []Side{
		{Sheets: []SheetDescriptor{{Content: ContentCharacterFront}, {Content: ContentCharacterFront, DuplicateOfFirst: true}}},
		{Sheets: []SheetDescriptor{{Content: ContentCharacterFront, DuplicateOfFirst: true}}},
		{Sheets: []SheetDescriptor{{Content: ContentNightSheetCombined}}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("planFromLayout() mismatch (-want +got):\n%s", diff)
	}
	if got.Pages() != lp.Pages() {
		t.Errorf("Pages() = %d, want %d", got.Pages(), lp.Pages())
	}
	if n := got.Count(ContentCharacterFront); n != 3 {
		t.Errorf("Count(front) = %d, want 3", n)
	}
}

func TestPlan_Empty(t *testing.T) {
	t.Parallel()

	var p Plan
	if p.Pages() != 0 || p.Count(ContentInfoSheet) != 0 {
		t.Errorf("zero Plan = %d pages, %d info sheets", p.Pages(), p.Count(ContentInfoSheet))
	}
}
