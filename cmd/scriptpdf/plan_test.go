package main

import (
	"bytes"
	"strings"
	"testing"

	scriptpdf "github.com/alnah/go-scriptpdf"
)

func TestWritePlan_TeensyText(t *testing.T) {
	t.Parallel()

	plan := scriptpdf.Plan{Teensy: true, Sides: []scriptpdf.Side{
		{Sheets: []scriptpdf.SheetDescriptor{
			{Content: scriptpdf.ContentCharacterFront},
			{Content: scriptpdf.ContentCharacterFront, DuplicateOfFirst: true},
		}},
		{Sheets: []scriptpdf.SheetDescriptor{{Content: scriptpdf.ContentNightSheetCombined}}},
	}}

	var buf bytes.Buffer
	if err := writePlan(&buf, "tb.json", plan, formatText); err != nil {
		t.Fatalf("writePlan() error = %v", err)
	}

	want := "tb.json: 2 pages, teensy\n" +
		"    1  characterFront | characterFront (copy)\n" +
		"    2  nightSheetCombined\n"
	if got := buf.String(); got != want {
		t.Errorf("writePlan() =\n%s\nwant\n%s", got, want)
	}
}

func TestWritePlan_EmptyPlanJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writePlan(&buf, "x.json", scriptpdf.Plan{}, formatJSON); err != nil {
		t.Fatalf("writePlan() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"teensy": false`) {
		t.Errorf("JSON output = %s", buf.String())
	}
}
