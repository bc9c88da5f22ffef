package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestUsageDocumentsEveryFlag(t *testing.T) {
	t.Parallel()

	convertFS, _ := newConvertFlagSet(io.Discard)
	planFS, _ := newPlanFlagSet(io.Discard)

	tests := []struct {
		name  string
		fs    *flag.FlagSet
		usage func(io.Writer)
	}{
		{"convert", convertFS, printConvertUsage},
		{"plan", planFS, printPlanUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.usage(&buf)
			help := buf.String()

			tt.fs.VisitAll(func(f *flag.Flag) {
				if !strings.Contains(help, "--"+f.Name) {
					t.Errorf("%s help does not mention --%s", tt.name, f.Name)
				}
			})
		})
	}
}

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags([]string{
		"-n", "3", "--overleaf", "infoSheet", "--color", "#111111", "--color", "#222222",
		"--no-jinxes", "--catalog", "roles.json", "--html", "tb.json", "-w", "2",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if len(positional) != 1 || positional[0] != "tb.json" {
		t.Errorf("positional = %v, want [tb.json]", positional)
	}
	if flags.sheet.copies != 3 || flags.sheet.overleaf != "infoSheet" || !flags.sheet.noJinxes {
		t.Errorf("sheet flags = %+v", flags.sheet)
	}
	if len(flags.sheet.colors) != 2 {
		t.Errorf("colors = %v, want two", flags.sheet.colors)
	}
	if flags.render.catalog != "roles.json" || !flags.outputMode.html || flags.workers != 2 {
		t.Errorf("flags = %+v", flags)
	}
}

func TestRunHelp_UnknownCommand(t *testing.T) {
	t.Parallel()

	te := newTestEnv(newMockConverter())
	runHelp([]string{"bake"}, te.Environment)

	if !strings.Contains(te.stderr.String(), "Unknown command: bake") {
		t.Errorf("stderr = %q", te.stderr)
	}
}
