package render

import (
	"strings"
	"testing"
)

var a4 = Page{Width: 210, Height: 297}

func TestPageCSS_Geometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		teensy bool
		want   []string
	}{
		{
			name: "portrait",
			want: []string{
				"size: 210mm 297mm;",
				"--sheet-width: 210mm;",
				"--sheet-height: 297mm;",
				"--sidebar-width: 15mm;",
			},
		},
		{
			name:   "teensy halves on a landscape page",
			teensy: true,
			want: []string{
				"size: 297mm 210mm;",
				"--sheet-width: 148.5mm;",
				"--sheet-height: 210mm;",
				"--sidebar-width: 10mm;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := PageCSS(Style{Page: a4}, tt.teensy)
			for _, w := range tt.want {
				if !strings.Contains(css, w) {
					t.Errorf("PageCSS() missing %q in:\n%s", w, css)
				}
			}
		})
	}
}

func TestPageCSS_Colors(t *testing.T) {
	t.Parallel()

	css := PageCSS(Style{Page: a4}, false)
	if !strings.Contains(css, "--header-gradient: linear-gradient(20deg, #4e2e8c 50%, #1f1238);") {
		t.Errorf("default colour gradient missing:\n%s", css)
	}
	if !strings.Contains(css, ".team-minion { --team-color: #580709; }") {
		t.Error("team colour class missing")
	}

	css = PageCSS(Style{Page: a4, Colors: []string{"#f00", "bogus", "#0000ff"}}, false)
	if !strings.Contains(css, "--header-gradient: linear-gradient(20deg, #f00 0%, #0000ff 100%);") {
		t.Errorf("multi-colour gradient missing:\n%s", css)
	}
}

func TestPageCSS_Fonts(t *testing.T) {
	t.Parallel()

	css := PageCSS(Style{Page: a4, TitleFont: "Dumbledor"}, false)
	if !strings.Contains(css, `--title-font: "Dumbledor";`) {
		t.Error("title font variable missing")
	}
	if strings.Contains(css, "@font-face") {
		t.Error("unexpected @font-face without a custom font URL")
	}

	css = PageCSS(Style{Page: a4, TitleFont: "Dumbledor", CustomFontURL: "https://example.com/f.woff2"}, false)
	for _, w := range []string{`src: url("https://example.com/f.woff2");`, `--title-font: "CustomTitleFont";`} {
		if !strings.Contains(css, w) {
			t.Errorf("custom font CSS missing %q", w)
		}
	}
}

func TestValidColor(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"#fff", "#4E2E8C", " #123456 "} {
		if !ValidColor(c) {
			t.Errorf("ValidColor(%q) = false", c)
		}
	}
	for _, c := range []string{"", "red", "#12", "#12345g", "#1234567"} {
		if ValidColor(c) {
			t.Errorf("ValidColor(%q) = true", c)
		}
	}
}

func TestDarken(t *testing.T) {
	t.Parallel()

	if got := darken("#ffffff", 0.5); got != "#808080" {
		t.Errorf("darken(#ffffff, 0.5) = %q, want #808080", got)
	}
	if got := darken("nope", 0.5); got != "nope" {
		t.Errorf("darken(nope) = %q, want input unchanged", got)
	}
}

func TestEscapeCSSString(t *testing.T) {
	t.Parallel()

	if got := escapeCSSString(`a"b\c`); got != `a\"b\\c` {
		t.Errorf("escapeCSSString() = %q", got)
	}
}
