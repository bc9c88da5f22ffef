package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-scriptpdf/internal/script"
)

// teamColors are the character name colours per team.
var teamColors = map[script.Team]string{
	script.Townsfolk: "#00469e",
	script.Outsider:  "#00469e",
	script.Minion:    "#580709",
	script.Demon:     "#580709",
	script.Fabled:    "#6b5f05",
	script.Traveller: "#390758",
	script.Loric:     "#1f5807",
}

// printGuideSize is the size of the crop mark images, in mm.
const printGuideSize = 20

// parseHex parses #rgb or #rrggbb.
func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// ValidColor reports whether s is a #rgb or #rrggbb colour.
func ValidColor(s string) bool {
	_, _, _, ok := parseHex(s)
	return ok
}

// darken scales every channel of a valid hex colour by factor.
func darken(color string, factor float64) string {
	r, g, b, ok := parseHex(color)
	if !ok {
		return color
	}
	scale := func(c uint8) uint8 { return uint8(float64(c)*factor + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b))
}

// normalizeColors keeps the valid colours, defaulting when none is left.
func normalizeColors(colors []string) []string {
	var out []string
	for _, c := range colors {
		if ValidColor(c) {
			out = append(out, strings.TrimSpace(c))
		}
	}
	if len(out) == 0 {
		return []string{DefaultColor}
	}
	return out
}

// gradient returns the header background: one colour fades to a darker
// shade, several colours are spread evenly.
func gradient(colors []string, angle int) string {
	if len(colors) == 1 {
		return fmt.Sprintf("linear-gradient(%ddeg, %s 50%%, %s)", angle, colors[0], darken(colors[0], 0.4))
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, spreadStops(colors))
}

// overlay returns the sidebar and backing background.
func overlay(colors []string, angle int) string {
	if len(colors) == 1 {
		return colors[0]
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, spreadStops(colors))
}

func spreadStops(colors []string) string {
	stops := make([]string, len(colors))
	for i, c := range colors {
		pct := float64(i) / float64(len(colors)-1) * 100
		stops[i] = fmt.Sprintf("%s %s%%", c, trimFloat(pct))
	}
	return strings.Join(stops, ", ")
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// sheetSize returns the size of one logical sheet and of the physical page
// it is printed on. Teensy sheets are half height, two to a landscape page.
func sheetSize(p Page, teensy bool) (sheetW, sheetH, pageW, pageH float64) {
	if teensy {
		return p.Height / 2, p.Width, p.Height, p.Width
	}
	return p.Width, p.Height, p.Width, p.Height
}

// PageCSS generates the page geometry and colour variables for a document.
func PageCSS(s Style, teensy bool) string {
	colors := normalizeColors(s.Colors)
	sheetW, sheetH, pageW, pageH := sheetSize(s.Page, teensy)

	sidebar := 15
	if teensy {
		sidebar = 10
	}
	iconScale := s.IconScale
	if iconScale <= 0 {
		iconScale = 1
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, `
/* Page geometry */
@page {
  size: %smm %smm;
  margin: 0;
}
:root {
  --page-width: %smm;
  --page-height: %smm;
  --sheet-width: %smm;
  --sheet-height: %smm;
  --print-margin: %smm;
  --print-bleed: %smm;
  --print-guide-size: %dmm;
  --sidebar-width: %dmm;
  --icon-scale: %s;
  --header-gradient: %s;
  --overlay-background: %s;
  --backing-overlay: %s;
  --title-letter-spacing: %smm;
  --title-word-spacing: %smm;
}
`,
		trimFloat(pageW), trimFloat(pageH),
		trimFloat(pageW), trimFloat(pageH),
		trimFloat(sheetW), trimFloat(sheetH),
		trimFloat(s.Page.Margin), trimFloat(s.Page.Bleed),
		printGuideSize, sidebar,
		trimFloat(iconScale),
		gradient(colors, 20),
		overlay(colors, 90),
		overlay(colors, 180),
		trimFloat(s.TitleLetterSpacing), trimFloat(s.TitleWordSpacing),
	)

	font := s.TitleFont
	if s.CustomFontURL != "" {
		font = "CustomTitleFont"
		fmt.Fprintf(&buf, `
/* Custom title font */
@font-face {
  font-family: "CustomTitleFont";
  src: url("%s");
}
`, escapeCSSString(s.CustomFontURL))
	}
	if font != "" {
		fmt.Fprintf(&buf, `
:root {
  --title-font: "%s";
}
`, escapeCSSString(font))
	}

	for _, team := range script.Teams() {
		fmt.Fprintf(&buf, ".team-%s { --team-color: %s; }\n", team, teamColors[team])
	}
	return buf.String()
}

// escapeCSSString escapes a value for use inside a double-quoted CSS string.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
