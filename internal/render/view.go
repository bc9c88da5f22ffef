package render

import (
	"html/template"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/alnah/go-scriptpdf/internal/script"
)

// balancePoint is the section size above which columns are balanced by
// ability length rather than split in half.
const balancePoint = 8

// twoColumnThreshold is the jinx or fabled count above which the
// front sheet reference area uses two columns.
const twoColumnThreshold = 4

// Marker icons, relative to the asset base.
var markerImages = map[script.Marker]string{
	script.Dusk:       "/images/dusk-icon.png",
	script.Dawn:       "/images/dawn-icon.png",
	script.MinionInfo: "/images/minioninfo.png",
	script.DemonInfo:  "/images/demoninfo.png",
}

// playerCounts is the base setup per player count: townsfolk, outsiders,
// minions, demons.
var playerCounts = []playerCount{
	{"5", 3, 0, 1, 1},
	{"6", 3, 1, 1, 1},
	{"7", 5, 0, 1, 1},
	{"8", 5, 1, 1, 1},
	{"9", 5, 2, 1, 1},
	{"10", 7, 0, 2, 1},
	{"11", 7, 1, 2, 1},
	{"12", 7, 2, 2, 1},
	{"13", 9, 0, 3, 1},
	{"14", 9, 1, 3, 1},
	{"15+", 9, 2, 3, 1},
}

type playerCount struct {
	Players   string
	Townsfolk int
	Outsiders int
	Minions   int
	Demons    int
}

// icon is an image or, when Image is empty, a placeholder initial.
type icon struct {
	Name    string
	Image   string
	Initial string
}

type card struct {
	ID      string
	Name    string
	Team    string
	Ability string
	Setup   string
	Icon    icon
	Jinxed  []icon
}

type section struct {
	Key     string
	Title   string
	Columns [2][]card
}

type jinxItem struct {
	First  icon
	Second icon
	Names  string
	Text   string
}

type fabledItem struct {
	Name       string
	Note       string
	Icon       icon
	Bootlegger []template.HTML
}

type nightItem struct {
	Name string
	Team string
	Icon icon
	Text template.HTML
}

type sheetView struct {
	Content   string
	Duplicate bool
}

type sideView struct {
	Sheets []sheetView
}

// view is the data the document template is executed with.
type view struct {
	Title       string
	TitleRuns   []titleRun
	Author      string
	Logo        string
	ShowTitle   bool
	ShowSwirls  bool
	SolidTitle  bool
	Margins     bool
	Appearance  string
	Teensy      bool
	PrintGuides bool

	Sections    []section
	Jinxes      []jinxItem
	FabledLoric []fabledItem
	TwoColumns  bool
	Travellers  []card

	FirstNight []nightItem
	OtherNight []nightItem

	DisplayNightOrder   bool
	DisplayPlayerCounts bool
	PlayerCounts        []playerCount

	Sides []sideView
}

// sheetData binds one sheet to the document view for the sheet templates.
type sheetData struct {
	*view
	Sheet sheetView
}

func bind(v *view, s sheetView) sheetData {
	return sheetData{view: v, Sheet: s}
}

func newIcon(c script.Character, tmpl string) icon {
	img, _ := script.ImageURL(c, tmpl)
	return icon{Name: c.Name, Image: img, Initial: script.Initial(c.Name)}
}

// buildView flattens a document into template data.
func buildView(doc Document, md goldmark.Markdown, logger *slog.Logger) (*view, error) {
	r := doc.Script
	st := doc.Style
	tmpl := st.IconURLTemplate

	v := &view{
		Title:               r.Title,
		TitleRuns:           formatTitle(r.Title, st.FormatMinorWords),
		ShowTitle:           st.ShowTitle,
		ShowSwirls:          st.ShowSwirls,
		SolidTitle:          st.SolidTitle,
		Margins:             st.IncludeMargins,
		Teensy:              doc.Plan.Teensy,
		PrintGuides:         st.Page.Margin > 0 || st.Page.Bleed > 0,
		DisplayNightOrder:   st.DisplayNightOrder,
		DisplayPlayerCounts: st.DisplayPlayerCounts,
		PlayerCounts:        playerCounts,
	}
	if st.Appearance != "" && st.Appearance != AppearanceNormal {
		v.Appearance = "appearance-" + st.Appearance
	}
	if st.ShowAuthor {
		v.Author = r.Author
	}
	if st.ShowLogo {
		v.Logo = st.Logo
		if v.Logo == "" {
			v.Logo = r.Logo
		}
	}

	// Characters that can carry inline jinx icons.
	g := r.Grouped
	sheetChars := make([]script.Character, 0, len(g.Townsfolk)+len(g.Outsider)+len(g.Minion)+len(g.Demon))
	for _, t := range []script.Team{script.Townsfolk, script.Outsider, script.Minion, script.Demon} {
		sheetChars = append(sheetChars, g.Team(t)...)
	}

	titles := map[script.Team]string{
		script.Townsfolk: "Townsfolk",
		script.Outsider:  "Outsiders",
		script.Minion:    "Minions",
		script.Demon:     "Demons",
	}
	for _, t := range []script.Team{script.Townsfolk, script.Outsider, script.Minion, script.Demon} {
		chars := g.Team(t)
		if len(chars) == 0 {
			continue
		}
		cards := make([]card, len(chars))
		for i, c := range chars {
			cards[i] = newCard(c, tmpl)
			for _, partner := range script.JinxedWith(c, r.Jinxes, sheetChars, st.InlineJinxIcons) {
				cards[i].Jinxed = append(cards[i].Jinxed, newIcon(partner, tmpl))
			}
		}
		mid := midpoint(chars)
		v.Sections = append(v.Sections, section{
			Key:     string(t),
			Title:   strings.ToUpper(titles[t]),
			Columns: [2][]card{cards[:mid], cards[mid:]},
		})
	}

	for _, c := range g.Traveller {
		v.Travellers = append(v.Travellers, newCard(c, tmpl))
	}

	for _, p := range r.JinxPairs {
		v.Jinxes = append(v.Jinxes, jinxItem{
			First:  newIcon(p.First, tmpl),
			Second: newIcon(p.Second, tmpl),
			Names:  p.First.Name + " & " + p.Second.Name,
			Text:   p.Text,
		})
	}

	var rules []template.HTML
	for _, rule := range r.Bootlegger {
		h, err := markdownHTML(md, rule)
		if err != nil {
			return nil, err
		}
		rules = append(rules, h)
	}
	for _, f := range r.FabledLoric {
		item := fabledItem{
			Name: f.Name,
			Note: f.Note,
			Icon: icon{Name: f.Name, Image: f.Image, Initial: script.Initial(f.Name)},
		}
		if strings.EqualFold(f.ID, "bootlegger") || strings.EqualFold(f.Name, "bootlegger") {
			item.Bootlegger = rules
		}
		v.FabledLoric = append(v.FabledLoric, item)
	}
	v.TwoColumns = (len(v.Jinxes) > 0 && len(v.FabledLoric) > 0) ||
		len(v.Jinxes) > twoColumnThreshold || len(v.FabledLoric) > twoColumnThreshold

	v.FirstNight = nightItems(r.Night.First, script.FirstNight, tmpl, logger)
	v.OtherNight = nightItems(r.Night.Other, script.OtherNights, tmpl, logger)

	for _, side := range doc.Plan.Sides {
		sv := sideView{Sheets: make([]sheetView, len(side.Sheets))}
		for i, s := range side.Sheets {
			sv.Sheets[i] = sheetView{Content: string(s.Content), Duplicate: s.DuplicateOfFirst}
		}
		v.Sides = append(v.Sides, sv)
	}
	return v, nil
}

func newCard(c script.Character, tmpl string) card {
	ability, setup := splitAbility(c.Ability)
	return card{
		ID:      c.ID,
		Name:    c.Name,
		Team:    string(c.Team),
		Ability: ability,
		Setup:   setup,
		Icon:    newIcon(c, tmpl),
	}
}

// midpoint splits a section into two columns. Odd sections above the
// balance point put the extra character on the side with less ability text.
func midpoint(chars []script.Character) int {
	mid := (len(chars) + 1) / 2
	if len(chars)%2 == 0 || len(chars) <= balancePoint {
		return mid
	}
	left, right := 0, 0
	for _, c := range chars[:mid] {
		left += len(c.Ability)
	}
	for _, c := range chars[mid-2:] {
		right += len(c.Ability)
	}
	if left < right {
		return mid
	}
	return mid - 1
}

// nightItems converts night entries for display. Entries without reminder
// text for the night are logged and left out.
func nightItems(entries []script.NightEntry, n script.Night, tmpl string, logger *slog.Logger) []nightItem {
	var out []nightItem
	for _, e := range entries {
		text := e.Reminder(n)
		if text == "" {
			logger.Warn("no reminder text, skipping night entry", slog.String("id", e.ID()))
			continue
		}
		item := nightItem{Name: e.Name(), Text: formatReminder(text)}
		if e.IsMarker() {
			item.Team = "marker"
			item.Icon = icon{Name: e.Name(), Image: markerImages[e.Marker], Initial: script.Initial(e.Name())}
		} else {
			item.Team = string(e.Character.Team)
			item.Icon = newIcon(*e.Character, tmpl)
		}
		out = append(out, item)
	}
	return out
}
