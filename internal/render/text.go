package render

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// minorWords are set in a smaller face in titles.
var minorWords = map[string]bool{
	"the": true, "of": true, "in": true, "a": true, "an": true, "and": true,
	"or": true, "but": true, "for": true, "to": true, "at": true, "by": true,
	"on": true, "with": true, "from": true, "into": true, "upon": true,
	"after": true, "before": true,
}

// titleRun is a stretch of title text sharing one typographic treatment.
type titleRun struct {
	Text      string
	Minor     bool
	Ampersand bool
}

func isMinor(word string, index int) bool {
	return minorWords[word] || (index == 0 && minorWords[strings.ToLower(word)])
}

// formatTitle splits title into runs: each "&" becomes its own run and,
// when minor is set, consecutive minor or major words are grouped.
func formatTitle(title string, minor bool) []titleRun {
	var runs []titleRun
	parts := strings.Split(title, "&")
	for i, part := range parts {
		if i > 0 {
			runs = append(runs, titleRun{Text: "&", Ampersand: true})
		}
		if !minor {
			if part != "" {
				runs = append(runs, titleRun{Text: part})
			}
			continue
		}
		runs = append(runs, minorRuns(part)...)
	}
	return runs
}

func minorRuns(text string) []titleRun {
	words := strings.Fields(text)
	var runs []titleRun
	for i := 0; i < len(words); {
		m := isMinor(words[i], i)
		j := i
		for j < len(words) && isMinor(words[j], j) == m {
			j++
		}
		seq := strings.Join(words[i:j], " ")
		if len(runs) > 0 {
			seq = " " + seq
		}
		runs = append(runs, titleRun{Text: seq, Minor: m})
		i = j
	}
	return runs
}

// setupPattern matches a trailing setup note such as "[+2 Outsiders]".
var setupPattern = regexp.MustCompile(`^(.*?)(\[.*?\])$`)

// splitAbility separates the setup note from an ability text.
func splitAbility(ability string) (text, setup string) {
	m := setupPattern.FindStringSubmatch(ability)
	if m == nil {
		return ability, ""
	}
	return m[1], m[2]
}

// reminderToken is replaced by the reminder token icon in night texts.
const reminderToken = ":reminder:"

const reminderIcon = `<img class="reminder-icon" src="/images/reminder.png" alt="">`

// formatReminder converts night reminder markup to HTML: text between
// asterisks is bold and ":reminder:" draws the reminder icon.
func formatReminder(text string) template.HTML {
	var b strings.Builder
	for i, part := range strings.Split(text, "*") {
		if i%2 == 1 {
			b.WriteString("<strong>")
			b.WriteString(html.EscapeString(part))
			b.WriteString("</strong>")
			continue
		}
		for j, piece := range strings.Split(part, reminderToken) {
			if j > 0 {
				b.WriteString(reminderIcon)
			}
			b.WriteString(html.EscapeString(piece))
		}
	}
	return template.HTML(b.String()) // #nosec G203 -- pieces escaped above
}
