package script

import (
	"net/url"
	"strings"
)

// iconPlaceholder is substituted with the character id in icon templates.
const iconPlaceholder = "{id}"

// ImageURL picks the image shown for c: an explicit image, then the wiki
// image, then the icon template with the id substituted. ok is false when
// none applies; renderers then draw a placeholder glyph.
func ImageURL(c Character, iconTemplate string) (u string, ok bool) {
	if len(c.Images) > 0 {
		return c.Images[0], true
	}
	if c.WikiImage != "" {
		return c.WikiImage, true
	}
	return IconURL(iconTemplate, c.ID)
}

// IconURL substitutes id into template. No network access happens here.
func IconURL(template, id string) (string, bool) {
	if template == "" || id == "" || !strings.Contains(template, iconPlaceholder) {
		return "", false
	}
	return strings.Replace(template, iconPlaceholder, url.PathEscape(id), 1), true
}

// Initial returns the placeholder glyph for a character without image.
func Initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}
