package script

// FabledOrLoric is a display record for the fabled/loric reference section.
// Image is empty when the character has no image and no icon template
// applies.
type FabledOrLoric struct {
	ID    string
	Name  string
	Note  string
	Image string
}

// ExtractFabledAndLoric returns loric characters then fabled characters, each
// group in script order.
func ExtractFabledAndLoric(chars []Character, iconTemplate string) []FabledOrLoric {
	var loric, fabled []FabledOrLoric
	for _, c := range chars {
		switch c.Team {
		case Loric:
			loric = append(loric, toFabledOrLoric(c, iconTemplate))
		case Fabled:
			fabled = append(fabled, toFabledOrLoric(c, iconTemplate))
		}
	}
	return append(loric, fabled...)
}

func toFabledOrLoric(c Character, iconTemplate string) FabledOrLoric {
	img, _ := ImageURL(c, iconTemplate)
	return FabledOrLoric{ID: c.ID, Name: c.Name, Note: c.Ability, Image: img}
}
