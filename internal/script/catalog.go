package script

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Catalog provides the official characters and jinxes that bare script
// entries refer to.
type Catalog interface {
	// Character returns the catalog character with the given id
	// (case-insensitive).
	Character(id string) (Character, bool)

	// Jinxes returns every catalog-level jinx, in catalog order.
	Jinxes() []Jinx
}

// MapCatalog is an in-memory Catalog.
type MapCatalog struct {
	characters map[string]Character
	jinxes     []Jinx
}

// Compile-time interface check.
var _ Catalog = (*MapCatalog)(nil)

// NewCatalog builds a catalog from characters and jinxes.
// Later characters with a duplicate id are ignored.
func NewCatalog(characters []Character, jinxes []Jinx) *MapCatalog {
	return &MapCatalog{
		characters: byID(characters),
		jinxes:     append([]Jinx(nil), jinxes...),
	}
}

// EmptyCatalog returns a catalog with no characters and no jinxes.
func EmptyCatalog() *MapCatalog {
	return NewCatalog(nil, nil)
}

// Character implements Catalog.
func (c *MapCatalog) Character(id string) (Character, bool) {
	ch, ok := c.characters[FoldID(id)]
	return ch, ok
}

// Jinxes implements Catalog. The returned slice is a copy.
func (c *MapCatalog) Jinxes() []Jinx {
	return append([]Jinx(nil), c.jinxes...)
}

// Len returns the number of catalog characters.
func (c *MapCatalog) Len() int {
	return len(c.characters)
}

// LoadCatalog parses a catalog document:
//
//	{
//	  "characters": [{"id": "washerwoman", "name": "Washerwoman", "team": "townsfolk", ...}],
//	  "jinxes": [{"characters": ["spy", "magician"], "jinx": "...", "oldJinx": "..."}]
//	}
func LoadCatalog(data []byte) (*MapCatalog, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidCatalog)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidCatalog)
	}

	var characters []Character
	var parseErr error
	root.Get("characters").ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() || v.Get("id").String() == "" {
			parseErr = fmt.Errorf("%w: character entry without id: %s", ErrInvalidCatalog, v.Raw)
			return false
		}
		ch := characterFromJSON(v)
		ch.Custom = false
		characters = append(characters, ch)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	var jinxes []Jinx
	root.Get("jinxes").ForEach(func(_, v gjson.Result) bool {
		pair := v.Get("characters").Array()
		if len(pair) != 2 {
			parseErr = fmt.Errorf("%w: jinx must reference exactly two characters: %s", ErrInvalidCatalog, v.Raw)
			return false
		}
		jinxes = append(jinxes, Jinx{
			Characters: [2]string{FoldID(pair[0].String()), FoldID(pair[1].String())},
			Text:       v.Get("jinx").String(),
			OldText:    v.Get("oldJinx").String(),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return NewCatalog(characters, jinxes), nil
}
