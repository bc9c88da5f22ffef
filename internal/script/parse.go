package script

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// Script limits, matching what the PDF endpoint accepts.
const (
	MaxCharacters = 100
	MaxScriptSize = 500 * 1024
)

// metaID marks the metadata entry of a raw script.
const metaID = "_meta"

// maxSchemaErrors caps how many schema violations are reported.
const maxSchemaErrors = 3

// scriptSchema accepts either a raw script array or the normalized
// {"metadata", "characters"} object.
const scriptSchema = `{
  "definitions": {
    "entry": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {
          "type": "object",
          "required": ["id"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "name": {"type": "string"},
            "team": {"type": "string"},
            "ability": {"type": "string"},
            "image": {
              "oneOf": [
                {"type": "string"},
                {"type": "array", "items": {"type": "string"}}
              ]
            },
            "jinxes": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["id"],
                "properties": {
                  "id": {"type": "string"},
                  "reason": {"type": "string"}
                }
              }
            }
          }
        }
      ]
    }
  },
  "oneOf": [
    {"type": "array", "items": {"$ref": "#/definitions/entry"}},
    {
      "type": "object",
      "required": ["characters"],
      "properties": {
        "metadata": {"type": ["object", "null"]},
        "characters": {"type": "array", "items": {"$ref": "#/definitions/entry"}}
      }
    }
  ]
}`

// compiledSchema compiles scriptSchema on first use.
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(scriptSchema))
})

// Validate checks that data is a well-formed script: within size limits,
// matching the script schema, with at least one and at most MaxCharacters
// character entries ("_meta" entries are not counted).
func Validate(data []byte) error {
	if len(data) > MaxScriptSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrScriptTooLarge, len(data), MaxScriptSize)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%w: empty document", ErrInvalidScript)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidScript)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling script schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if !result.Valid() {
		var msgs []string
		for i, e := range result.Errors() {
			if i == maxSchemaErrors {
				break
			}
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(msgs, "; "))
	}

	entries, _ := splitDocument(gjson.ParseBytes(data))
	count := 0
	entries.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String || v.Get("id").String() != metaID {
			count++
		}
		return true
	})
	if count == 0 {
		return fmt.Errorf("%w: no characters", ErrInvalidScript)
	}
	if count > MaxCharacters {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrTooManyCharacters, count, MaxCharacters)
	}
	return nil
}

// Parse validates data and converts it into a Script.
//
// Bare ids and id-only objects are looked up in catalog; ids the catalog
// does not know are logged and dropped. The result keeps script order.
func Parse(data []byte, catalog Catalog, logger *slog.Logger) (*Script, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = EmptyCatalog()
	}
	logger = orDiscard(logger)

	entries, meta := splitDocument(gjson.ParseBytes(data))
	s := &Script{}
	if meta.IsObject() {
		s.Metadata = metadataFromJSON(meta)
	}

	entries.ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			s.addReference(v.String(), catalog, logger)
		case v.Get("id").String() == metaID:
			s.Metadata = metadataFromJSON(v)
		case isReference(v):
			s.addReference(v.Get("id").String(), catalog, logger)
		default:
			s.Characters = append(s.Characters, characterFromJSON(v))
		}
		return true
	})

	if len(s.Characters) == 0 {
		return nil, fmt.Errorf("%w: no character could be resolved", ErrInvalidScript)
	}
	return s, nil
}

func (s *Script) addReference(id string, catalog Catalog, logger *slog.Logger) {
	ch, ok := catalog.Character(id)
	if !ok {
		logger.Warn("unknown character id, skipping", slog.String("id", id))
		return
	}
	s.Characters = append(s.Characters, ch)
}

// splitDocument returns the entry array and the metadata object (if the
// document uses the normalized object form).
func splitDocument(root gjson.Result) (entries, meta gjson.Result) {
	if root.IsObject() {
		return root.Get("characters"), root.Get("metadata")
	}
	return root, gjson.Result{}
}

// isReference reports whether an object entry only points at a catalog
// character instead of defining one.
func isReference(v gjson.Result) bool {
	return !v.Get("team").Exists() && !v.Get("ability").Exists() && !v.Get("name").Exists()
}

func characterFromJSON(v gjson.Result) Character {
	c := Character{
		ID:                 v.Get("id").String(),
		Name:               v.Get("name").String(),
		Team:               Team(v.Get("team").String()),
		Ability:            v.Get("ability").String(),
		FirstNightReminder: v.Get("firstNightReminder").String(),
		OtherNightReminder: v.Get("otherNightReminder").String(),
		FirstNight:         v.Get("firstNight").Float(),
		OtherNight:         v.Get("otherNight").Float(),
		WikiImage:          v.Get("wiki_image").String(),
		Custom:             true,
	}
	if c.Name == "" {
		c.Name = c.ID
	}

	img := v.Get("image")
	if img.IsArray() {
		for _, i := range img.Array() {
			if s := i.String(); s != "" {
				c.Images = append(c.Images, s)
			}
		}
	} else if s := img.String(); s != "" {
		c.Images = []string{s}
	}

	v.Get("jinxes").ForEach(func(_, j gjson.Result) bool {
		c.Jinxes = append(c.Jinxes, JinxDeclaration{
			ID:     j.Get("id").String(),
			Reason: j.Get("reason").String(),
		})
		return true
	})
	return c
}

func metadataFromJSON(v gjson.Result) *Metadata {
	return &Metadata{
		Name:       v.Get("name").String(),
		Author:     v.Get("author").String(),
		Logo:       v.Get("logo").String(),
		Bootlegger: stringArray(v.Get("bootlegger")),
		FirstNight: stringArray(v.Get("firstNight")),
		OtherNight: stringArray(v.Get("otherNight")),
	}
}

// stringArray returns the non-empty strings of a JSON array, or nil.
func stringArray(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	var out []string
	for _, item := range v.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
