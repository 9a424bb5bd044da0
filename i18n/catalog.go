package i18n

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog is a Translator whose messages are loaded from a YAML document of
// the form
//
//	en:
//	  required: "Please fill this in"
//	ja:
//	  required: "入力してください"
//
// Codes missing from the catalog fall back to the built-in dictionary, so a
// deployment only overrides what it needs.
type Catalog struct {
	lang     string
	messages map[string]map[string]string
}

// LoadCatalog parses a YAML language/code/message catalog. The returned
// Catalog answers in English; use WithLanguage to switch.
func LoadCatalog(data []byte) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: load catalog: %w", err)
	}
	return &Catalog{lang: "en", messages: raw}, nil
}

// WithLanguage returns a Catalog answering in lang over the same messages.
func (c *Catalog) WithLanguage(lang string) *Catalog {
	return &Catalog{lang: lang, messages: c.messages}
}

// Message resolves code from the catalog, falling back to the built-in
// dictionary for the same language.
func (c *Catalog) Message(code string, data map[string]string) string {
	if m, ok := c.messages[c.lang]; ok {
		if msg, ok := m[code]; ok {
			return expand(msg, data)
		}
	}
	return dictTranslator{lang: c.lang}.Message(code, data)
}
