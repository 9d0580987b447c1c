// Package catalog exposes the fixed sets of request languages and HTTP
// methods the request/response tool offers. The sets live in an embedded
// YAML document so they can be edited without touching code.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Language is one selectable request language.
type Language struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

// Catalog is the decoded form of catalog.yaml.
type Catalog struct {
	Languages []Language `yaml:"languages"`
	Methods   []string   `yaml:"methods"`
}

var (
	loadOnce sync.Once
	loaded   *Catalog
)

// Parse decodes a catalog document and checks that both sets are non-empty.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(c.Languages) == 0 {
		return nil, fmt.Errorf("catalog has no languages")
	}
	if len(c.Methods) == 0 {
		return nil, fmt.Errorf("catalog has no methods")
	}
	for i, l := range c.Languages {
		if l.Name == "" {
			return nil, fmt.Errorf("catalog language %d has no name", i)
		}
	}
	return &c, nil
}

// Default returns the embedded catalog. The embedded document is part of the
// binary, so a decode failure is a build defect and panics.
func Default() *Catalog {
	loadOnce.Do(func() {
		c, err := Parse(catalogYAML)
		if err != nil {
			panic(err)
		}
		loaded = c
	})
	return loaded
}

// Languages returns the languages of the embedded catalog.
func Languages() []Language {
	return Default().Languages
}

// LanguageNames returns the language names in catalog order.
func LanguageNames() []string {
	langs := Languages()
	names := make([]string, 0, len(langs))
	for _, l := range langs {
		names = append(names, l.Name)
	}
	return names
}

// DefaultLanguage is the language preselected for a new request block.
func DefaultLanguage() string {
	return Languages()[0].Name
}

// Methods returns the HTTP methods of the embedded catalog.
func Methods() []string {
	return Default().Methods
}

// DefaultMethod is the method preselected for a new request/response block.
func DefaultMethod() string {
	return Methods()[0]
}

// IsLanguage reports whether name is a catalog language.
func IsLanguage(name string) bool {
	for _, l := range Languages() {
		if l.Name == name {
			return true
		}
	}
	return false
}

// IsMethod reports whether m is a catalog method.
func IsMethod(m string) bool {
	for _, v := range Methods() {
		if v == m {
			return true
		}
	}
	return false
}
