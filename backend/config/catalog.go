package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog holds persona system prompts and voice aliases.
type Catalog struct {
	DefaultPersona string            `yaml:"default_persona"`
	DefaultVoice   string            `yaml:"default_voice"`
	Personas       map[string]string `yaml:"personas"`
	Voices         map[string]string `yaml:"voices"`
}

// LoadCatalog reads the catalog from path, or the embedded default when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = raw
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Personas) == 0 {
		return nil, fmt.Errorf("catalog defines no personas")
	}
	if _, ok := c.Personas[c.DefaultPersona]; !ok {
		return nil, fmt.Errorf("default persona %q is not defined", c.DefaultPersona)
	}
	return &c, nil
}

// Persona resolves a persona name, falling back to the default persona.
func (c *Catalog) Persona(name string) (string, string) {
	if prompt, ok := c.Personas[name]; ok {
		return name, prompt
	}
	return c.DefaultPersona, c.Personas[c.DefaultPersona]
}

// Voice maps an alias to a provider voice name. Unknown aliases pass through.
func (c *Catalog) Voice(alias string) string {
	if alias == "" {
		alias = c.DefaultVoice
	}
	if name, ok := c.Voices[alias]; ok {
		return name
	}
	return alias
}

func (c *Catalog) PersonaNames() []string {
	names := make([]string, 0, len(c.Personas))
	for name := range c.Personas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
