package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.toml
var defaultCatalogTOML string

type catalogFile struct {
	Services []serviceEntry `toml:"services" yaml:"services"`
}

type serviceEntry struct {
	ID              string `toml:"id" yaml:"id"`
	Name            string `toml:"name" yaml:"name"`
	PriceMinorUnits int64  `toml:"price" yaml:"price"`
	DurationMinutes int    `toml:"duration_minutes" yaml:"duration_minutes"`
}

// Default returns the salon's built-in service list.
func Default() *Catalog {
	c, err := DecodeTOML(defaultCatalogTOML)
	if err != nil {
		panic("catalog: embedded default catalog is invalid: " + err.Error())
	}
	return c
}

// Load picks the decoder by file extension. An empty path yields Default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return DecodeTOML(string(data))
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
}

func DecodeTOML(doc string) (*Catalog, error) {
	var f catalogFile
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, fmt.Errorf("decode toml catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode toml catalog: unknown keys %v", undecoded)
	}
	return f.build()
}

func DecodeYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode yaml catalog: %w", err)
	}
	return f.build()
}

func (f catalogFile) build() (*Catalog, error) {
	services := make([]*Service, 0, len(f.Services))
	for i, e := range f.Services {
		s, err := NewService(e.ID, e.Name, e.PriceMinorUnits, e.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("service #%d (%q): %w", i+1, e.ID, err)
		}
		services = append(services, s)
	}
	return NewCatalog(services...)
}
