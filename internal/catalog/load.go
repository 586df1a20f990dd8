// ABOUTME: YAML catalogue loading and saving; the sample catalogue is embedded
// ABOUTME: Wines failing validation reject the whole file

package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed wines.yaml
var sampleYAML []byte

type document struct {
	Wines []Wine `yaml:"wines"`
}

// Parse decodes a catalogue document.
func Parse(data []byte) ([]Wine, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	for i := range doc.Wines {
		w := &doc.Wines[i]
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("wine %d (%q): %w", i, w.Name, err)
		}
		for j := range w.Reviews {
			if err := w.Reviews[j].Validate(); err != nil {
				return nil, fmt.Errorf("wine %q review %d: %w", w.Name, j, err)
			}
		}
	}
	return doc.Wines, nil
}

// Sample returns a store holding the embedded sample catalogue.
func Sample() *Store {
	wines, err := Parse(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue: %v", err))
	}
	return NewStore(wines)
}

// LoadFile reads a catalogue from path.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	wines, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewStore(wines), nil
}

// Encode writes the store as a catalogue document.
func (s *Store) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Wines: s.List()}); err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	return enc.Close()
}

// SaveFile writes the store to path.
func (s *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving catalogue: %w", err)
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
