package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumkit/enum"
)

// document is the layout of a catalog file: either a list under
// "enumerations" or a single definition at the top level.
type document struct {
	Enumerations []Definition `yaml:"enumerations"`
	Definition   `yaml:",inline"`
}

func (d document) definitions() ([]Definition, error) {
	hasTopLevel := d.Definition.Name != "" || d.Definition.Kind != "" ||
		d.Definition.Description != "" || d.Definition.CodeSet != "" ||
		len(d.Definition.Names) > 0

	switch {
	case len(d.Enumerations) > 0 && hasTopLevel:
		return nil, errors.New("document mixes an enumerations list with top-level definition fields")
	case len(d.Enumerations) > 0:
		return d.Enumerations, nil
	case hasTopLevel:
		return []Definition{d.Definition}, nil
	}
	return nil, nil
}

// Decode reads the definitions from one YAML stream. A stream may hold
// several documents separated by "---".
func Decode(r io.Reader) ([]Definition, error) {
	const op = "catalog.Decode"

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var defs []Definition
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, enum.NewParseError(op, fmt.Errorf("failed to parse catalog: %w", err))
		}
		docDefs, err := doc.definitions()
		if err != nil {
			return nil, enum.NewParseError(op, err)
		}
		defs = append(defs, docDefs...)
	}

	return defs, nil
}

// Parse decodes and builds a catalog from YAML data.
func Parse(data []byte, opts ...Option) (*Catalog, error) {
	defs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return New(defs, opts...)
}

// Load reads a catalog from path. If path is a directory, every *.yaml and
// *.yml file directly inside it is read in lexical order and the
// definitions are merged into one catalog.
func Load(path string, opts ...Option) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !isYAML(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .yaml or .yml files found in %s", path)
		}
	} else {
		files = []string{path}
	}

	var defs []Definition
	for _, file := range files {
		fileDefs, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}

	return New(defs, opts...)
}

func loadFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	defer f.Close()

	defs, err := Decode(f)
	if err != nil {
		var enumErr *enum.Error
		if errors.As(err, &enumErr) {
			return nil, enumErr.WithContext(map[string]any{"file": path})
		}
		return nil, err
	}
	for i := range defs {
		defs[i].Source = path
	}
	return defs, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
