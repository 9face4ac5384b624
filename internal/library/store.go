// Package library stores named dice expressions in a YAML file so that CLI
// commands can refer to "shortsword" instead of "1d6+3".
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Erawpalassalg/GDTools/internal/dice"
	"github.com/Erawpalassalg/GDTools/internal/notation"
)

// Library maps expression names to their dice notation.
type Library struct {
	Expressions map[string]string `yaml:"expressions"`
}

// Load reads the library file at path. A missing file is not an error and
// yields an empty library, so commands work without prior setup.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{Expressions: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("failed to open library %s: %w", path, err)
	}
	defer f.Close()

	var l Library
	if err := yaml.NewDecoder(f).Decode(&l); err != nil {
		return nil, fmt.Errorf("failed to decode library %s: %w", path, err)
	}
	if l.Expressions == nil {
		l.Expressions = map[string]string{}
	}
	return &l, nil
}

// Save writes the library back to path, creating parent directories.
func (l *Library) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode library: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library %s: %w", path, err)
	}
	return nil
}

// Set registers or replaces a named expression after checking it parses.
func (l *Library) Set(name, expr string) error {
	if _, err := notation.Parse(expr); err != nil {
		return err
	}
	if l.Expressions == nil {
		l.Expressions = map[string]string{}
	}
	l.Expressions[name] = expr
	return nil
}

// Resolve turns a name or raw notation into a pool. Names win over raw
// notation, so a library entry called "3d6" would shadow the literal.
func (l *Library) Resolve(nameOrExpr string) (dice.Pool, error) {
	if expr, ok := l.Expressions[nameOrExpr]; ok {
		pool, err := notation.Parse(expr)
		if err != nil {
			return dice.Pool{}, fmt.Errorf("library entry %q: %w", nameOrExpr, err)
		}
		return pool, nil
	}
	return notation.Parse(nameOrExpr)
}
