package catalog

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/enumkit/enum"
)

// Kind selects the constructor a definition is built with.
type Kind string

const (
	// KindByte builds with enum.NewByte. It is the default.
	KindByte Kind = "byte"

	// KindChar builds with enum.NewChar, honouring CodeSet.
	KindChar Kind = "char"

	// KindAlphaNum builds with enum.NewAlphaNum.
	KindAlphaNum Kind = "alphanum"
)

// Definition describes one enumeration in a catalog file.
type Definition struct {
	Name        string   `yaml:"name"`
	Kind        Kind     `yaml:"kind,omitempty"`
	Description string   `yaml:"description,omitempty"`
	CodeSet     string   `yaml:"code_set,omitempty"` // char only; empty means code points 0..255
	Names       []string `yaml:"names"`

	// Source is the file the definition was loaded from, if any.
	Source string `yaml:"-"`
}

// EffectiveKind returns the kind, defaulting to KindByte.
func (d Definition) EffectiveKind() Kind {
	if d.Kind == "" {
		return KindByte
	}
	return Kind(strings.ToLower(string(d.Kind)))
}

// Validate checks the definition is complete. Capacity is not checked here;
// the enum constructors report it when the definition is built.
func (d Definition) Validate() error {
	const op = "catalog.Validate"

	if strings.TrimSpace(d.Name) == "" {
		return enum.NewValidationError(op, fmt.Errorf("%w: name is required", enum.ErrInvalidDefinition))
	}

	if len(d.Names) == 0 {
		return enum.NewValidationError(op, fmt.Errorf("%w: %s: names are required", enum.ErrInvalidDefinition, d.Name))
	}

	for i, name := range d.Names {
		if strings.TrimSpace(name) == "" {
			return enum.NewValidationError(op, fmt.Errorf("%w: %s: names[%d] is empty", enum.ErrInvalidDefinition, d.Name, i))
		}
	}

	switch d.EffectiveKind() {
	case KindByte, KindAlphaNum:
		if d.CodeSet != "" {
			return enum.NewValidationError(op, fmt.Errorf("%w: %s: code_set is only valid for kind %q", enum.ErrInvalidDefinition, d.Name, KindChar))
		}
	case KindChar:
	default:
		return enum.NewValidationError(op, fmt.Errorf("%w: %s: %q", enum.ErrUnknownKind, d.Name, d.Kind))
	}

	return nil
}
