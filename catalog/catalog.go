package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/zero-day-ai/enumkit/enum"
)

// Option configures catalog construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for the catalog and the enumerations it builds.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// Catalog is a set of named enumerations built from definitions.
// It is immutable once built.
type Catalog struct {
	defs  map[string]Definition
	bytes map[string]*enum.Enumeration[uint8]
	chars map[string]*enum.Enumeration[string]
}

// Row is one name of an enumeration, rendered as text.
type Row struct {
	Name    string
	Code    string
	Display string
}

// New validates and builds every definition. Definition names must be
// unique within the catalog.
func New(defs []Definition, opts ...Option) (*Catalog, error) {
	const op = "catalog.New"
	o := newOptions(opts)

	c := &Catalog{
		defs:  make(map[string]Definition, len(defs)),
		bytes: make(map[string]*enum.Enumeration[uint8]),
		chars: make(map[string]*enum.Enumeration[string]),
	}

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, withSource(err, def)
		}
		if prev, exists := c.defs[def.Name]; exists {
			err := enum.NewValidationError(op, fmt.Errorf("%w: duplicate enumeration %q", enum.ErrInvalidDefinition, def.Name))
			if prev.Source != "" {
				err = err.WithContext(map[string]any{"previous": prev.Source})
			}
			return nil, withSource(err, def)
		}

		if err := c.add(def, o.logger); err != nil {
			return nil, withSource(err, def)
		}
		c.defs[def.Name] = def

		o.logger.Debug("loaded enumeration definition",
			"name", def.Name,
			"kind", def.EffectiveKind(),
			"names", len(def.Names))
	}

	return c, nil
}

// withSource records the file def came from on an *enum.Error.
func withSource(err error, def Definition) error {
	var enumErr *enum.Error
	if def.Source == "" || !errors.As(err, &enumErr) {
		return err
	}
	return enumErr.WithContext(map[string]any{"file": def.Source})
}

func (c *Catalog) add(def Definition, logger *slog.Logger) error {
	logOpt := enum.WithLogger(logger.With("enumeration", def.Name))

	var err error
	switch def.EffectiveKind() {
	case KindByte:
		var e *enum.Enumeration[uint8]
		if e, err = enum.NewByte(def.Names, logOpt); err == nil {
			c.bytes[def.Name] = e
		}
	case KindChar:
		opts := []enum.Option{logOpt}
		if def.CodeSet != "" {
			opts = append(opts, enum.WithCodeSet(def.CodeSet))
		}
		var e *enum.Enumeration[string]
		if e, err = enum.NewChar(def.Names, opts...); err == nil {
			c.chars[def.Name] = e
		}
	case KindAlphaNum:
		var e *enum.Enumeration[string]
		if e, err = enum.NewAlphaNum(def.Names, logOpt); err == nil {
			c.chars[def.Name] = e
		}
	}

	if err != nil {
		var enumErr *enum.Error
		if errors.As(err, &enumErr) {
			return enumErr.WithContext(map[string]any{"enumeration": def.Name})
		}
		return err
	}
	return nil
}

// Len returns the number of enumerations.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Byte returns the byte enumeration called name.
func (c *Catalog) Byte(name string) (*enum.Enumeration[uint8], bool) {
	e, ok := c.bytes[name]
	return e, ok
}

// Char returns the character enumeration called name. Alphanumeric
// enumerations are character enumerations.
func (c *Catalog) Char(name string) (*enum.Enumeration[string], bool) {
	e, ok := c.chars[name]
	return e, ok
}

// Definition returns the definition the enumeration called name was built from.
func (c *Catalog) Definition(name string) (Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Definitions returns all definitions sorted by name.
func (c *Catalog) Definitions() []Definition {
	defs := make([]Definition, 0, len(c.defs))
	for _, def := range c.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Lookup returns the code bound to key in the enumeration called name.
// Byte codes are returned as int and character codes as string, ready for
// JSON encoding.
func (c *Catalog) Lookup(name, key string) (any, bool) {
	if e, ok := c.bytes[name]; ok {
		code, found := e.Code(key)
		if !found {
			return nil, false
		}
		return int(code), true
	}
	if e, ok := c.chars[name]; ok {
		code, found := e.Code(key)
		if !found {
			return nil, false
		}
		return code, true
	}
	return nil, false
}

// Rows renders every name of the enumeration called name in insertion order.
func (c *Catalog) Rows(name string) ([]Row, bool) {
	if e, ok := c.bytes[name]; ok {
		return rows(e), true
	}
	if e, ok := c.chars[name]; ok {
		return rows(e), true
	}
	return nil, false
}

func rows[C enum.Code](e *enum.Enumeration[C]) []Row {
	out := make([]Row, 0, e.Len())
	for name, code := range e.All() {
		out = append(out, Row{
			Name:    name,
			Code:    enum.FormatCode(code),
			Display: enum.FormatDisplayName(name),
		})
	}
	return out
}
