package numformat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog holds validators by name.
type Catalog struct {
	mu         sync.RWMutex
	validators map[string]*Validator
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{validators: make(map[string]*Validator)}
}

// Add registers v under name, replacing any previous entry.
// Nil validators and empty names are ignored.
func (c *Catalog) Add(name string, v *Validator) {
	if name == "" || v == nil {
		return
	}
	c.mu.Lock()
	c.validators[name] = v
	c.mu.Unlock()
}

// Lookup returns the validator registered under name.
func (c *Catalog) Lookup(name string) (*Validator, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.validators[name]
	return v, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.validators))
	for name := range c.validators {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered formats.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.validators)
}

type catalogFile struct {
	Formats map[string]catalogEntry `yaml:"formats"`
}

type catalogEntry struct {
	Format      string `yaml:"format"`
	NonNegative bool   `yaml:"non_negative"`
}

// UnmarshalYAML accepts either a bare notation string or a mapping.
func (e *catalogEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Format = node.Value
		return nil
	}
	type plain catalogEntry
	return node.Decode((*plain)(e))
}

// LoadCatalog reads a YAML catalog from r.
// Every entry is validated; all invalid entries are reported together.
func LoadCatalog(ctx context.Context, r io.Reader) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrCatalogCancelled, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrCatalogRead, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrCatalogParse, err)
	}
	if len(file.Formats) == 0 {
		return nil, ErrCatalogEmpty
	}

	names := make([]string, 0, len(file.Formats))
	for name := range file.Formats {
		names = append(names, name)
	}
	slices.Sort(names)

	catalog := NewCatalog()
	var errs []error
	for _, name := range names {
		entry := file.Formats[name]
		f, err := ParseFormat(entry.Format)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrCatalogEntry, name, err))
			continue
		}
		f.NonNegative = entry.NonNegative
		v, err := NewFromFormat(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %q: %w", ErrCatalogEntry, name, err))
			continue
		}
		catalog.Add(name, v)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return catalog, nil
}

// LoadCatalogFile reads a YAML catalog from the file at path.
func LoadCatalogFile(ctx context.Context, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrCatalogRead, err)
	}
	return LoadCatalog(ctx, bytes.NewReader(data))
}
