// File: toml-cfg/overrides.go
package tomlcfg

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

// OverrideTable is the parsed override file of the root build unit:
// namespace to field to literal value. It is built once per run and
// read-only afterwards. Values keep their parsed TOML types; kind checking
// happens during resolution, when the declaration is known.
type OverrideTable struct {
	path     string
	sections map[string]map[string]any
}

// EmptyOverrides returns the table for a root unit with no config file.
// Resolution against it falls back to defaults for every field.
func EmptyOverrides() *OverrideTable {
	return &OverrideTable{sections: map[string]map[string]any{}}
}

// LoadOverrides reads and parses the root unit's config file. A missing
// file reports ErrConfigNotFound so callers can fall back to EmptyOverrides.
func LoadOverrides(path string) (*OverrideTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return ParseOverrides(data, path)
}

// ParseOverrides parses config file contents already in memory. path is
// used in diagnostics only.
//
// The file's top level must consist solely of namespace sections; a bare
// top-level value has no namespace and is ErrMalformedConfigFile, as is any
// TOML syntax error (including duplicate keys, which the TOML grammar
// forbids). Values inside a section are not inspected here: the table is
// type-agnostic until a declaration resolves against it, and sections or
// fields no declaration asks for are simply never read.
func ParseOverrides(data []byte, path string) (*OverrideTable, error) {
	raw := make(map[string]any)
	if err := toml.Unmarshal(data, &raw); err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, &Diagnostic{
				Pos: fmt.Sprintf("%s:%d:%d", path, perr.Position.Line, perr.Position.Col),
				Err: fmt.Errorf("%w: %s", ErrMalformedConfigFile, perr.Message),
			}
		}
		return nil, &Diagnostic{
			Pos: path,
			Err: fmt.Errorf("%w: %v", ErrMalformedConfigFile, err),
		}
	}

	sections := make(map[string]map[string]any, len(raw))
	for ns, v := range raw {
		section, ok := v.(map[string]any)
		if !ok {
			return nil, &Diagnostic{
				Pos: path,
				Err: fmt.Errorf("%w: top-level key %q must be a [%s] table of field values", ErrMalformedConfigFile, ns, ns),
			}
		}
		sections[ns] = section
	}
	return &OverrideTable{path: path, sections: sections}, nil
}

// Lookup returns the override for a field of a namespace, if any.
func (t *OverrideTable) Lookup(namespace, field string) (any, bool) {
	section, ok := t.sections[namespace]
	if !ok {
		return nil, false
	}
	v, ok := section[field]
	return v, ok
}

// Section returns a copy of one namespace's overrides. Absent namespaces
// yield an empty map.
func (t *OverrideTable) Section(namespace string) map[string]any {
	section := t.sections[namespace]
	out := make(map[string]any, len(section))
	for k, v := range section {
		out[k] = v
	}
	return out
}

// Namespaces lists the namespaces present in the file, sorted.
func (t *OverrideTable) Namespaces() []string {
	out := make([]string, 0, len(t.sections))
	for ns := range t.sections {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of override values across all namespaces.
func (t *OverrideTable) Len() int {
	n := 0
	for _, section := range t.sections {
		n += len(section)
	}
	return n
}

// Path returns the file the table was loaded from, or "" for an empty or
// in-memory table.
func (t *OverrideTable) Path() string { return t.path }
