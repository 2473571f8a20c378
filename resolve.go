// File: toml-cfg/resolve.go
package tomlcfg

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ResolvedConfig is the final field-to-value mapping for one declaration:
// the override when present, the default otherwise, with required fields
// enforced. Immutable once produced; emission and the typed accessors only
// read it.
type ResolvedConfig struct {
	decl   *Declaration
	values map[string]any
}

// Resolve applies the override table to a declaration. Fields resolve in
// declaration order and the first failure aborts: an override of the wrong
// kind is ErrTypeMismatch, a required field with no override is
// ErrMissingRequired. Both come back as a *FieldError naming the field. A
// nil table is treated as empty.
//
// Resolution is deterministic: the same declaration and table always yield
// the same values or the same first failure. Namespaces are isolated; only
// the declaration's own section is ever consulted.
func Resolve(decl *Declaration, overrides *OverrideTable) (*ResolvedConfig, error) {
	if decl == nil {
		return nil, fmt.Errorf("cannot resolve a nil declaration")
	}
	if overrides == nil {
		overrides = EmptyOverrides()
	}

	values := make(map[string]any, len(decl.Fields))
	for i := range decl.Fields {
		field := &decl.Fields[i]

		if v, ok := overrides.Lookup(decl.Namespace, field.Name); ok {
			if kindOf(v) != field.Kind {
				return nil, &FieldError{
					Namespace: decl.Namespace,
					Field:     field.Name,
					Detail:    fmt.Sprintf("expected %s value, found %s", field.Kind, literalTypeName(v)),
					Err:       ErrTypeMismatch,
				}
			}
			values[field.Name] = v
			continue
		}

		if field.HasDefault() {
			values[field.Name] = field.Default
			continue
		}

		return nil, missingRequired(decl.Namespace, field.Name)
	}

	return &ResolvedConfig{decl: decl, values: values}, nil
}

// Declaration returns the declaration this config was resolved from.
func (rc *ResolvedConfig) Declaration() *Declaration { return rc.decl }

// Get retrieves the resolved value for a field name. The boolean reports
// whether the field is declared.
func (rc *ResolvedConfig) Get(name string) (any, bool) {
	v, ok := rc.values[name]
	return v, ok
}

// Values returns a copy of the resolved field-to-value mapping.
func (rc *ResolvedConfig) Values() map[string]any {
	out := make(map[string]any, len(rc.values))
	for k, v := range rc.values {
		out[k] = v
	}
	return out
}

// Scan unmarshals the resolved values into a target struct using the same
// `toml` tags that name the declaration's fields, converting to the
// target's field types. The target must be a non-nil pointer.
func (rc *ResolvedConfig) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(rc.values); err != nil {
		return fmt.Errorf("failed to scan resolved config into %T: %w", target, err)
	}
	return nil
}
