// File: toml-cfg/schema.go
package tomlcfg

import (
	"fmt"
	"go/token"
	"reflect"
	"time"
)

// Kind identifies the literal type a configuration field accepts. Defaults
// and overrides must match the field's kind exactly; there is no coercion
// between kinds.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	default:
		return "invalid"
	}
}

// kindOf classifies a literal in canonical representation. Anything outside
// the three supported kinds (floats, arrays, tables, datetimes) reports
// KindInvalid.
func kindOf(v any) Kind {
	switch v.(type) {
	case int64:
		return KindInteger
	case string:
		return KindString
	case bool:
		return KindBool
	default:
		return KindInvalid
	}
}

// literalTypeName names a parsed TOML value's type for diagnostics.
func literalTypeName(v any) string {
	switch v.(type) {
	case int64:
		return "integer"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "float"
	case time.Time:
		return "datetime"
	case []any, []map[string]any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// normalizeLiteral converts a caller-supplied default value to the canonical
// representation: int64 for any Go integer type, string, or bool.
func normalizeLiteral(v any) (any, error) {
	switch v.(type) {
	case int64, string, bool:
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		maxInt64 := uint64(^uint64(0) >> 1)
		if u > maxInt64 {
			return nil, fmt.Errorf("integer value %d overflows int64", u)
		}
		return int64(u), nil
	}
	return nil, fmt.Errorf("unsupported literal type %T (want an integer, string, or bool)", v)
}

// FieldSpec is one declared configurable field: the TOML key naming it, the
// literal kind it accepts, and exactly one of a default value or a required
// marker.
type FieldSpec struct {
	Name     string // TOML key; unique within the declaration
	GoName   string // Go struct field identifier used in emission
	Kind     Kind
	Default  any // canonical int64/string/bool; nil when the field is required
	Required bool

	pos string // file:line:col when scanned from source
}

// HasDefault reports whether the field carries a default literal.
func (f *FieldSpec) HasDefault() bool { return f.Default != nil }

// Pos returns the field's source position, or "" for builder-made fields.
func (f *FieldSpec) Pos() string { return f.pos }

// Declaration is the ordered set of configurable fields declared by one
// namespace. Field order is source order and drives resolution, emission,
// and which failure is reported first.
type Declaration struct {
	Namespace   string // build-unit identifier, a bare TOML key such as "lib-one"
	TypeName    string // declaring struct type, such as "Config"
	VarName     string // generated variable, such as "CONFIG"
	PackageName string // Go package the generated file belongs to
	Fields      []FieldSpec

	pos string // position of the struct declaration when scanned from source
}

// Field looks up a field by its TOML key.
func (d *Declaration) Field(name string) (*FieldSpec, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// FieldNames returns the declared TOML keys in declaration order.
func (d *Declaration) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i := range d.Fields {
		names[i] = d.Fields[i].Name
	}
	return names
}

// Pos returns the source position of the declaration, or "" if it was built
// programmatically.
func (d *Declaration) Pos() string { return d.pos }

// normalize fills derived names (GoName from the key, VarName from the type
// name) and checks the declaration's structural invariants: valid TOML keys,
// unique field names, valid Go identifiers, one of default or required per
// field, and defaults matching their declared kind.
func (d *Declaration) normalize() error {
	if !isValidKeySegment(d.Namespace) {
		return fmt.Errorf("%w: namespace %q is not a valid TOML key", ErrInvalidDeclaration, d.Namespace)
	}
	if !token.IsIdentifier(d.TypeName) {
		return fmt.Errorf("%w: type name %q is not a valid Go identifier", ErrInvalidDeclaration, d.TypeName)
	}
	if d.VarName == "" {
		d.VarName = shoutySnake(d.TypeName)
	}
	if !token.IsIdentifier(d.VarName) {
		return fmt.Errorf("%w: variable name %q is not a valid Go identifier", ErrInvalidDeclaration, d.VarName)
	}

	seen := make(map[string]bool, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if err := f.normalize(d.Namespace); err != nil {
			return err
		}
		if seen[f.Name] {
			return &FieldError{
				Namespace: d.Namespace,
				Field:     f.Name,
				Detail:    "declared more than once",
				Err:       ErrMalformedField,
			}
		}
		seen[f.Name] = true
	}
	return nil
}

func (f *FieldSpec) normalize(namespace string) error {
	fail := func(detail string) error {
		return &FieldError{Namespace: namespace, Field: f.Name, Detail: detail, Err: ErrMalformedField}
	}

	if !isValidKeySegment(f.Name) {
		return fail(fmt.Sprintf("%q is not a valid TOML key", f.Name))
	}
	if f.GoName == "" {
		f.GoName = pascalCase(f.Name)
	}
	if !token.IsIdentifier(f.GoName) {
		return fail(fmt.Sprintf("%q is not a valid Go identifier", f.GoName))
	}
	if f.Kind != KindInteger && f.Kind != KindString && f.Kind != KindBool {
		return fail("unsupported field kind")
	}
	if f.Required == f.HasDefault() {
		return fail("expected exactly one of a `default:\"...\"` value or `required:\"true\"`")
	}
	if f.HasDefault() {
		if got := kindOf(f.Default); got != f.Kind {
			return fail(fmt.Sprintf("default value is %s, but the field is declared as %s", literalTypeName(f.Default), f.Kind))
		}
	}
	return nil
}
