// File: toml-cfg/builder.go
package tomlcfg

import "fmt"

// DeclarationBuilder provides a fluent interface for assembling a
// Declaration without scanning source, for build tooling that hosts the
// resolution pipeline itself. Errors are deferred and reported by Build, so
// calls chain without intermediate checks.
type DeclarationBuilder struct {
	decl Declaration
	err  error
}

// NewDeclaration starts a builder for one namespace's configuration,
// declared as the given struct type name.
func NewDeclaration(namespace, typeName string) *DeclarationBuilder {
	return &DeclarationBuilder{
		decl: Declaration{
			Namespace: namespace,
			TypeName:  typeName,
		},
	}
}

// Package sets the Go package name the generated file belongs to.
func (b *DeclarationBuilder) Package(name string) *DeclarationBuilder {
	b.decl.PackageName = name
	return b
}

// Var overrides the generated variable name. The default is the
// shouty-snake form of the type name, so "Config" emits "CONFIG".
func (b *DeclarationBuilder) Var(name string) *DeclarationBuilder {
	b.decl.VarName = name
	return b
}

// FieldOption customizes a single field added to the builder.
type FieldOption func(*FieldSpec)

// Default sets the field's default literal. Any Go integer type is accepted
// for integer fields and stored as int64.
func Default(v any) FieldOption {
	return func(f *FieldSpec) { f.Default = v }
}

// Required marks the field as having no default, so resolution fails unless
// the config file provides a value.
func Required() FieldOption {
	return func(f *FieldSpec) { f.Required = true }
}

// GoName overrides the Go struct field identifier derived from the key.
func GoName(name string) FieldOption {
	return func(f *FieldSpec) { f.GoName = name }
}

// Integer adds an integer field.
func (b *DeclarationBuilder) Integer(name string, opts ...FieldOption) *DeclarationBuilder {
	return b.addField(name, KindInteger, opts)
}

// String adds a string field.
func (b *DeclarationBuilder) String(name string, opts ...FieldOption) *DeclarationBuilder {
	return b.addField(name, KindString, opts)
}

// Bool adds a boolean field.
func (b *DeclarationBuilder) Bool(name string, opts ...FieldOption) *DeclarationBuilder {
	return b.addField(name, KindBool, opts)
}

func (b *DeclarationBuilder) addField(name string, kind Kind, opts []FieldOption) *DeclarationBuilder {
	if b.err != nil {
		return b
	}

	f := FieldSpec{Name: name, Kind: kind}
	for _, opt := range opts {
		opt(&f)
	}

	if f.Default != nil {
		v, err := normalizeLiteral(f.Default)
		if err != nil {
			b.err = &FieldError{
				Namespace: b.decl.Namespace,
				Field:     name,
				Detail:    err.Error(),
				Err:       ErrMalformedField,
			}
			return b
		}
		f.Default = v
	}

	b.decl.Fields = append(b.decl.Fields, f)
	return b
}

// Build validates the assembled declaration and returns it: unique valid
// TOML keys, exactly one of default or required per field, and defaults
// matching their declared kind.
func (b *DeclarationBuilder) Build() (*Declaration, error) {
	if b.err != nil {
		return nil, b.err
	}

	decl := b.decl
	decl.Fields = append([]FieldSpec(nil), b.decl.Fields...)
	if err := decl.normalize(); err != nil {
		return nil, err
	}
	return &decl, nil
}

// MustBuild is like Build but panics on error. Intended for declarations
// written as package-level variables.
func (b *DeclarationBuilder) MustBuild() *Declaration {
	decl, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("declaration build failed: %v", err))
	}
	return decl
}
