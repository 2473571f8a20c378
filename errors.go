// File: toml-cfg/errors.go
package tomlcfg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes reported by scanning, loading,
// resolution, and generation. All errors returned by this package wrap one
// of these, so callers can classify with errors.Is.
var (
	// ErrDuplicateDeclaration indicates more than one //tomlcfg:config
	// struct in a single package.
	ErrDuplicateDeclaration = errors.New("duplicate configuration declaration")

	// ErrInvalidDeclaration indicates directive misuse: the directive on a
	// non-struct type, on a grouped type block, or carrying arguments.
	ErrInvalidDeclaration = errors.New("invalid configuration declaration")

	// ErrMalformedField indicates a declared field with a bad tag
	// combination, an unparseable default literal, or an unsupported type.
	ErrMalformedField = errors.New("malformed configuration field")

	// ErrMalformedConfigFile indicates the override file failed to parse as
	// TOML or has a shape other than tables of key-value pairs.
	ErrMalformedConfigFile = errors.New("malformed config file")

	// ErrTypeMismatch indicates an override value whose TOML type disagrees
	// with the declared field kind.
	ErrTypeMismatch = errors.New("override type mismatch")

	// ErrMissingRequired indicates a required field with no override.
	ErrMissingRequired = errors.New("required value not provided")

	// ErrConfigNotFound indicates no config file exists for the root build
	// unit. Callers usually fall back to an empty override table.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrStaleOutput indicates a generated file that is missing or no
	// longer matches what generation would produce.
	ErrStaleOutput = errors.New("generated file is out of date")
)

// FieldError is a failure scoped to one declared field. Error returns the
// user-visible diagnostic line; for a required field with no override the
// text is fixed, and external tooling may match it verbatim.
type FieldError struct {
	Namespace string // owning declaration's namespace
	Field     string // TOML key of the field
	Detail    string // human-readable cause
	Err       error  // sentinel classifying the failure
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("Field `%s`: %s", e.Field, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Err }

// missingRequired builds the canonical required-but-missing failure. The
// message text is load-bearing, do not reword it.
func missingRequired(namespace, field string) *FieldError {
	return &FieldError{
		Namespace: namespace,
		Field:     field,
		Detail:    "required but no value was provided in the config file.",
		Err:       ErrMissingRequired,
	}
}

// Diagnostic prefixes an error with source context so the CLI reports
// failures the way compilers do: file:line:col first, then the namespace,
// then the cause.
type Diagnostic struct {
	Pos       string // "file:line:col" or a bare path; may be empty
	Namespace string // empty for file-level failures
	Err       error
}

func (d *Diagnostic) Error() string {
	msg := d.Err.Error()
	if d.Namespace != "" {
		msg = fmt.Sprintf("namespace %q: %s", d.Namespace, msg)
	}
	if d.Pos != "" {
		msg = d.Pos + ": " + msg
	}
	return msg
}

func (d *Diagnostic) Unwrap() error { return d.Err }
