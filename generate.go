// File: toml-cfg/generate.go
package tomlcfg

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
)

// Options controls one generation pass over a single package directory.
// The zero value generates for ".", derives the namespace from the
// directory name, and discovers cfg.toml at the module root.
type Options struct {
	// Dir is the package directory to scan. Defaults to ".".
	Dir string

	// Namespace scopes the declaration and its overrides. Defaults to the
	// base name of Dir.
	Namespace string

	// ConfigPath names the override file explicitly, bypassing discovery.
	// An explicitly named file must exist.
	ConfigPath string

	// Output is the generated file name within Dir. Defaults to
	// DefaultOutputFile.
	Output string

	// VarName overrides the generated variable name. Defaults to the
	// shouty-snake form of the declaring type name.
	VarName string

	// RequireConfig makes a missing config file fatal rather than an empty
	// override table. The CLI sets it from TOML_CFG=require_cfg_present.
	RequireConfig bool
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Output == "" {
		o.Output = DefaultOutputFile
	}
	return o
}

// Result reports what one Generate or Check pass did.
type Result struct {
	Declaration *Declaration // nil when the package declares nothing
	ConfigPath  string       // override file used; "" when none was found
	OutputPath  string       // file written by Generate, or compared by Check
	Source      []byte       // rendered file contents
}

// Generate runs the full pipeline for one package: scan the declaration,
// load the root unit's overrides, resolve, and write the generated file
// into the package directory. A package without a declaration is not an
// error; the Result carries a nil Declaration and nothing is written.
func Generate(opts Options) (*Result, error) {
	opts = opts.withDefaults()
	res, err := run(opts)
	if err != nil || res.Declaration == nil {
		return res, err
	}

	path := filepath.Join(opts.Dir, opts.Output)
	if err := atomicWriteFile(path, res.Source); err != nil {
		return nil, err
	}
	res.OutputPath = path
	return res, nil
}

// Check runs the same pipeline as Generate but compares the rendered source
// against the file on disk instead of writing it. A missing or differing
// file is ErrStaleOutput; CI runs `toml-cfg check` to catch declaration or
// cfg.toml edits that were not followed by go generate.
func Check(opts Options) (*Result, error) {
	opts = opts.withDefaults()
	res, err := run(opts)
	if err != nil || res.Declaration == nil {
		return res, err
	}

	path := filepath.Join(opts.Dir, opts.Output)
	res.OutputPath = path

	existing, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return res, fmt.Errorf("%w: %s does not exist; run go generate", ErrStaleOutput, path)
		}
		return nil, fmt.Errorf("failed to read generated file '%s': %w", path, err)
	}
	if !bytes.Equal(existing, res.Source) {
		return res, fmt.Errorf("%w: %s differs from what generation would produce; run go generate", ErrStaleOutput, path)
	}
	return res, nil
}

// run executes scan, load, resolve, and emit without touching the output
// file.
func run(opts Options) (*Result, error) {
	decl, err := ScanDir(opts.Dir, opts.Namespace)
	if err != nil {
		return nil, err
	}
	if decl == nil {
		return &Result{}, nil
	}
	if opts.VarName != "" {
		if !token.IsIdentifier(opts.VarName) {
			return nil, fmt.Errorf("%w: variable name %q is not a valid Go identifier", ErrInvalidDeclaration, opts.VarName)
		}
		decl.VarName = opts.VarName
	}

	table, cfgPath, err := loadTable(opts)
	if err != nil {
		return nil, err
	}

	rc, err := Resolve(decl, table)
	if err != nil {
		return nil, diagnose(decl, err)
	}

	src, err := Emit(rc)
	if err != nil {
		return nil, err
	}
	return &Result{Declaration: decl, ConfigPath: cfgPath, Source: src}, nil
}

// loadTable locates and parses the override table per the options. An
// explicit path must exist; a discovered path may be absent, yielding an
// empty table, unless RequireConfig is set.
func loadTable(opts Options) (*OverrideTable, string, error) {
	path := opts.ConfigPath
	if path == "" {
		found, err := DiscoverConfig(opts.Dir)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				if opts.RequireConfig {
					return nil, "", fmt.Errorf("%s=%s is set, but no valid config file was found: %w",
						EnvVar, requireConfigOption, err)
				}
				return EmptyOverrides(), "", nil
			}
			return nil, "", err
		}
		path = found
	}

	table, err := LoadOverrides(path)
	if err != nil {
		return nil, "", err
	}
	return table, path, nil
}

// diagnose attaches the failing field's source position and namespace to a
// resolution error, so the CLI reports it like a compile error.
func diagnose(decl *Declaration, err error) error {
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		return err
	}
	pos := decl.pos
	if field, ok := decl.Field(ferr.Field); ok && field.pos != "" {
		pos = field.pos
	}
	return &Diagnostic{Pos: pos, Namespace: decl.Namespace, Err: ferr}
}
