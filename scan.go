// File: toml-cfg/scan.go
package tomlcfg

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

// configDirective marks a struct type as the package's configuration
// declaration.
const configDirective = "//tomlcfg:config"

// goIntegerTypes lists the builtin types scannable as integer fields.
var goIntegerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"byte": true, "rune": true,
}

// ScanDir locates the configuration declaration of the package in dir: a
// struct type carrying the //tomlcfg:config directive. Test files and
// generated files (including this tool's previous output) are skipped. A
// package without a declaration yields (nil, nil); more than one marked
// struct is ErrDuplicateDeclaration.
//
// An empty namespace defaults to the base name of dir, matching how the
// root module addresses the package in cfg.toml.
func ScanDir(dir, namespace string) (*Declaration, error) {
	if namespace == "" {
		ns, err := defaultNamespace(dir)
		if err != nil {
			return nil, err
		}
		namespace = ns
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory '%s': %w", dir, err)
	}

	fset := token.NewFileSet()
	var candidates []declCandidate
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		// The build ignores these, so the declaration cannot live in them.
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}

		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse '%s': %w", filepath.Join(dir, name), err)
		}
		if ast.IsGenerated(file) {
			continue
		}

		found, err := findCandidates(fset, file, namespace)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return buildDeclaration(fset, candidates[0], namespace)
	default:
		first, second := candidates[0], candidates[1]
		return nil, &Diagnostic{
			Pos:       second.pos.String(),
			Namespace: namespace,
			Err: fmt.Errorf("%w: %s conflicts with %s declared at %s",
				ErrDuplicateDeclaration, second.typeName, first.typeName, first.pos),
		}
	}
}

// defaultNamespace derives a package's namespace from its directory name.
func defaultNamespace(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory '%s': %w", dir, err)
	}
	ns := filepath.Base(abs)
	if !isValidKeySegment(ns) {
		return "", fmt.Errorf("%w: directory name %q is not a valid TOML key; pass a namespace explicitly",
			ErrInvalidDeclaration, ns)
	}
	return ns, nil
}

// declCandidate is a struct type carrying the directive, found during the
// collection pass. Fields are parsed only once the package is known to hold
// a single candidate.
type declCandidate struct {
	typeName string
	st       *ast.StructType
	pkgName  string
	pos      token.Position
}

func findCandidates(fset *token.FileSet, file *ast.File, namespace string) ([]declCandidate, error) {
	var found []declCandidate
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		// A comment above an unparenthesized `type X ...` attaches to the
		// GenDecl, not the TypeSpec.
		genMarked, genArgs := findDirective(gen.Doc)
		if genMarked && len(gen.Specs) > 1 {
			return nil, &Diagnostic{
				Pos:       fset.Position(gen.Pos()).String(),
				Namespace: namespace,
				Err:       fmt.Errorf("%w: directive must be attached to a single type declaration, not a type block", ErrInvalidDeclaration),
			}
		}

		for _, s := range gen.Specs {
			ts, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}
			marked, args := findDirective(ts.Doc)
			if !marked {
				marked, args = genMarked, genArgs
			}
			if !marked {
				continue
			}

			pos := fset.Position(ts.Pos())
			if args != "" {
				return nil, &Diagnostic{
					Pos:       pos.String(),
					Namespace: namespace,
					Err:       fmt.Errorf("%w: unexpected arguments %q after %s", ErrInvalidDeclaration, args, configDirective),
				}
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, &Diagnostic{
					Pos:       pos.String(),
					Namespace: namespace,
					Err:       fmt.Errorf("%w: %s directive on non-struct type %s", ErrInvalidDeclaration, configDirective, ts.Name.Name),
				}
			}
			found = append(found, declCandidate{
				typeName: ts.Name.Name,
				st:       st,
				pkgName:  file.Name.Name,
				pos:      pos,
			})
		}
	}
	return found, nil
}

// findDirective reports whether the comment group contains the directive,
// and any trailing text after it. Trailing text is directive misuse and the
// caller rejects it.
func findDirective(doc *ast.CommentGroup) (bool, string) {
	if doc == nil {
		return false, ""
	}
	for _, c := range doc.List {
		if c.Text == configDirective {
			return true, ""
		}
		if rest, ok := strings.CutPrefix(c.Text, configDirective+" "); ok {
			return true, strings.TrimSpace(rest)
		}
	}
	return false, ""
}

func buildDeclaration(fset *token.FileSet, c declCandidate, namespace string) (*Declaration, error) {
	decl := &Declaration{
		Namespace:   namespace,
		TypeName:    c.typeName,
		VarName:     shoutySnake(c.typeName),
		PackageName: c.pkgName,
		pos:         c.pos.String(),
	}

	for _, field := range c.st.Fields.List {
		spec, err := parseField(fset, field, namespace)
		if err != nil {
			return nil, err
		}
		decl.Fields = append(decl.Fields, *spec)
	}

	if err := decl.normalize(); err != nil {
		return nil, &Diagnostic{Pos: decl.pos, Namespace: namespace, Err: err}
	}
	return decl, nil
}

// parseField turns one struct field into a FieldSpec, enforcing the
// declaration rules: a supported type, a usable key, and exactly one of a
// default literal or a required marker.
func parseField(fset *token.FileSet, field *ast.Field, namespace string) (*FieldSpec, error) {
	fail := func(name, detail string) error {
		return &Diagnostic{
			Pos:       fset.Position(field.Pos()).String(),
			Namespace: namespace,
			Err:       &FieldError{Namespace: namespace, Field: name, Detail: detail, Err: ErrMalformedField},
		}
	}

	if len(field.Names) == 0 {
		return nil, fail(exprText(fset, field.Type), "embedded fields are not supported in a configuration declaration")
	}
	if len(field.Names) > 1 {
		return nil, fail(field.Names[0].Name, "each configuration field must be declared on its own line")
	}
	goName := field.Names[0].Name

	kind, ok := fieldKind(field.Type)
	if !ok {
		return nil, fail(goName, fmt.Sprintf("unsupported type %s (supported: Go integer types, string, bool)", exprText(fset, field.Type)))
	}

	var tag reflect.StructTag
	if field.Tag != nil {
		raw, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			return nil, fail(goName, "malformed struct tag")
		}
		tag = reflect.StructTag(raw)
	}

	name := snakeCase(goName)
	if v, ok := tag.Lookup("toml"); ok {
		key, _, _ := strings.Cut(v, ",")
		switch {
		case key == "-":
			return nil, fail(goName, `configuration fields cannot opt out with toml:"-"`)
		case key != "":
			name = key
		}
	}

	defVal, hasDefault := tag.Lookup("default")
	reqVal, hasRequired := tag.Lookup("required")
	if hasRequired && reqVal != "true" {
		return nil, fail(name, fmt.Sprintf("unexpected value %q for the required tag (only `required:\"true\"` is recognized)", reqVal))
	}
	if hasDefault == hasRequired {
		return nil, fail(name, "expected exactly one of a `default:\"...\"` value or `required:\"true\"`")
	}

	spec := &FieldSpec{
		Name:     name,
		GoName:   goName,
		Kind:     kind,
		Required: hasRequired,
		pos:      fset.Position(field.Pos()).String(),
	}
	if hasDefault {
		v, err := parseDefaultLiteral(defVal, kind)
		if err != nil {
			return nil, fail(name, fmt.Sprintf("failed to parse default value: %v", err))
		}
		spec.Default = v
	}
	return spec, nil
}

// parseDefaultLiteral parses a `default:"..."` tag value per the field's
// kind. Integer literals accept the usual Go bases (0x, 0o, 0b, plain).
func parseDefaultLiteral(raw string, kind Kind) (any, error) {
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer literal", raw)
		}
		return n, nil
	case KindString:
		return raw, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean literal", raw)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unsupported kind %s", kind)
}

func fieldKind(expr ast.Expr) (Kind, bool) {
	ident, ok := expr.(*ast.Ident)
	if !ok {
		return KindInvalid, false
	}
	switch {
	case ident.Name == "string":
		return KindString, true
	case ident.Name == "bool":
		return KindBool, true
	case goIntegerTypes[ident.Name]:
		return KindInteger, true
	}
	return KindInvalid, false
}

// exprText renders a type expression for diagnostics.
func exprText(fset *token.FileSet, expr ast.Expr) string {
	var b bytes.Buffer
	if err := printer.Fprint(&b, fset, expr); err != nil {
		return "?"
	}
	return b.String()
}
