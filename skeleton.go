// File: toml-cfg/skeleton.go
package tomlcfg

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Skeleton renders a starter cfg.toml covering the given declarations: one
// section per namespace with every default written out, so the file
// documents what is tunable and removing a line falls back to the default.
// Required fields have no value to write; they are called out in a comment
// above their section. Sections follow the order declarations are given.
func Skeleton(decls []*Declaration) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("# Configuration overrides for this build.\n")
	b.WriteString("# Remove a line to fall back to the declared default.\n")

	for _, decl := range decls {
		b.WriteString("\n")

		var required []string
		defaults := make(map[string]any)
		for i := range decl.Fields {
			field := &decl.Fields[i]
			if field.Required {
				required = append(required, fmt.Sprintf("%s (%s)", field.Name, field.Kind))
				continue
			}
			defaults[field.Name] = field.Default
		}

		if len(required) > 0 {
			fmt.Fprintf(&b, "# %s requires: %s\n", decl.Namespace, strings.Join(required, ", "))
		}
		if len(defaults) == 0 {
			fmt.Fprintf(&b, "[%s]\n", decl.Namespace)
			continue
		}

		enc := toml.NewEncoder(&b)
		enc.Indent = ""
		if err := enc.Encode(map[string]map[string]any{decl.Namespace: defaults}); err != nil {
			return nil, fmt.Errorf("failed to encode defaults for namespace %q: %w", decl.Namespace, err)
		}
	}
	return b.Bytes(), nil
}

// WriteSkeleton writes a skeleton config file, refusing to overwrite an
// existing one unless force is set.
func WriteSkeleton(path string, decls []*Declaration, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (re-run with --force to overwrite)", path)
		}
	}

	data, err := Skeleton(decls)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}
