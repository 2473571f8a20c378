// FILE: toml-cfg/discovery.go
package tomlcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the override file read from the root build unit.
const ConfigFileName = "cfg.toml"

// EnvVar is the environment variable consulted for tool options.
const EnvVar = "TOML_CFG"

// requireConfigOption, inside EnvVar, makes a missing config file fatal
// instead of resolving every declaration from its defaults.
const requireConfigOption = "require_cfg_present"

// RequireConfigFromEnv reports whether TOML_CFG asks for a missing config
// file to be treated as an error. Useful for release builds that must not
// silently fall back to defaults.
func RequireConfigFromEnv() bool {
	v, ok := os.LookupEnv(EnvVar)
	return ok && strings.Contains(v, requireConfigOption)
}

// DiscoverConfig finds the root build unit's override file for a package
// directory: the directory is walked upward to the nearest go.mod, and
// cfg.toml must sit beside it. The search never crosses the module
// boundary, so only the module being built supplies overrides.
// ErrConfigNotFound is reported when the module root holds no cfg.toml, or
// no go.mod exists above dir at all.
func DiscoverConfig(dir string) (string, error) {
	root, err := ModuleRoot(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(root, ConfigFileName)
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return path, nil
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("failed to check config file '%s': %w", path, err)
	}
	return "", fmt.Errorf("%w: no %s at module root %s", ErrConfigNotFound, ConfigFileName, root)
}

// ModuleRoot walks up from dir to the nearest directory containing go.mod.
func ModuleRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory '%s': %w", dir, err)
	}

	for cur := abs; ; {
		if info, err := os.Stat(filepath.Join(cur, "go.mod")); err == nil && !info.IsDir() {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("%w: no go.mod found in or above %s", ErrConfigNotFound, abs)
		}
		cur = parent
	}
}
