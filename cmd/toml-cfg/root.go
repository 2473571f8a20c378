// File: toml-cfg/cmd/toml-cfg/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	tomlcfg "github.com/hnefatl/toml-cfg"
)

// generateFlags are shared by the root (generate) and check commands.
type generateFlags struct {
	config    string
	output    string
	varName   string
	namespace string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "path to the override file (default: cfg.toml at the module root)")
	cmd.Flags().StringVarP(&f.output, "output", "o", tomlcfg.DefaultOutputFile, "generated file name within each package directory")
	cmd.Flags().StringVar(&f.varName, "var", "", "name of the generated variable (default: SHOUTY_SNAKE of the struct type)")
	cmd.Flags().StringVar(&f.namespace, "namespace", "", "namespace override (single package directory only; default: directory name)")
}

func (f *generateFlags) options(dir string) tomlcfg.Options {
	return tomlcfg.Options{
		Dir:           dir,
		Namespace:     f.namespace,
		ConfigPath:    f.config,
		Output:        f.output,
		VarName:       f.varName,
		RequireConfig: tomlcfg.RequireConfigFromEnv(),
	}
}

// packageDirs resolves the positional arguments to the directories to
// process, defaulting to the current directory the way go:generate runs.
func packageDirs(f *generateFlags, args []string) ([]string, error) {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	if f.namespace != "" && len(dirs) > 1 {
		return nil, fmt.Errorf("--namespace applies to a single package directory, got %d", len(dirs))
	}
	return dirs, nil
}

func newRootCommand(version, commit, date string) *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "toml-cfg [package-dir...]",
		Short: "Bake cfg.toml overrides into generated Go configuration values",
		Long: `toml-cfg resolves configuration declarations against the root module's
cfg.toml and writes a generated Go file with the final values baked in.

A package declares its configuration on a struct:

    //go:generate go tool toml-cfg

    //tomlcfg:config
    type Config struct {
        BufferSize int    ` + "`" + `toml:"buffer_size" default:"32"` + "`" + `
        WifiSSID   string ` + "`" + `toml:"wifi_ssid" required:"true"` + "`" + `
    }

The module being built overrides values in a cfg.toml next to its go.mod:

    [lib-one]
    buffer_size = 4096

Running toml-cfg (typically via go generate) writes tomlcfg_gen.go with
var CONFIG = Config{...} holding the resolved values. Fields without an
override keep their declared default; a required field without an override
fails generation.

Setting TOML_CFG=require_cfg_present makes a missing cfg.toml an error.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags, args)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	flags.register(rootCmd)
	rootCmd.AddCommand(newCheckCommand(), newInitCommand())
	return rootCmd
}

func runGenerate(flags *generateFlags, args []string) error {
	dirs, err := packageDirs(flags, args)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if _, err := tomlcfg.Generate(flags.options(dir)); err != nil {
			return err
		}
	}
	return nil
}
