// File: toml-cfg/cmd/toml-cfg/init.go
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	tomlcfg "github.com/hnefatl/toml-cfg"
)

func newInitCommand() *cobra.Command {
	var (
		force  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "init [package-dir...]",
		Short: "Write a starter cfg.toml from the packages' declarations",
		Long: `init scans the given package directories and writes a cfg.toml at the
module root with every declared default spelled out, ready to edit.
Required fields are listed in a comment, since they have no default to
write.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, args, output, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this path instead of cfg.toml at the module root")
	return cmd
}

func runInit(cmd *cobra.Command, args []string, output string, force bool) error {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	var decls []*tomlcfg.Declaration
	for _, dir := range dirs {
		decl, err := tomlcfg.ScanDir(dir, "")
		if err != nil {
			return err
		}
		if decl != nil {
			decls = append(decls, decl)
		}
	}
	if len(decls) == 0 {
		return fmt.Errorf("no configuration declarations found")
	}

	path := output
	if path == "" {
		root, err := tomlcfg.ModuleRoot(dirs[0])
		if err != nil {
			return err
		}
		path = filepath.Join(root, tomlcfg.ConfigFileName)
	}

	if err := tomlcfg.WriteSkeleton(path, decls, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d namespace(s))\n", path, len(decls))
	return nil
}
