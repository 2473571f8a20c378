// File: toml-cfg/cmd/toml-cfg/check.go
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	tomlcfg "github.com/hnefatl/toml-cfg"
)

func newCheckCommand() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "check [package-dir...]",
		Short: "Verify generated files are up to date with declarations and cfg.toml",
		Long: `check runs the same scan, load, and resolve pipeline as generation, but
compares the result against the generated file on disk instead of writing
it. Each stale or missing file is reported and the command exits non-zero,
which makes it suitable as a CI gate against forgotten go generate runs.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args)
		},
	}
	flags.register(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, flags *generateFlags, args []string) error {
	dirs, err := packageDirs(flags, args)
	if err != nil {
		return err
	}

	stale := 0
	for _, dir := range dirs {
		_, err := tomlcfg.Check(flags.options(dir))
		if err != nil {
			if errors.Is(err, tomlcfg.ErrStaleOutput) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				stale++
				continue
			}
			return err
		}
	}
	if stale > 0 {
		return fmt.Errorf("%d generated file(s) out of date", stale)
	}
	return nil
}
