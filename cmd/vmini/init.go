package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		asYAML bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default vmini.json",
		Long: `Write a configuration file with every default spelled out.

Examples:
  vmini init
  vmini init ./deploy --yaml
  vmini init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if config.Exists(dir) && !force {
				return errors.New("E401").
					WithDetail("a config file already exists in " + dir).
					WithSuggestion("Pass --force to overwrite it")
			}

			name := config.ConfigFileName
			if asYAML {
				name = config.YAMLConfigFileName
			}

			cfg := config.New()
			if err := cfg.SaveTo(filepath.Join(dir, name)); err != nil {
				return err
			}

			success("Wrote %s", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Write vmini.yaml instead of vmini.json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
