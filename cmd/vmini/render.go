package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func renderCmd(configDir *string) *cobra.Command {
	var (
		clicks int
		ids    bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the counter demo to HTML",
		Long: `Mount the counter demo, click its button, and print the resulting HTML.

Examples:
  vmini render
  vmini render --clicks=3
  vmini render --ids`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}

			res, err := renderDemo(clicks, ids, newLogger(cfg, os.Stderr))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.HTML)
			if !quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s render passes, %s of HTML, %s live listeners\n",
					humanize.Comma(int64(res.Renders)),
					humanize.Bytes(uint64(res.Size)),
					humanize.Comma(int64(res.Listeners)))
				if res.Celebrated {
					fmt.Fprintln(cmd.ErrOrStderr(), "🎉")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Number of clicks on the counter button")
	cmd.Flags().BoolVar(&ids, "ids", false, "Write data-vmini-id attributes")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the summary")

	return cmd
}
