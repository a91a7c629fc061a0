package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vmini/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌┬┐┬┌┐┌┬
  ╚╗╔╝│││││││
   ╚╝ ┴ ┴┴┘└┘┴
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Code(err) != "" {
			fmt.Fprint(os.Stderr, errors.FromError(err, "").Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "vmini",
		Short: "A minimal reactive UI framework",
		Long: `vmini mounts reactive components into a document tree.

State writes notify a registry, the registry re-runs each app's render
pass, and the new tree replaces the old one. The CLI drives the bundled
counter demo:

  • render it to HTML after a number of clicks
  • serve it live over WebSocket
  • export snapshots of it to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory containing vmini.json or vmini.yaml")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(&configDir),
		serveCmd(&configDir),
		exportCmd(&configDir),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the vmini ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
