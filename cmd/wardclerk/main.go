package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flanksource/wardclerk"
	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/names"
	"github.com/flanksource/wardclerk/shutdown"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := shutdown.Context(context.Background(), os.Stderr)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var flags *wardclerk.AllFlags
	rootCmd := &cobra.Command{
		Use:   "wardclerk",
		Short: "Compose congregation meeting records into branded PDF documents",
		Long: `wardclerk turns sacrament meeting programs, council minutes, interview
agendas and attendance rosters, given as JSON or YAML records, into paginated
PDF documents stamped with the ward's branding.`,
		Example: `  wardclerk render sacramental program.yaml
  wardclerk render agenda interviews.json --locale es --settings-url https://ward.example.org/api
  wardclerk render roster attendance.yaml --dry-run
  wardclerk normalize-name "García López, Juan Carlos"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.UseFlags(cmd.Flags())
		},
	}
	flags = wardclerk.BindAllFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newNormalizeNameCommand())
	rootCmd.AddCommand(newKindsCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func newNormalizeNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize-name <name> [name...]",
		Short: "Print names in \"Given Surname\" order",
		Example: `  wardclerk normalize-name "García López, Juan Carlos" "Pérez Soto Ana María"`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), names.Normalize(name))
			}
		},
	}
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the document kinds",
		Run: func(cmd *cobra.Command, args []string) {
			for _, kind := range api.Kinds {
				fmt.Fprintln(cmd.OutOrStdout(), kind)
			}
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("wardclerk %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}
