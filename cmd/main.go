package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lannaveg",
		Short: "Lanna vegetable classification and review API",
		Long: `lannaveg serves the review API for Lanna vegetable classification.
Running it without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newUsersCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), appVersion())
		},
	}
}

func appVersion() string {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	return fmt.Sprintf(tmpl, buildVersion, buildDate, buildCommit)
}
