// Package main provides the entry point for the dsbench CLI, which runs
// workloads against the go-dsa containers and reference implementations.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-dsa/cmd/dsbench/commands"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dsbench",
		Short: "dsbench - workloads over go-dsa containers",
		Long: `dsbench runs seeded workloads against the go-dsa containers and
third-party reference containers, timing both and checking their results agree.

Commands:
  run       Run workloads
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dsbench %s\n", version)
		},
	}
}
