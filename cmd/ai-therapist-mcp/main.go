package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai-therapist-mcp",
		Short: "MCP server offering emotional support tools for AI agents",
		Long: `ai-therapist-mcp is a Model Context Protocol server exposing six
emotional support tools: emotional support requests, crisis intervention,
daily check-ins, coping strategies, affirmations, and peer support.

It speaks newline-delimited JSON-RPC on stdio by default, which is how MCP
clients spawn it. Pass --http to serve the same protocol over HTTP POST
instead.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newToolsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
