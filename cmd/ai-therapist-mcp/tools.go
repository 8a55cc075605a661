package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/danieldunderfelt/ai-therapist-mcp/internal/usecases/support"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the tool descriptors as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			service := support.NewService(support.Config{})
			tools, err := service.ListTools(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "listing tools")
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(tools)
		},
	}
}
