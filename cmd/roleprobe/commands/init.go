package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/roleprobe/cmd/roleprobe/handlers"
)

// Init returns the init command.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an args file with an interactive wizard",
		Long: `Init asks which argument shape to use, collects the values and writes
them to a YAML args file for "roleprobe run --args-file".

The file may contain secrets and is written with mode 0600.

Example:
  roleprobe init -o roleprobe.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "roleprobe.yaml", "Output file path")

	return cmd
}
