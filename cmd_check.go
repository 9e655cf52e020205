// cmd_check.go
package main

import (
	"fmt"

	"github.com/ViniZap4/groupboard/filesystem"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the group data and the template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := openSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer source.Close()

		groups, err := source.Groups(cmd.Context())
		if err != nil {
			return err
		}
		if err := filesystem.Readable(cfg.TemplatePath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d groups OK\n", len(groups))
		return nil
	},
}
