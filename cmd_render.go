// cmd_render.go
package main

import (
	"fmt"

	"github.com/ViniZap4/groupboard/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the page once and write it to stdout",
	Long: `Runs the same pipeline as the server without HTTP. Useful for
checking markup and search results or for publishing a static page.

Example:
  groupboard render --term "tag:go systems" > search.html`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("term", "t", "", "search term")
}

func runRender(cmd *cobra.Command, args []string) error {
	term, _ := cmd.Flags().GetString("term")

	source, err := openSource(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	page, err := render.NewRenderer(source, cfg.TemplatePath).Render(cmd.Context(), term)
	if err != nil {
		return err
	}

	logger.Info().Int("matched", page.Matched).Int("total", page.Total).Msg("Rendered page")
	_, err = fmt.Fprint(cmd.OutOrStdout(), page.HTML)
	return err
}
