package cli

import (
	"github.com/spf13/cobra"
)

func newSearchCommand(deps Dependencies, ff *filterFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Run a product search and print the raw response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := deps.Catalog.SearchRaw(cmd.Context(), ff.subsite, args[0], ff.queryFilters())
			if err != nil {
				return err
			}
			return writeBody(cmd.OutOrStdout(), body, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON response")
	return cmd
}
