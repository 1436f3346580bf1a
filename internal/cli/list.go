package cli

import (
	"github.com/spf13/cobra"
)

func newListCommand(deps Dependencies, ff *filterFlags) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "Fetch a category listing page and print the raw response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := deps.Catalog.ListRaw(cmd.Context(), ff.subsite, args[0], ff.queryFilters())
			if err != nil {
				return err
			}
			return writeBody(cmd.OutOrStdout(), body, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON response")
	return cmd
}
