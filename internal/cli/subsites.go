package cli

import (
	"github.com/spf13/cobra"
)

func newSubsitesCommand(deps Dependencies) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "subsites",
		Short: "List subsite metadata from the Rocinante API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := deps.Catalog.Subsites(cmd.Context())
			if err != nil {
				return err
			}
			return writeBody(cmd.OutOrStdout(), body, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON response")
	return cmd
}
