package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newIDsCommand(deps Dependencies, ff *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ids <query>",
		Short: "Resolve a search term or a listing URL to product ids",
		Long: `Resolve a query to product ids and print them as a JSON array.

A query starting with http:// or https:// is treated as a category-listing
URL; its host selects the subsite and its path selects the listing page.
Anything else is a free-text search on the configured subsite.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := deps.Catalog.ProductIDs(cmd.Context(), args[0], ff.subsite, ff.queryFilters())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return errors.New("no product ids found")
			}
			out, err := json.Marshal(ids)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
