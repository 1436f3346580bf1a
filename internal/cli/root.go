package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"horizon-cli/internal/app/catalog"
	"horizon-cli/internal/config"
)

// Catalog is the surface the commands need from the service layer.
// *catalog.Service implements this interface automatically (structural
// typing). Defining it here allows tests to inject a lightweight mock
// without touching the real Horizon HTTP client.
type Catalog interface {
	ProductIDs(ctx context.Context, input, subsite string, f catalog.QueryFilters) ([]int64, error)
	SearchRaw(ctx context.Context, subsite, term string, f catalog.QueryFilters) ([]byte, error)
	ListRaw(ctx context.Context, subsite, path string, f catalog.QueryFilters) ([]byte, error)
	ProductRaw(ctx context.Context, subsite string, sku int64) ([]byte, error)
	Product(ctx context.Context, subsite string, sku int64) (catalog.ProductDetail, error)
	Subsites(ctx context.Context) ([]byte, error)
}

// Dependencies carries everything the command tree is built from.
type Dependencies struct {
	Catalog        Catalog
	DefaultSubsite string
	Defaults       config.Defaults
}

// filterFlags holds the persistent query flags shared by every subcommand.
type filterFlags struct {
	subsite  string
	limit    int
	offset   int
	currency string
	shipping string
	sort     string
}

func (ff *filterFlags) queryFilters() catalog.QueryFilters {
	return catalog.QueryFilters{
		Limit:               ff.limit,
		Offset:              ff.offset,
		Currency:            ff.currency,
		ShippingDestination: ff.shipping,
		Sort:                ff.sort,
	}
}

var errNoCommand = errors.New("no command given")

// NewRootCommand builds the horizon command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	ff := &filterFlags{}

	root := &cobra.Command{
		Use:           "horizon",
		Short:         "Client for the Horizon catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errNoCommand
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ff.subsite, "subsite", deps.DefaultSubsite, "storefront subsite to query")
	pf.IntVar(&ff.limit, "limit", deps.Defaults.Limit, "maximum number of results")
	pf.IntVar(&ff.offset, "offset", deps.Defaults.Offset, "result offset")
	pf.StringVar(&ff.currency, "currency", deps.Defaults.Currency, "currency code")
	pf.StringVar(&ff.shipping, "shipping", deps.Defaults.ShippingDestination, "shipping destination country code")
	pf.StringVar(&ff.sort, "sort", deps.Defaults.Sort, "result sort order")

	root.AddCommand(
		newIDsCommand(deps, ff),
		newProductCommand(deps, ff),
		newSearchCommand(deps, ff),
		newListCommand(deps, ff),
		newSubsitesCommand(deps),
	)
	return root
}

// writeBody prints a raw API response, indented when pretty is set. Bodies
// that are not valid JSON are passed through untouched.
func writeBody(w io.Writer, body []byte, pretty bool) error {
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err == nil {
			body = buf.Bytes()
		}
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	if len(body) == 0 || body[len(body)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
