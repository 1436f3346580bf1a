package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"horizon-cli/internal/app/catalog"
)

func newProductCommand(deps Dependencies, ff *filterFlags) *cobra.Command {
	var pretty, summary bool

	cmd := &cobra.Command{
		Use:   "product <sku>",
		Short: "Fetch full product detail for one SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sku %q", args[0])
			}
			if summary {
				detail, err := deps.Catalog.Product(cmd.Context(), ff.subsite, sku)
				if err != nil {
					return err
				}
				return writeSummary(cmd.OutOrStdout(), detail)
			}
			body, err := deps.Catalog.ProductRaw(cmd.Context(), ff.subsite, sku)
			if err != nil {
				return err
			}
			return writeBody(cmd.OutOrStdout(), body, pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON response")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a decoded summary instead of raw JSON")
	return cmd
}

// writeSummary renders the decoded product: a header line, the content
// fields and one row per variant.
func writeSummary(w io.Writer, d catalog.ProductDetail) error {
	fmt.Fprintf(w, "%d  %s\n\n", d.SKU, d.Title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range d.Content {
		fmt.Fprintf(tw, "%s\t%s\n", f.Key, renderContentValue(f.Value))
	}
	if len(d.Content) > 0 {
		fmt.Fprintln(tw)
	}
	fmt.Fprintln(tw, "VARIANT\tTITLE\tIN STOCK\tIMAGES")
	for _, v := range d.Variants {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%d\n", v.SKU, v.Title, v.InStock, len(v.Images))
	}
	return tw.Flush()
}

func renderContentValue(v catalog.ContentValue) string {
	switch v := v.(type) {
	case catalog.StringValue:
		return string(v)
	case catalog.StringListValue:
		return strings.Join(v, ", ")
	case catalog.IntValue:
		return strconv.FormatInt(int64(v), 10)
	case catalog.IntListValue:
		parts := make([]string, 0, len(v))
		for _, n := range v {
			parts = append(parts, strconv.FormatInt(n, 10))
		}
		return strings.Join(parts, ", ")
	case catalog.RichContentValue:
		return renderRichContent(catalog.RichContent(v))
	case catalog.RichContentListValue:
		parts := make([]string, 0, len(v))
		for _, rc := range v {
			parts = append(parts, renderRichContent(rc))
		}
		return strings.Join(parts, " | ")
	}
	return ""
}

func renderRichContent(rc catalog.RichContent) string {
	parts := make([]string, 0, len(rc.Blocks))
	for _, b := range rc.Blocks {
		parts = append(parts, b.Content)
	}
	return strings.Join(parts, " ")
}
