package catalog

import (
	"fmt"
	"strconv"
)

// QueryFilters carries the caller-supplied query parameters. Values are
// interpolated into the documents verbatim and never validated against the
// server's enumerations; the server is the authority.
type QueryFilters struct {
	Limit               int
	Offset              int
	Currency            string
	ShippingDestination string
	Sort                string
}

const productQueryTmpl = `query Product {
  product(sku: %d, strict: false) {
    sku
    title
    content {
      key
      value {
        ... on ProductContentStringValue {
          stringValue: value
        }
        ... on ProductContentStringListValue {
          stringListValue: value
        }
        ... on ProductContentIntValue {
          intValue: value
        }
        ... on ProductContentIntListValue {
          intListValue: value
        }
        ... on ProductContentRichContentValue {
          richContentValue: value {
            content {
              type
              content
            }
          }
        }
        ... on ProductContentRichContentListValue {
          richContentListValue: value {
            content {
              type
              content
            }
          }
        }
      }
    }
    variants {
      sku
      title
      inStock
      images(limit: 4) {
        original
        thumbnail
      }
    }
  }
}`

const listQueryTmpl = `query ProductList {
  page(path: %s) {
    widgets {
      ... on ProductListWidget {
        productList(input: {
          currency: %s
          shippingDestination: %s
          limit: %d
          offset: %d
          sort: %s
          facets: []
        }) {
          total
          products {
            url
          }
        }
      }
    }
  }
}`

const searchQueryTmpl = `query Search {
  search(
    options: {
      currency: %s
      shippingDestination: %s
      limit: %d
      offset: %d
      sort: %s
      facets: []
    }
    query: %s
  ) {
    total
    products {
      url
    }
  }
}`

// BuildProductQuery returns the full product-detail document for one SKU:
// title, the content union and variants with up to four images each.
func BuildProductQuery(sku int64) string {
	return fmt.Sprintf(productQueryTmpl, sku)
}

// BuildListQuery returns the listing document for a page path. Only product
// URLs are requested; identifiers are recovered from them afterwards. The
// path lands in a string position and is quoted; filter scalars land in enum
// and Int positions unquoted.
func BuildListQuery(path string, f QueryFilters) string {
	return fmt.Sprintf(listQueryTmpl,
		strconv.Quote(path),
		f.Currency, f.ShippingDestination, f.Limit, f.Offset, f.Sort)
}

// BuildSearchQuery returns the search document for a free-text term, with
// the same minimal product selection as BuildListQuery.
func BuildSearchQuery(term string, f QueryFilters) string {
	return fmt.Sprintf(searchQueryTmpl,
		f.Currency, f.ShippingDestination, f.Limit, f.Offset, f.Sort,
		strconv.Quote(term))
}
