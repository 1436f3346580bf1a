package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Normalization faults. All of them are recoverable: the extraction
// functions return a usable (possibly empty) id slice alongside the
// diagnostic, never a panic.
var (
	ErrMalformedJSON = errors.New("malformed json")
	ErrMissingField  = errors.New("missing field")
	ErrNoListWidget  = errors.New("no product list widget")
)

func missingField(path string) error {
	return fmt.Errorf("%w at %s", ErrMissingField, path)
}

// ProductReference ties an extracted product id to the URL it came from.
// References are built atomically: a URL either yields a complete reference
// or nothing at all.
type ProductReference struct {
	ID        int64
	SourceURL string
}

// Product URLs end in a numeric path segment, e.g.
// "/p/sports-nutrition/impact-whey-protein/10530943/".
var productIDPattern = regexp.MustCompile(`/(\d+)/$`)

// extractRef pulls the trailing-digit product id out of a catalog URL.
// URLs without the trailing segment (or with digits that do not fit an
// int64) yield ok=false and are skipped by the callers.
func extractRef(url string) (ProductReference, bool) {
	m := productIDPattern.FindStringSubmatch(url)
	if m == nil {
		return ProductReference{}, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return ProductReference{}, false
	}
	return ProductReference{ID: id, SourceURL: url}, true
}

// ExtractIDsFromListResponse pulls product ids out of a ProductList
// response. The widget sequence under data.page.widgets is scanned in
// order and the first element whose object carries a productList key wins;
// later matches are ignored. No matching widget reports ErrNoListWidget,
// a body that is not JSON reports ErrMalformedJSON, and absent structure
// at any traversal step reports ErrMissingField naming the path.
func ExtractIDsFromListResponse(body []byte) ([]int64, error) {
	root, err := decodeRoot(body)
	if err != nil {
		return []int64{}, err
	}
	data, err := childObject(root, "data", "data")
	if err != nil {
		return []int64{}, err
	}
	page, err := childObject(data, "page", "data.page")
	if err != nil {
		return []int64{}, err
	}
	widgets, err := childArray(page, "widgets", "data.page.widgets")
	if err != nil {
		return []int64{}, err
	}

	for i, raw := range widgets {
		var widget map[string]json.RawMessage
		if err := json.Unmarshal(raw, &widget); err != nil {
			continue // non-object widgets cannot carry a product list
		}
		listRaw, ok := widget["productList"]
		if !ok {
			continue
		}
		base := fmt.Sprintf("data.page.widgets[%d].productList", i)
		var list map[string]json.RawMessage
		if err := json.Unmarshal(listRaw, &list); err != nil || list == nil {
			return []int64{}, missingField(base + ".products")
		}
		products, err := childArray(list, "products", base+".products")
		if err != nil {
			return []int64{}, err
		}
		return idsFromProducts(products, base+".products")
	}
	return []int64{}, ErrNoListWidget
}

// ExtractIDsFromSearchResponse pulls product ids out of a Search response.
// Same URL rule as the list extraction, without the widget scan: the
// products live flat under data.search.products.
func ExtractIDsFromSearchResponse(body []byte) ([]int64, error) {
	root, err := decodeRoot(body)
	if err != nil {
		return []int64{}, err
	}
	data, err := childObject(root, "data", "data")
	if err != nil {
		return []int64{}, err
	}
	search, err := childObject(data, "search", "data.search")
	if err != nil {
		return []int64{}, err
	}
	products, err := childArray(search, "products", "data.search.products")
	if err != nil {
		return []int64{}, err
	}
	return idsFromProducts(products, "data.search.products")
}

// idsFromProducts applies the trailing-digit rule to each product URL in
// sequence order. A product entry without a usable url field aborts the
// whole extraction (nothing is partially emitted); a URL without a trailing
// digit segment is skipped silently.
func idsFromProducts(products []json.RawMessage, path string) ([]int64, error) {
	ids := make([]int64, 0, len(products))
	for i, raw := range products {
		urlPath := fmt.Sprintf("%s[%d].url", path, i)
		var product map[string]json.RawMessage
		if err := json.Unmarshal(raw, &product); err != nil || product == nil {
			return []int64{}, missingField(urlPath)
		}
		urlRaw, ok := product["url"]
		if !ok {
			return []int64{}, missingField(urlPath)
		}
		var u *string
		if err := json.Unmarshal(urlRaw, &u); err != nil || u == nil {
			return []int64{}, missingField(urlPath)
		}
		if ref, ok := extractRef(*u); ok {
			ids = append(ids, ref.ID)
		}
	}
	return ids, nil
}

// decodeRoot parses the response body into a JSON object. Invalid JSON and
// valid JSON that is not an object are distinct faults: the first is
// ErrMalformedJSON, the second means the data field cannot exist.
func decodeRoot(body []byte) (map[string]json.RawMessage, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		return nil, missingField("data")
	}
	if root == nil { // literal null document
		return nil, missingField("data")
	}
	return root, nil
}

// childObject reads key from obj as a nested JSON object. A missing key, a
// null value and a non-object value all mean the same thing to the caller:
// the structure expected at path is not there.
func childObject(obj map[string]json.RawMessage, key, path string) (map[string]json.RawMessage, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, missingField(path)
	}
	var child map[string]json.RawMessage
	if err := json.Unmarshal(raw, &child); err != nil || child == nil {
		return nil, missingField(path)
	}
	return child, nil
}

// childArray reads key from obj as a JSON array.
func childArray(obj map[string]json.RawMessage, key, path string) ([]json.RawMessage, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, missingField(path)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, missingField(path)
	}
	return items, nil
}
