package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidInput marks a listing URL without a usable subsite or path.
var ErrInvalidInput = errors.New("invalid input")

// InputKind discriminates the two ways a caller can point at products.
type InputKind int

const (
	// SearchTerm is free text forwarded to the search operation.
	SearchTerm InputKind = iota
	// ListingURL is a category-listing URL carrying its own subsite and path.
	ListingURL
)

// Input is the classified form of a raw query argument.
type Input struct {
	Kind        InputKind
	Subsite     string
	ListingPath string // canonical form, no leading or trailing slash
	Term        string
}

// ClassifyInput decides whether raw is a listing URL or a search term.
// Only the exact http:// and https:// prefixes mark a URL; the check is
// case-sensitive and nothing else about the string is validated, so
// anything without the prefix is a verbatim search term on defaultSubsite.
func ClassifyInput(raw, defaultSubsite string) (Input, error) {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return Input{Kind: SearchTerm, Subsite: defaultSubsite, Term: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	path := u.Path
	// Category URLs carry a /c prefix that is not part of the page path.
	if strings.HasPrefix(path, "/c/") {
		path = path[2:]
	}
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimPrefix(path, "/")

	if u.Host == "" || path == "" {
		return Input{}, fmt.Errorf("%w: url must include both domain and path", ErrInvalidInput)
	}

	return Input{Kind: ListingURL, Subsite: u.Host, ListingPath: path}, nil
}
