package horizon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the Horizon GraphQL API and the subsites REST endpoint.
// The GraphQL endpoint is resolved per subsite from endpointFormat, e.g.
// "https://horizon-api.%s/graphql".
type Client struct {
	endpointFormat string
	subsitesURL    string
	http           *http.Client
	log            zerolog.Logger
}

func New(endpointFormat, subsitesURL string, log zerolog.Logger) *Client {
	return &Client{
		endpointFormat: endpointFormat,
		subsitesURL:    subsitesURL,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
		log: log.With().Str("component", "horizon").Logger(),
	}
}

// Endpoint returns the GraphQL endpoint for the given subsite.
func (c *Client) Endpoint(subsite string) string {
	return fmt.Sprintf(c.endpointFormat, subsite)
}

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

// Post executes the query against the subsite's endpoint and returns the raw
// response body. Status codes outside 2xx are transport failures.
func (c *Client) Post(ctx context.Context, subsite, query string) ([]byte, error) {
	reqBody, err := json.Marshal(graphQLRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(subsite), bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("horizon request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read horizon response: %w", err)
	}
	c.log.Debug().
		Str("request_id", requestID).
		Str("subsite", subsite).
		Int("status", resp.StatusCode).
		Int("bytes", len(b)).
		Msg("graphql post")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("horizon non-2xx (%d): %s", resp.StatusCode, string(b))
	}
	return b, nil
}

// Do executes the query and decodes the GraphQL envelope, unmarshalling the
// data payload into out. A protocol-level GraphQL error becomes an error.
func (c *Client) Do(ctx context.Context, subsite, query string, out any) error {
	b, err := c.Post(ctx, subsite, query)
	if err != nil {
		return err
	}

	var envelope graphQLResponse[json.RawMessage]
	if err := json.Unmarshal(b, &envelope); err != nil {
		return fmt.Errorf("decode horizon graphql envelope: %w", err)
	}
	if len(envelope.Errors) > 0 {
		// Keep it human-readable. Detailed mapping can be added later.
		return fmt.Errorf("horizon graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode horizon graphql data: %w", err)
	}
	return nil
}

// Subsites fetches the subsite metadata listing from the REST endpoint.
// The payload is returned verbatim.
func (c *Client) Subsites(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.subsitesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("subsites request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read subsites response: %w", err)
	}
	c.log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(b)).
		Msg("subsites get")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("subsites non-2xx (%d): %s", resp.StatusCode, string(b))
	}
	return b, nil
}
