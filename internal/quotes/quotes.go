package quotes

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

// Quote is one inspirational text/author pair.
type Quote struct {
	Text   string
	Author string
}

// Source supplies a pool of inspirational quotes. Fetch never fails and
// never returns fewer than n quotes: when the external provider is
// unreachable or comes up short, the remainder is filled from the
// built-in fallback list.
type Source interface {
	Fetch(ctx context.Context, n int) []Quote
}

// DefaultEndpoint is the ZenQuotes bulk endpoint.
const DefaultEndpoint = "https://zenquotes.io/api/quotes"

// HTTPSource fetches quotes from a ZenQuotes-shaped HTTP API.
type HTTPSource struct {
	endpoint string
	http     *http.Client
}

// NewHTTPSource creates an HTTPSource for the given endpoint. An empty
// endpoint selects the default provider; SOFTSEASON_QUOTES_ENDPOINT
// overrides it.
func NewHTTPSource(endpoint string) *HTTPSource {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if v := os.Getenv("SOFTSEASON_QUOTES_ENDPOINT"); v != "" {
		endpoint = v
	}
	return &HTTPSource{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// providerQuote is one entry in the provider's response array.
type providerQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

func (s *HTTPSource) Fetch(ctx context.Context, n int) []Quote {
	fetched := s.fetchProvider(ctx, n)
	return padWithFallback(fetched, n)
}

func (s *HTTPSource) fetchProvider(ctx context.Context, n int) []Quote {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var raw []providerQuote
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	quotes := make([]Quote, 0, len(raw))
	for _, q := range raw {
		if q.Q == "" {
			continue
		}
		quotes = append(quotes, Quote{Text: q.Q, Author: q.A})
		if len(quotes) == n {
			break
		}
	}
	return quotes
}

// padWithFallback tops quotes up to n entries from the fallback list,
// cycling when n exceeds the list length.
func padWithFallback(quotes []Quote, n int) []Quote {
	for i := 0; len(quotes) < n; i++ {
		quotes = append(quotes, fallbackQuotes[i%len(fallbackQuotes)])
	}
	return quotes[:n]
}

// FallbackSource serves only the built-in list. Useful for tests and
// offline runs.
type FallbackSource struct{}

func (FallbackSource) Fetch(_ context.Context, n int) []Quote {
	return padWithFallback(nil, n)
}
