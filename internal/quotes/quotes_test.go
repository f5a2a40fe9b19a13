package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_ProviderSupplies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"q":"Quote one.","a":"Author One"},{"q":"Quote two.","a":"Author Two"}]`)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL)
	got := src.Fetch(context.Background(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Quote one.", got[0].Text)
	assert.Equal(t, "Author Two", got[1].Author)
}

func TestHTTPSource_PadsShortProviderResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"q":"Only one.","a":"Someone"}]`)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL)
	got := src.Fetch(context.Background(), 25)
	require.Len(t, got, 25)
	assert.Equal(t, "Only one.", got[0].Text)
	for _, q := range got {
		assert.NotEmpty(t, q.Text)
	}
}

func TestHTTPSource_ProviderDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL)
	got := src.Fetch(context.Background(), 25)
	require.Len(t, got, 25, "fallback must always fill the request")
	for _, q := range got {
		assert.NotEmpty(t, q.Text)
	}
}

func TestHTTPSource_SkipsBlankQuotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"q":"","a":"Nobody"},{"q":"Real.","a":"Someone"}]`)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL)
	got := src.Fetch(context.Background(), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Real.", got[0].Text)
}

func TestFallbackSource_CyclesPastListLength(t *testing.T) {
	got := FallbackSource{}.Fetch(context.Background(), 40)
	require.Len(t, got, 40)
	assert.Equal(t, got[0], got[len(fallbackQuotes)], "list cycles once exhausted")
}

func TestFetch_EndpointOverrideEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"q":"From env.","a":"Env"}]`)
	}))
	defer server.Close()

	t.Setenv("SOFTSEASON_QUOTES_ENDPOINT", server.URL)
	src := NewHTTPSource("")
	got := src.Fetch(context.Background(), 1)
	require.Len(t, got, 1)
	assert.Equal(t, "From env.", got[0].Text)
}
