package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagesMockMode(t *testing.T) {
	c := NewClient(Config{}, nil)
	require.True(t, c.MockMode())

	responses, err := c.ExtractPages(context.Background(), "sample://invoice", []PageImage{{}, {}})
	require.NoError(t, err)
	assert.Len(t, responses, 2)
}

func TestExtractPagesSequentialOrder(t *testing.T) {
	var mu sync.Mutex
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		mu.Lock()
		bodies = append(bodies, payload.Messages[0].Content)
		mu.Unlock()

		resp := argsResponse(`[{"text": "page text"}]`)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, ModelID: "nvidia/nemotron-parse"}, nil)
	require.False(t, c.MockMode())

	pages := []PageImage{
		{Base64: "QUFB", MIMEType: "image/png"},
		{Base64: "QkJC", MIMEType: "image/png"},
	}
	responses, err := c.ExtractPages(context.Background(), "https://example.com/doc.png", pages)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	// One request per page, in page order.
	require.Len(t, bodies, 2)
	assert.Contains(t, bodies[0], "QUFB")
	assert.Contains(t, bodies[1], "QkJC")
}

func TestExtractPagesTransportFailureIsFatal(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "upstream busy", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, ModelID: "nvidia/nemotron-parse"}, nil)

	responses, err := c.ExtractPages(context.Background(), "https://example.com/doc.png",
		[]PageImage{{Base64: "QQ==", MIMEType: "image/png"}, {Base64: "Qg==", MIMEType: "image/png"}})
	require.Error(t, err)
	assert.Nil(t, responses)
	assert.Contains(t, err.Error(), "provider page 1/2")
	// No retry, no second page after a failure.
	assert.Equal(t, 1, calls)
}

func TestExtractPagesAuthorizationHeader(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("ok")))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, ModelID: "m", APIKey: "secret-key"}, nil)
	_, err := c.ExtractPages(context.Background(), "u", []PageImage{{Base64: "QQ==", MIMEType: "image/png"}})
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", auth)
}
