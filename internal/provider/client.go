package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// toolName selects the provider's markdown extraction tool.
const toolName = "markdown_no_bbox"

// Config holds provider connection settings. An empty Endpoint selects mock
// mode: deterministic sample pages instead of network calls.
type Config struct {
	Endpoint string
	ModelID  string
	APIKey   string
	Timeout  time.Duration // per page call
}

// Client implements PageExtractor against an OpenAI-style chat/completions
// endpoint. The provider accepts at most one image per request, so pages are
// sent one at a time, strictly in page order; each call completes (or fails)
// before the next begins.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// MockMode reports whether no real endpoint is configured.
func (c *Client) MockMode() bool { return c.cfg.Endpoint == "" }

// ExtractPages sends each page to the provider and returns the raw responses
// in page order. Any transport failure (connection error, timeout, non-2xx)
// aborts the remaining pages and is fatal for the parse request; no retries.
func (c *Client) ExtractPages(ctx context.Context, documentURL string, pages []PageImage) ([]ChatResponse, error) {
	if c.MockMode() {
		c.log.Info("provider.mock", "document_url", documentURL, "pages", len(pages))
		return SamplePageResponses(documentURL), nil
	}

	url := strings.TrimRight(c.cfg.Endpoint, "/") + "/chat/completions"
	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	responses := make([]ChatResponse, 0, len(pages))
	for i, pg := range pages {
		c.log.Info("provider.page.request",
			"page", i+1, "pages", len(pages), "model", c.cfg.ModelID)

		resp, err := c.callPage(ctx, url, headers, pg)
		if err != nil {
			return nil, fmt.Errorf("provider page %d/%d: %w", i+1, len(pages), err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (c *Client) callPage(ctx context.Context, url string, headers map[string]string, pg PageImage) (ChatResponse, error) {
	imgTag := fmt.Sprintf(`<img src="data:%s;base64,%s" />`, pg.MIMEType, pg.Base64)
	payload := map[string]any{
		"model": c.cfg.ModelID,
		"messages": []map[string]any{
			{"role": "user", "content": imgTag},
		},
		"tools": []map[string]any{
			{"type": "function", "function": map[string]any{"name": toolName}},
		},
		"tool_choice": map[string]any{
			"type": "function", "function": map[string]any{"name": toolName},
		},
		"max_tokens": 8192,
	}

	raw, _, err := SendJSON(ctx, c.httpClient, url, payload, headers, c.log)
	if err != nil {
		return ChatResponse{}, err
	}

	var resp ChatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ChatResponse{}, fmt.Errorf("decode provider response: %w", err)
	}
	return resp, nil
}
