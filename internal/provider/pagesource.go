package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ImageDocumentSource fetches a document over HTTP and serves it as a single
// page image. PDF rasterization (one image per page) belongs to an external
// page supplier implementing PageImageSource; this source covers documents
// that already are images.
type ImageDocumentSource struct {
	httpClient *http.Client
	log        *slog.Logger
}

func NewImageDocumentSource(timeout time.Duration, logger *slog.Logger) *ImageDocumentSource {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ImageDocumentSource{
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

// Pages downloads documentURL and returns it as one page. Non-2xx statuses
// and connection failures are fatal for the parse request.
func (s *ImageDocumentSource) Pages(ctx context.Context, documentURL string) ([]PageImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			s.log.Warn("pagesource.body_close_error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch document: non-2xx status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document body: %w", err)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}

	s.log.Info("pagesource.fetched",
		"document_url", documentURL, "bytes", len(data), "mime", mime)

	return []PageImage{{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MIMEType: mime,
	}}, nil
}
