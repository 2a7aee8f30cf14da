package provider

import "context"

// PageImage is one rasterized document page, ready to embed in a provider
// request.
type PageImage struct {
	Base64   string
	MIMEType string
}

// PageImageSource supplies the ordered page images for a document. Document
// fetching and PDF rasterization live behind this interface; the pipeline
// only consumes the ordered result.
type PageImageSource interface {
	Pages(ctx context.Context, documentURL string) ([]PageImage, error)
}

// PageExtractor sends page images to the extraction provider, one request
// per page, strictly in page order. Any transport failure is fatal for the
// whole parse request. documentURL is advisory (mock variant selection).
type PageExtractor interface {
	ExtractPages(ctx context.Context, documentURL string, pages []PageImage) ([]ChatResponse, error)
}

// ChatResponse mirrors the provider's chat/completions response shape. The
// page text rides in choices[0].message.tool_calls[0].function.arguments as
// a JSON-encoded segment array, or in message.content for plain responses.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message Message `json:"message"`
}

type Message struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

type ToolCall struct {
	Function FunctionCall `json:"function"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}
