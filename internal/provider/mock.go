package provider

import (
	"context"
	"encoding/json"
	"strings"
)

// Deterministic sample pages matching the demo invoices. Mock mode replays
// these as real provider responses so the whole merge/extract path is
// exercised without network access.

const cleanPage1 = `# Alpine Office Supplies
123 Mountain View Road, Denver, CO 80202
Phone: (303) 555-0142

# INVOICE

Invoice #: INV-1041
Date: 2025-11-14
Due Date: 2025-12-14
Terms: Net 30

Bill To:
Contoso Ltd.
One Microsoft Way, Redmond, WA 98052

\begin{tabular}{lrrr}
Description & Qty & Unit Price & Amount\\
Copy Paper A4 (Case) & 2 & $10.00 & $20.00\\
Ink Cartridge Black & 1 & $35.00 & $35.00\\
Desk Organizer & 1 & $42.00 & $42.00\\
\end{tabular}

CONTINUED ON NEXT PAGE...`

const cleanPage2 = `\begin{tabular}{lrrr}
Description & Qty & Unit Price & Amount\\
Wireless Mouse & 1 & $45.00 & $45.00\\
USB-C Hub & 1 & $55.00 & $55.00\\
\end{tabular}

Subtotal: $197.00
Tax (8%): $15.76
TOTAL: $212.76`

const anomalyPage1 = `# Alpine Office Supplies
123 Mountain View Road, Denver, CO 80202
Phone: (303) 555-0142

# INVOICE

Invoice #: INV-1042
Date: 2025-11-15
Due Date: 2025-12-15
Terms: Net 30

Bill To:
Contoso Ltd.
One Microsoft Way, Redmond, WA 98052

\begin{tabular}{lrrr}
Description & Qty & Unit Price & Amount\\
Copy Paper A4 (Case) & 2 & $10.00 & $20.00\\
Ink Cartridge Black & 1 & $35.00 & $35.00\\
Desk Organizer & 1 & $42.00 & $42.00\\
\end{tabular}

CONTINUED ON NEXT PAGE...`

// The anomaly variant carries a deliberately wrong subtotal (real sum is
// 392.00) and an outlier unit price.
const anomalyPage2 = `\begin{tabular}{lrrr}
Description & Qty & Unit Price & Amount\\
Wireless Mouse & 1 & $45.00 & $45.00\\
Premium Support & 1 & $250.00 & $250.00\\
\end{tabular}

Subtotal: $412.00
Tax (8%): $32.96
TOTAL: $444.96`

// SamplePageResponses returns canned provider responses for documentURL.
// URLs containing "anomaly" get the mismatch/outlier variant.
func SamplePageResponses(documentURL string) []ChatResponse {
	pages := []string{cleanPage1, cleanPage2}
	if strings.Contains(strings.ToLower(documentURL), "anomaly") {
		pages = []string{anomalyPage1, anomalyPage2}
	}
	out := make([]ChatResponse, len(pages))
	for i, text := range pages {
		out[i] = toolCallResponse(text)
	}
	return out
}

func toolCallResponse(text string) ChatResponse {
	args, _ := json.Marshal([]map[string]string{{"text": text}})
	return ChatResponse{Choices: []Choice{{Message: Message{
		ToolCalls: []ToolCall{{Function: FunctionCall{
			Name:      toolName,
			Arguments: string(args),
		}}},
	}}}}
}

// MockSource is a PageImageSource for mock mode: it emits placeholder pages
// without touching the network.
type MockSource struct{}

func (MockSource) Pages(_ context.Context, _ string) ([]PageImage, error) {
	return []PageImage{
		{MIMEType: "image/png"},
		{MIMEType: "image/png"},
	}, nil
}
