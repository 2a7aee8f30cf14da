package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textResponse(content string) ChatResponse {
	return ChatResponse{Choices: []Choice{{Message: Message{Content: content}}}}
}

func argsResponse(args string) ChatResponse {
	return ChatResponse{Choices: []Choice{{Message: Message{
		ToolCalls: []ToolCall{{Function: FunctionCall{Name: toolName, Arguments: args}}},
	}}}}
}

func TestMergePagesPreservesOrder(t *testing.T) {
	merged := MergePages([]ChatResponse{
		argsResponse(`[{"text": "first page"}]`),
		argsResponse(`[{"text": "second page"}]`),
		argsResponse(`[{"text": "third page"}]`),
	})
	assert.Equal(t, "first page\nsecond page\nthird page", merged)
}

func TestMergePagesEmptyInput(t *testing.T) {
	assert.Equal(t, "", MergePages(nil))
}

func TestPageTextSplitsConcatenatedArrays(t *testing.T) {
	resp := argsResponse(`[{"text": "part one"}] [{"text": "part two"}]`)
	assert.Equal(t, "part one\npart two", PageText(resp))
}

func TestPageTextMultipleSegmentsInOneArray(t *testing.T) {
	resp := argsResponse(`[{"text": "alpha"}, {"text": "beta"}]`)
	assert.Equal(t, "alpha\nbeta", PageText(resp))
}

func TestPageTextDegradesToRawOnInvalidJSON(t *testing.T) {
	resp := argsResponse(`not json at all`)
	assert.Equal(t, "not json at all", PageText(resp))
}

func TestPageTextDegradesToRawOnSchemaViolation(t *testing.T) {
	// "text" must be a string; a number violates the segment shape and the
	// fragment is kept verbatim.
	resp := argsResponse(`[{"text": 5}]`)
	assert.Equal(t, `[{"text": 5}]`, PageText(resp))
}

func TestPageTextMixedValidAndInvalidFragments(t *testing.T) {
	resp := argsResponse(`[{"text": "good"}] [broken`)
	assert.Equal(t, "good\nbroken", PageText(resp))
}

func TestPageTextFallsBackToContent(t *testing.T) {
	assert.Equal(t, "plain body", PageText(textResponse("plain body")))
}

func TestPageTextEmptyResponse(t *testing.T) {
	assert.Equal(t, "", PageText(ChatResponse{}))
}

func TestPageTextIgnoresNonTextMembers(t *testing.T) {
	resp := argsResponse(`[{"text": "kept", "bbox": {"x": 0.1}}, {"note": "no text"}]`)
	assert.Equal(t, "kept", PageText(resp))
}

func TestSamplePageResponsesVariants(t *testing.T) {
	clean := MergePages(SamplePageResponses("https://docs.example.com/inv.png"))
	require.Contains(t, clean, "INV-1041")
	assert.Contains(t, clean, "Subtotal: $197.00")

	anomalous := MergePages(SamplePageResponses("https://docs.example.com/anomaly.png"))
	require.Contains(t, anomalous, "INV-1042")
	assert.Contains(t, anomalous, "Premium Support")
}
