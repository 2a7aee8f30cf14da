package provider

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// The provider concatenates multi-page tool-call arguments into back-to-back
// bracketed arrays ("...] [..."). Splitting on that boundary can in theory
// cut a legitimate value containing "][", so fragments that stop decoding
// degrade to raw text rather than failing the parse.
var bracketBoundary = regexp.MustCompile(`\]\s*\[`)

// segmentsSchema accepts the documented arguments shape: an array of objects
// whose "text" member, when present, is a string. Anything else is treated
// as an undecodable fragment.
var segmentsSchema = jsonschema.MustCompileString("segments.schema.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"text": {"type": "string"}
		}
	}
}`)

// MergePages reassembles ordered per-page provider responses into one text
// blob, pages joined by newline strictly in input order. That order is the
// positional ordering every downstream extractor relies on. MergePages never
// fails: undecodable input degrades to raw text, absent input to "".
func MergePages(pages []ChatResponse) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = PageText(p)
	}
	return strings.Join(parts, "\n")
}

// PageText recovers the text carried by a single provider response:
// tool-call arguments when present, else plain message content, else "".
func PageText(resp ChatResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		if args := msg.ToolCalls[0].Function.Arguments; args != "" {
			if text := decodeArguments(args); text != "" {
				return text
			}
		}
	}
	return msg.Content
}

// decodeArguments splits concatenated bracketed arrays, re-wraps each
// fragment, and collects the segment texts. A fragment that fails to decode
// or violates the segment shape is kept verbatim.
func decodeArguments(args string) string {
	var parts []string
	for _, chunk := range bracketBoundary.Split(args, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		fragment := chunk
		if !strings.HasPrefix(fragment, "[") {
			fragment = "[" + fragment
		}
		if !strings.HasSuffix(fragment, "]") {
			fragment += "]"
		}
		segs, ok := decodeSegments(fragment)
		if !ok {
			parts = append(parts, chunk)
			continue
		}
		parts = append(parts, segs...)
	}
	return strings.Join(parts, "\n")
}

func decodeSegments(fragment string) ([]string, bool) {
	var v any
	if err := json.Unmarshal([]byte(fragment), &v); err != nil {
		return nil, false
	}
	if err := segmentsSchema.Validate(v); err != nil {
		return nil, false
	}
	arr := v.([]any)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if text, ok := obj["text"].(string); ok {
			out = append(out, text)
		}
	}
	return out, true
}
