// README: Shapes raw upstream JSON into the per-kind result contract.
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"voyago/internal/ai"
)

// Normalize maps the raw upstream response onto the result contract for the
// given kind. Kinds without a dedicated shape pass through unchanged.
func Normalize(kind Kind, raw json.RawMessage) (any, error) {
	switch kind {
	case KindGenerateImage:
		return normalizeImage(raw)
	case KindItinerary:
		return normalizeItinerary(raw)
	default:
		return raw, nil
	}
}

func normalizeImage(raw json.RawMessage) (any, error) {
	var resp ai.PredictResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Predictions) == 0 {
		return nil, ErrGenerationFailed
	}
	return ImageResult{Base64Image: resp.Predictions[0].BytesBase64Encoded}, nil
}

func normalizeItinerary(raw json.RawMessage) (any, error) {
	txt, err := candidateText(raw)
	if err != nil {
		return nil, &MalformedItineraryError{RawText: string(raw), cause: err}
	}

	// JSON mode should already forbid fences, but models occasionally wrap
	// output in ```json blocks anyway.
	txt = stripFences(txt)

	var itinerary any
	if err := json.Unmarshal([]byte(txt), &itinerary); err != nil {
		return nil, &MalformedItineraryError{RawText: txt, cause: err}
	}
	return itinerary, nil
}

// candidateText extracts candidates[0].content.parts[0].text.
func candidateText(raw json.RawMessage) (string, error) {
	var resp ai.GenerateContentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("response contained no candidate text")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a surrounding markdown code block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
