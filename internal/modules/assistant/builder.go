// README: Pure per-kind payload construction; maps a request kind onto prompt, schema, tools, and endpoint.
package assistant

import (
	"fmt"
	"strconv"

	"voyago/internal/ai"
)

// itineraryTemperature is kept low to suppress formatting drift in the
// schema-constrained JSON output.
const itineraryTemperature = 0.2

// Builder derives an immutable ai.CallSpec from a typed request. It performs
// no I/O and no validation beyond the kind itself: missing fields interpolate
// as empty text (or the documented fallbacks), matching the product decision
// to keep input handling lenient.
type Builder struct {
	baseURL    string
	textModel  string
	imageModel string
}

func NewBuilder(baseURL, textModel, imageModel string) *Builder {
	return &Builder{baseURL: baseURL, textModel: textModel, imageModel: imageModel}
}

// Build produces exactly one CallSpec per call, deterministically.
func (b *Builder) Build(kind Kind, body map[string]any) (ai.CallSpec, error) {
	switch kind {
	case KindItinerary:
		return b.textSpec(b.itineraryPrompt(body), &ai.GenerationConfig{
			Temperature:      floatPtr(itineraryTemperature),
			ResponseMIMEType: "application/json",
			ResponseSchema:   itinerarySchema(),
		}, false), nil

	case KindGroundedSearch:
		return b.textSpec(text(body, "query"), nil, true), nil

	case KindContextualQA:
		prompt := fmt.Sprintf("Regarding the activity/location %s, answer: %s",
			text(body, "context"), text(body, "question"))
		return b.textSpec(prompt, nil, true), nil

	case KindFlights:
		prompt := fmt.Sprintf(
			"Find the 2-3 cheapest flight options from %s to %s, departing %s and returning %s, for %s traveler(s) in %s class. "+
				"Include airline, route, rough price in USD, and total travel time for each option. "+
				"Wrap every airline name in double asterisks, like **Airline Name**.",
			text(body, "origin"), text(body, "destination"),
			text(body, "departureDate"), text(body, "returnDate"),
			text(body, "travelers"), text(body, "cabinClass"))
		return b.textSpec(prompt, nil, true), nil

	case KindPackingList:
		prompt := fmt.Sprintf(
			"Create a packing list as a markdown bullet list for a trip to %s lasting %s day(s) during %s. "+
				"Planned activities: %s. Group items by category and keep it practical.",
			text(body, "destination"), text(body, "duration"),
			text(body, "season"), text(body, "activities"))
		return b.textSpec(prompt, nil, false), nil

	case KindCurrency:
		prompt := fmt.Sprintf(
			"Convert %s %s to %s using the latest exchange rate. Reply with the converted amount followed by the currency code.",
			text(body, "amount"), text(body, "from"), text(body, "to"))
		return b.textSpec(prompt, nil, true), nil

	case KindGenerateImage:
		prompt := fmt.Sprintf(
			"A beautiful, high-quality, photorealistic travel photograph of %s. Vibrant colors, golden hour lighting, sharp focus, 16:9 aspect ratio.",
			text(body, "prompt"))
		return ai.CallSpec{
			URL: fmt.Sprintf("%s/models/%s:predict", b.baseURL, b.imageModel),
			Body: ai.PredictRequest{
				Instances:  []ai.PredictInstance{{Prompt: prompt}},
				Parameters: ai.PredictParameters{SampleCount: 1},
			},
		}, nil
	}
	return ai.CallSpec{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// textSpec assembles a generateContent call, optionally with web-search
// grounding enabled.
func (b *Builder) textSpec(prompt string, cfg *ai.GenerationConfig, grounded bool) ai.CallSpec {
	req := ai.GenerateContentRequest{
		Contents:         []ai.Content{{Parts: []ai.Part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}
	if grounded {
		req.Tools = []ai.Tool{{GoogleSearch: &ai.GoogleSearch{}}}
	}
	return ai.CallSpec{
		URL:  fmt.Sprintf("%s/models/%s:generateContent", b.baseURL, b.textModel),
		Body: req,
	}
}

func (b *Builder) itineraryPrompt(body map[string]any) string {
	data := submap(body, "data")
	return fmt.Sprintf(
		"Create a detailed %s-day travel itinerary for a trip to %s, %s for %s people. "+
			"Budget tier: %s. Trip pace: %s. Accommodation type: %s, located near %s. "+
			"Must-see requests: %s. "+
			"For every day pick a theme and a city, give a local transportation tip and a food suggestion, "+
			"and list concrete activities with name, type, details, street address, approximate cost per person in USD, "+
			"and expected crowd level (Low, Moderate or High). "+
			"Also estimate the total cost per head in USD and name the best season to visit. "+
			"Respond with JSON matching the provided schema only.",
		text(data, "duration"),
		text(data, "cities"), text(data, "country"),
		text(data, "num-people"),
		text(data, "budget"),
		text(data, "trip-pace"),
		text(data, "accommodation-type"),
		textOr(data, "location", "Central location"),
		textOr(data, "must-see", "N/A"))
}

// itinerarySchema declares the strict output contract the text model must
// follow when planning a trip.
func itinerarySchema() *ai.Schema {
	activity := &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"name":          {Type: ai.TypeString},
			"type":          {Type: ai.TypeString},
			"details":       {Type: ai.TypeString},
			"address":       {Type: ai.TypeString},
			"approxCostUSD": {Type: ai.TypeNumber},
			"crowdLevel":    {Type: ai.TypeString, Enum: []string{"Low", "Moderate", "High"}},
		},
		Required: []string{"name", "type", "details", "address", "approxCostUSD", "crowdLevel"},
	}
	day := &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"day":                {Type: ai.TypeNumber},
			"theme":              {Type: ai.TypeString},
			"city":               {Type: ai.TypeString},
			"transportation_tip": {Type: ai.TypeString},
			"foodSuggestion":     {Type: ai.TypeString},
			"activities":         {Type: ai.TypeArray, Items: activity},
		},
		Required: []string{"day", "theme", "city", "transportation_tip", "activities"},
	}
	return &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"title":             {Type: ai.TypeString},
			"numberOfPeople":    {Type: ai.TypeNumber},
			"budgetTier":        {Type: ai.TypeString},
			"costPerHeadUSD":    {Type: ai.TypeNumber},
			"summary":           {Type: ai.TypeString},
			"bestSeasonToVisit": {Type: ai.TypeString},
			"days":              {Type: ai.TypeArray, Items: day},
		},
		Required: []string{"title", "numberOfPeople", "budgetTier", "costPerHeadUSD", "summary", "bestSeasonToVisit", "days"},
	}
}

// text renders a loosely typed JSON field as prompt text. Absent or
// unsupported values become empty text rather than an error.
func text(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func textOr(m map[string]any, key, fallback string) string {
	if s := text(m, key); s != "" {
		return s
	}
	return fallback
}

func submap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return map[string]any{}
}

func floatPtr(f float64) *float64 {
	return &f
}
