// README: Builder tests (per-kind endpoint/body contracts and idempotence).
package assistant

import (
	"reflect"
	"strings"
	"testing"

	"voyago/internal/ai"
)

func newTestBuilder() *Builder {
	return NewBuilder("https://upstream.example/v1beta", "gemini-2.0-flash", "imagen-3.0-generate-002")
}

// textBody unwraps the generateContent request from a CallSpec.
func textBody(t *testing.T, spec ai.CallSpec) ai.GenerateContentRequest {
	t.Helper()
	req, ok := spec.Body.(ai.GenerateContentRequest)
	if !ok {
		t.Fatalf("expected GenerateContentRequest body, got %T", spec.Body)
	}
	return req
}

// TestBuildEndpointPerKind verifies that every text kind targets the
// generateContent action and the image kind targets predict.
func TestBuildEndpointPerKind(t *testing.T) {
	b := newTestBuilder()
	for _, kind := range Kinds() {
		spec, err := b.Build(kind, map[string]any{})
		if err != nil {
			t.Fatalf("Build(%s): %v", kind, err)
		}
		want := ":generateContent"
		if kind == KindGenerateImage {
			want = ":predict"
		}
		if !strings.HasSuffix(spec.URL, want) {
			t.Errorf("Build(%s) URL = %q, want suffix %q", kind, spec.URL, want)
		}
	}
}

// TestBuildItinerary checks prompt interpolation and the strict response
// schema on the itinerary kind.
func TestBuildItinerary(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindItinerary, map[string]any{
		"data": map[string]any{
			"cities":             "Paris",
			"country":            "France",
			"duration":           float64(3),
			"num-people":         float64(2),
			"budget":             "Medium",
			"trip-pace":          "Relaxed",
			"accommodation-type": "Hotel",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	req := textBody(t, spec)
	prompt := req.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Paris, France") {
		t.Errorf("prompt missing destination, got: %s", prompt)
	}
	if !strings.Contains(prompt, "3-day") {
		t.Errorf("prompt missing duration, got: %s", prompt)
	}
	if !strings.Contains(prompt, "Central location") {
		t.Errorf("prompt missing location fallback, got: %s", prompt)
	}
	if !strings.Contains(prompt, "N/A") {
		t.Errorf("prompt missing must-see fallback, got: %s", prompt)
	}

	cfg := req.GenerationConfig
	if cfg == nil || cfg.ResponseSchema == nil {
		t.Fatal("itinerary build must set a response schema")
	}
	if cfg.ResponseMIMEType != "application/json" {
		t.Errorf("responseMimeType = %q", cfg.ResponseMIMEType)
	}
	if cfg.Temperature == nil || *cfg.Temperature > 0.5 {
		t.Errorf("expected a low temperature, got %v", cfg.Temperature)
	}

	var hasDays bool
	for _, f := range cfg.ResponseSchema.Required {
		if f == "days" {
			hasDays = true
		}
	}
	if !hasDays {
		t.Errorf("schema required list must include days, got %v", cfg.ResponseSchema.Required)
	}

	crowd := cfg.ResponseSchema.Properties["days"].Items.Properties["activities"].Items.Properties["crowdLevel"]
	if !reflect.DeepEqual(crowd.Enum, []string{"Low", "Moderate", "High"}) {
		t.Errorf("crowdLevel enum = %v", crowd.Enum)
	}
	if req.Tools != nil {
		t.Error("itinerary must not enable search grounding")
	}
}

// TestBuildGrounding verifies which kinds enable the web-search tool.
func TestBuildGrounding(t *testing.T) {
	b := newTestBuilder()
	grounded := map[Kind]bool{
		KindGroundedSearch: true,
		KindContextualQA:   true,
		KindFlights:        true,
		KindCurrency:       true,
		KindItinerary:      false,
		KindPackingList:    false,
	}
	for kind, want := range grounded {
		spec, err := b.Build(kind, map[string]any{})
		if err != nil {
			t.Fatal(err)
		}
		req := textBody(t, spec)
		got := len(req.Tools) == 1 && req.Tools[0].GoogleSearch != nil
		if got != want {
			t.Errorf("Build(%s) grounding = %v, want %v", kind, got, want)
		}
	}
}

func TestBuildCurrencyPrompt(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindCurrency, map[string]any{"amount": float64(100), "from": "USD", "to": "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	prompt := textBody(t, spec).Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "100 USD to EUR") {
		t.Errorf("currency prompt = %q", prompt)
	}
}

func TestBuildGroundedSearchVerbatim(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindGroundedSearch, map[string]any{"query": "best beaches near Lisbon"})
	if err != nil {
		t.Fatal(err)
	}
	if got := textBody(t, spec).Contents[0].Parts[0].Text; got != "best beaches near Lisbon" {
		t.Errorf("query must pass through verbatim, got %q", got)
	}
}

func TestBuildContextualQA(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindContextualQA, map[string]any{"context": "Louvre Museum", "question": "How long is the queue?"})
	if err != nil {
		t.Fatal(err)
	}
	prompt := textBody(t, spec).Contents[0].Parts[0].Text
	want := "Regarding the activity/location Louvre Museum, answer: How long is the queue?"
	if prompt != want {
		t.Errorf("prompt = %q, want %q", prompt, want)
	}
}

func TestBuildFlightsEmphasisInstruction(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindFlights, map[string]any{
		"origin": "TPE", "destination": "CDG",
		"departureDate": "2026-10-01", "returnDate": "2026-10-14",
		"travelers": float64(2), "cabinClass": "economy",
	})
	if err != nil {
		t.Fatal(err)
	}
	prompt := textBody(t, spec).Contents[0].Parts[0].Text
	for _, frag := range []string{"TPE", "CDG", "cheapest", "double asterisks"} {
		if !strings.Contains(prompt, frag) {
			t.Errorf("flights prompt missing %q: %s", frag, prompt)
		}
	}
}

// TestBuildGenerateImage verifies the structurally distinct predict body.
func TestBuildGenerateImage(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindGenerateImage, map[string]any{"prompt": "Eiffel Tower at dawn"})
	if err != nil {
		t.Fatal(err)
	}
	req, ok := spec.Body.(ai.PredictRequest)
	if !ok {
		t.Fatalf("expected PredictRequest body, got %T", spec.Body)
	}
	if len(req.Instances) != 1 || !strings.Contains(req.Instances[0].Prompt, "Eiffel Tower at dawn") {
		t.Errorf("instances = %+v", req.Instances)
	}
	if !strings.Contains(req.Instances[0].Prompt, "photorealistic") {
		t.Errorf("image prompt missing style qualifiers: %s", req.Instances[0].Prompt)
	}
	if req.Parameters.SampleCount != 1 {
		t.Errorf("sampleCount = %d, want 1", req.Parameters.SampleCount)
	}
}

// TestBuildMissingFieldsLenient documents that absent fields interpolate as
// empty text instead of failing.
func TestBuildMissingFieldsLenient(t *testing.T) {
	b := newTestBuilder()
	spec, err := b.Build(KindCurrency, map[string]any{})
	if err != nil {
		t.Fatalf("missing fields must not fail the build: %v", err)
	}
	prompt := textBody(t, spec).Contents[0].Parts[0].Text
	if !strings.HasPrefix(prompt, "Convert   to ") {
		t.Errorf("prompt = %q", prompt)
	}
}

// TestBuildIdempotent verifies two builds of the same input are structurally
// identical (no hidden randomness or state).
func TestBuildIdempotent(t *testing.T) {
	b := newTestBuilder()
	body := map[string]any{
		"data": map[string]any{"cities": "Rome", "country": "Italy", "duration": float64(2)},
	}
	first, err := b.Build(KindItinerary, body)
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Build(KindItinerary, body)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Build is not deterministic")
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	for _, bogus := range []string{"bogus", "", "Itinerary", "generateimage"} {
		if _, err := ParseKind(bogus); err == nil {
			t.Errorf("ParseKind(%q) accepted an unknown kind", bogus)
		}
	}
	for _, kind := range Kinds() {
		if _, err := ParseKind(string(kind)); err != nil {
			t.Errorf("ParseKind(%q): %v", kind, err)
		}
	}
}
