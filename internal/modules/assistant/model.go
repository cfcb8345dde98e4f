// README: Request kinds, itinerary schema types, and the assistant error taxonomy.
package assistant

import (
	"errors"
	"fmt"
)

// Kind identifies one of the supported proxy operations. The set is closed;
// anything else is rejected before an upstream call is attempted.
type Kind string

const (
	KindItinerary      Kind = "itinerary"
	KindGroundedSearch Kind = "groundedSearch"
	KindContextualQA   Kind = "contextualQa"
	KindFlights        Kind = "flights"
	KindPackingList    Kind = "packingList"
	KindCurrency       Kind = "currency"
	KindGenerateImage  Kind = "generateImage"
)

// Kinds returns every supported kind, in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindItinerary,
		KindGroundedSearch,
		KindContextualQA,
		KindFlights,
		KindPackingList,
		KindCurrency,
		KindGenerateImage,
	}
}

// ParseKind validates a raw request type string.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

var (
	// ErrInvalidKind rejects a request type outside the enumeration.
	ErrInvalidKind = errors.New("unsupported request type")

	// ErrNoAPIKey is returned when the server has no upstream key configured.
	// The text is the client-facing contract message.
	ErrNoAPIKey = errors.New("API key is not configured on the server.")

	// ErrGenerationFailed is returned when the image endpoint responds
	// without any predictions.
	ErrGenerationFailed = errors.New("image generation failed")
)

// MalformedItineraryError reports model output that was not parseable as the
// itinerary schema. RawText is kept for server-side diagnostics and must
// never reach the client.
type MalformedItineraryError struct {
	RawText string
	cause   error
}

func (e *MalformedItineraryError) Error() string {
	return "malformed itinerary output: " + e.cause.Error()
}

func (e *MalformedItineraryError) Unwrap() error {
	return e.cause
}

// ImageResult is the normalized shape for generateImage responses.
type ImageResult struct {
	Base64Image string `json:"base64Image"`
}

// Itinerary is the structured trip plan the text model is asked to produce.
// The dispatcher enforces this shape via the response schema on the upstream
// call and returns the parsed output as-is.
type Itinerary struct {
	Title             string  `json:"title"`
	NumberOfPeople    float64 `json:"numberOfPeople"`
	BudgetTier        string  `json:"budgetTier"`
	CostPerHeadUSD    float64 `json:"costPerHeadUSD"`
	Summary           string  `json:"summary"`
	BestSeasonToVisit string  `json:"bestSeasonToVisit"`
	Days              []Day   `json:"days"`
}

type Day struct {
	Day               float64    `json:"day"`
	Theme             string     `json:"theme"`
	City              string     `json:"city"`
	TransportationTip string     `json:"transportation_tip"`
	FoodSuggestion    string     `json:"foodSuggestion,omitempty"`
	Activities        []Activity `json:"activities"`
}

type Activity struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Details       string  `json:"details"`
	Address       string  `json:"address"`
	ApproxCostUSD float64 `json:"approxCostUSD"`
	CrowdLevel    string  `json:"crowdLevel"`
}
