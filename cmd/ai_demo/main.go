// README: Manual smoke tool; sends one request of a chosen kind through the real dispatcher stack.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"voyago/internal/ai"
	"voyago/internal/config"
	"voyago/internal/modules/assistant"
)

func main() {
	kindFlag := flag.String("kind", "currency", "request kind to exercise")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	kind, err := assistant.ParseKind(*kindFlag)
	if err != nil {
		log.Fatal(err)
	}

	builder := assistant.NewBuilder(cfg.AI.BaseURL, cfg.AI.TextModel, cfg.AI.ImageModel)
	svc := assistant.NewService(apiKey, builder, ai.NewClient(apiKey), nil)

	result, err := svc.Handle(context.Background(), kind, sampleBody(kind))
	if err != nil {
		log.Fatalf("dispatch failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

// sampleBody returns a representative request body for each kind.
func sampleBody(kind assistant.Kind) map[string]any {
	switch kind {
	case assistant.KindItinerary:
		return map[string]any{
			"data": map[string]any{
				"cities":             "Lisbon",
				"country":            "Portugal",
				"duration":           3,
				"num-people":         2,
				"budget":             "Medium",
				"trip-pace":          "Relaxed",
				"accommodation-type": "Hotel",
			},
		}
	case assistant.KindGroundedSearch:
		return map[string]any{"query": "Best time to see cherry blossoms in Kyoto"}
	case assistant.KindContextualQA:
		return map[string]any{"context": "Alfama district, Lisbon", "question": "Is it walkable at night?"}
	case assistant.KindFlights:
		return map[string]any{
			"origin": "TPE", "destination": "LIS",
			"departureDate": "2026-10-01", "returnDate": "2026-10-14",
			"travelers": 2, "cabinClass": "economy",
		}
	case assistant.KindPackingList:
		return map[string]any{"destination": "Lisbon", "duration": 3, "season": "autumn", "activities": "walking, beaches"}
	case assistant.KindGenerateImage:
		return map[string]any{"prompt": "the Alfama district of Lisbon at sunset"}
	default:
		return map[string]any{"amount": 100, "from": "USD", "to": "EUR"}
	}
}
