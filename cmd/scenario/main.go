// cmd/scenario/main.go

// scenario runs the predefined season-stress suite against a simulated
// course and prints the results as JSON.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"fairlinks/pkg/scenario"
)

func main() {
	engine := scenario.NewEngine(nil)
	engine.RegisterExperiments()

	results, err := engine.RunAll(context.Background())
	if err != nil {
		log.Fatalf("scenario suite failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Fatalf("encode results: %v", err)
	}

	for _, res := range results {
		if !res.HypothesisHeld {
			log.Fatalf("hypothesis failed: %s", res.ExperimentName)
		}
	}
}
