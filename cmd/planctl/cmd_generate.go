package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wayfarer/services/planner"
	"wayfarer/services/reservation"
	"wayfarer/services/weather"

	"github.com/spf13/cobra"
)

var generateFlags struct {
	file          string
	reserve       bool
	successRate   float64
	fallbackDelay time.Duration
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an itinerary from a trip fixture",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.file, "file", "f", "", "Trip fixture YAML (required)")
	f.BoolVar(&generateFlags.reserve, "reserve", false, "Run reservations through the simulated fallback")
	f.Float64Var(&generateFlags.successRate, "success-rate", reservation.DefaultFallbackSuccessRate, "Simulated fallback success rate")
	f.DurationVar(&generateFlags.fallbackDelay, "fallback-delay", 0, "Simulated fallback latency")

	_ = generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	fixture, err := loadFixture(generateFlags.file)
	if err != nil {
		return err
	}

	forecast := fixture.forecast()
	if len(forecast) == 0 {
		forecast, err = weather.MockForecast(fixture.Location, fixture.StartDate, fixture.EndDate)
		if err != nil {
			return fmt.Errorf("mock forecast: %w", err)
		}
	}

	itinerary, err := planner.Generate(planner.GenerateRequest{
		Location:  fixture.Location,
		StartDate: fixture.StartDate,
		EndDate:   fixture.EndDate,
		OwnerID:   fixture.UserID,
		Profile:   fixture.profile(),
		Feedback:  fixture.feedback(),
		Forecast:  forecast,
		Events:    fixture.events(),
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	result := planner.PlanResult{Itinerary: itinerary}
	if generateFlags.reserve {
		coordinator := &reservation.Coordinator{
			Primary:  reservation.UnavailablePrimary{},
			Fallback: reservation.NewSimulatedFallbackBooker(generateFlags.successRate, generateFlags.fallbackDelay),
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		result.Reservations = coordinator.ReserveItinerary(ctx, itinerary)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
