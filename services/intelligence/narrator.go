package intelligence

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/models"

	"go.uber.org/zap"
)

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SummaryCache stores narratives keyed by itinerary content.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, summary string) error
}

// Narrator writes itinerary summaries. Without a generator it falls back to
// a plain template.
type Narrator struct {
	Generator TextGenerator
	Cache     SummaryCache
	Logger    *zap.Logger
}

func (n *Narrator) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Narrator) Summarize(ctx context.Context, it *models.Itinerary) (string, error) {
	if n.Generator == nil {
		return LocalSummary(it), nil
	}

	key := contentKey(it)
	if n.Cache != nil {
		cached, err := n.Cache.Get(ctx, key)
		if err != nil {
			n.logger().Warn("summary cache read failed", zap.Error(err))
		} else if cached != "" {
			return cached, nil
		}
	}

	summary, err := n.Generator.GenerateContent(ctx, BuildPrompt(it))
	if err != nil {
		return "", err
	}
	if summary == "" {
		return LocalSummary(it), nil
	}

	if n.Cache != nil {
		if err := n.Cache.Set(ctx, key, summary); err != nil {
			n.logger().Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

// BuildPrompt renders the itinerary as a compact day-by-day outline.
func BuildPrompt(it *models.Itinerary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a friendly two or three sentence overview of this %d-day trip to %s. ", len(it.Days), it.Location)
	sb.WriteString("Mention the weather where it shapes the plan. Do not invent activities.\n")
	for _, day := range it.Days {
		fmt.Fprintf(&sb, "%s (%s, %.0fF):", day.Date, day.Weather.Condition, day.Weather.Temperature)
		names := make([]string, 0, len(day.Activities))
		for _, a := range day.Activities {
			names = append(names, a.StartTime+" "+a.Name)
		}
		sb.WriteString(" " + strings.Join(names, "; ") + "\n")
	}
	fmt.Fprintf(&sb, "Estimated total cost: $%.2f\n", it.TotalCost)
	return sb.String()
}

// LocalSummary is the template narrative used when no model is configured.
func LocalSummary(it *models.Itinerary) string {
	outdoor, booked := 0, 0
	for _, day := range it.Days {
		for _, a := range day.Activities {
			if a.WeatherDependent {
				outdoor++
			}
			if a.ReservationRequired {
				booked++
			}
		}
	}
	days := "days"
	if len(it.Days) == 1 {
		days = "day"
	}
	return fmt.Sprintf("%d %s in %s with %d outdoor outings and %d reservable stops, estimated at $%.2f.",
		len(it.Days), days, it.Location, outdoor, booked, it.TotalCost)
}
