package planner

// FeatureVector is a fixed-order numeric encoding of preference or context
// data. Slot positions are given by the Pref*, Weather* and Events* constants.
type FeatureVector []float64

// At returns slot i, or 0 when the vector is too short.
func (v FeatureVector) At(i int) float64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	return v[i]
}

// Tracked vocabularies. Order defines slot order.
var (
	TrackedActivityTypes = []string{"hiking", "museums", "food", "shopping", "tours"}
	TrackedDietary       = []string{"vegetarian", "vegan", "gluten-free"}
	TrackedFeedback      = []string{"mood", "budget", "environment", "social", "food"}
	TrackedEventKinds    = []string{"music", "arts", "food", "sports", "festival"}
)

// Preference vector layout.
const (
	PrefInterests     = 0 // five interest indicators
	PrefBudgetMin     = 5
	PrefBudgetMax     = 6
	PrefPaceRelaxed   = 7
	PrefPaceBalanced  = 8
	PrefPaceActive    = 9
	PrefAccessibility = 10
	PrefDietary       = 11 // three dietary indicators
	PrefFeedback      = 14 // five feedback scores
	PrefVectorLen     = 19
)

// Weather vector layout.
const (
	WeatherTemperature   = 0
	WeatherPrecipitation = 1
	WeatherSuitability   = 2
	WeatherVectorLen     = 3
)

// Events vector layout.
const (
	EventsCount     = 0
	EventsMeanCost  = 1
	EventsKinds     = 2 // five category indicators
	EventsVectorLen = 7
)

// Neutral is the score of a feedback context with no matching response.
const Neutral = 0.5

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
