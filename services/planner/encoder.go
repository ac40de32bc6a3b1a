package planner

import (
	"strings"

	"wayfarer/models"
)

type keywordPoles struct {
	positive []string
	negative []string
}

// feedbackKeywords maps each tracked context to the keywords of its 1.0 and
// 0.0 poles. Positive keywords are checked first.
var feedbackKeywords = map[string]keywordPoles{
	models.FeedbackMood: {
		positive: []string{"excited", "happy", "energetic", "great", "adventurous"},
		negative: []string{"tired", "stressed", "exhausted", "sad", "bored"},
	},
	// 1.0 means budget-sensitive.
	models.FeedbackBudget: {
		positive: []string{"cheap", "save", "saving", "affordable", "tight"},
		negative: []string{"splurge", "luxury", "treat", "expensive", "premium"},
	},
	// 1.0 means outdoor.
	models.FeedbackEnvironment: {
		positive: []string{"outdoor", "outside", "nature", "hike", "park", "fresh air"},
		negative: []string{"indoor", "inside", "museum", "gallery"},
	},
	models.FeedbackSocial: {
		positive: []string{"group", "friends", "social", "people", "meet"},
		negative: []string{"alone", "solo", "quiet", "private"},
	},
	// 1.0 means adventurous eater.
	models.FeedbackFood: {
		positive: []string{"adventurous", "exotic", "new", "local", "street food"},
		negative: []string{"familiar", "simple", "plain", "picky"},
	},
}

var feedbackAliases = map[string]string{
	"budget-sensitivity":   models.FeedbackBudget,
	"indoor/outdoor":       models.FeedbackEnvironment,
	"indoor-outdoor":       models.FeedbackEnvironment,
	"food-adventurousness": models.FeedbackFood,
}

func normalizeContext(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if alias, ok := feedbackAliases[tag]; ok {
		return alias
	}
	return tag
}

func normalizeDietary(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// EncodePreferences turns a profile and feedback set into a PrefVectorLen
// vector. It fails only when the budget range is inverted.
func EncodePreferences(profile models.PreferenceProfile, feedback models.FeedbackSet) (FeatureVector, error) {
	if profile.Budget.Min > profile.Budget.Max {
		return nil, newPlanningError(ErrInvalidProfile, "budget min %.2f exceeds max %.2f", profile.Budget.Min, profile.Budget.Max)
	}

	v := make(FeatureVector, PrefVectorLen)

	interests := make(map[string]bool, len(profile.ActivityTypes))
	for _, t := range profile.ActivityTypes {
		interests[strings.ToLower(strings.TrimSpace(t))] = true
	}
	for i, t := range TrackedActivityTypes {
		v[PrefInterests+i] = indicator(interests[t])
	}

	v[PrefBudgetMin] = clamp01(profile.Budget.Min / 1000)
	v[PrefBudgetMax] = clamp01(profile.Budget.Max / 1000)

	switch models.TravelPace(strings.ToLower(string(profile.Pace))) {
	case models.PaceRelaxed:
		v[PrefPaceRelaxed] = 1
	case models.PaceActive:
		v[PrefPaceActive] = 1
	default:
		v[PrefPaceBalanced] = 1
	}

	v[PrefAccessibility] = indicator(profile.Accessibility)

	diets := make(map[string]bool, len(profile.DietaryRestrictions))
	for _, d := range profile.DietaryRestrictions {
		diets[normalizeDietary(d)] = true
	}
	for i, d := range TrackedDietary {
		v[PrefDietary+i] = indicator(diets[d])
	}

	latest := latestByContext(feedback)
	for i, tag := range TrackedFeedback {
		resp, ok := latest[tag]
		if !ok {
			v[PrefFeedback+i] = Neutral
			continue
		}
		v[PrefFeedback+i] = classifyFeedback(tag, resp.Response)
	}
	return v, nil
}

// latestByContext keeps the newest response per context. Equal timestamps
// resolve to the greatest question ID so the result never depends on map
// iteration order.
func latestByContext(feedback models.FeedbackSet) map[string]models.FeedbackResponse {
	latest := make(map[string]models.FeedbackResponse)
	for qid, resp := range feedback {
		if resp.QuestionID == "" {
			resp.QuestionID = qid
		}
		tag := normalizeContext(resp.Context)
		if _, tracked := feedbackKeywords[tag]; !tracked {
			continue
		}
		cur, seen := latest[tag]
		switch {
		case !seen, resp.Timestamp.After(cur.Timestamp):
			latest[tag] = resp
		case resp.Timestamp.Equal(cur.Timestamp) && resp.QuestionID > cur.QuestionID:
			latest[tag] = resp
		}
	}
	return latest
}

func classifyFeedback(tag, text string) float64 {
	poles := feedbackKeywords[tag]
	text = strings.ToLower(text)
	for _, kw := range poles.positive {
		if strings.Contains(text, kw) {
			return 1
		}
	}
	for _, kw := range poles.negative {
		if strings.Contains(text, kw) {
			return 0
		}
	}
	return Neutral
}
