package models

// WeatherDay is the forecast for a single date at the trip location.
type WeatherDay struct {
	Date              string  `bson:"date" json:"date"`                           // "YYYY-MM-DD"
	Condition         string  `bson:"condition" json:"condition"`                 // e.g. "sunny", "light rain"
	Temperature       float64 `bson:"temperature" json:"temperature"`             // Fahrenheit
	PrecipitationProb float64 `bson:"precipitation_prob" json:"precipitationProb"` // 0-1, or 0-100 as a percentage
	Wind              float64 `bson:"wind" json:"wind"`                           // mph
}
