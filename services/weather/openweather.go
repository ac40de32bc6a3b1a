package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"wayfarer/models"
)

const dateLayout = "2006-01-02"

// OpenWeatherSource reads the OpenWeatherMap 5 day / 3 hour forecast. Without
// an API key it serves a seasonal mock forecast.
type OpenWeatherSource struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewOpenWeatherSource(apiKey, baseURL string) *OpenWeatherSource {
	return &OpenWeatherSource{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// forecastResponse is the subset of the OpenWeatherMap forecast payload we read.
type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Pop  float64 `json:"pop"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

func (s *OpenWeatherSource) GetForecast(ctx context.Context, location, startDate, endDate string) ([]models.WeatherDay, error) {
	if s.apiKey == "" {
		return MockForecast(location, startDate, endDate)
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", s.apiKey)
	q.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: provider returned status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("weather: failed to decode response: %w", err)
	}

	// Keep the entry closest to midday for each date in range.
	type pick struct {
		day      models.WeatherDay
		distance float64
	}
	picks := make(map[string]pick)
	for _, entry := range fr.List {
		ts, err := time.Parse("2006-01-02 15:04:05", entry.DtTxt)
		if err != nil {
			continue
		}
		date := ts.Format(dateLayout)
		if date < startDate || date > endDate {
			continue
		}
		distance := math.Abs(float64(ts.Hour()) - 12)
		if cur, ok := picks[date]; ok && cur.distance <= distance {
			continue
		}
		condition := ""
		if len(entry.Weather) > 0 {
			condition = strings.ToLower(entry.Weather[0].Description)
			if condition == "" {
				condition = strings.ToLower(entry.Weather[0].Main)
			}
		}
		picks[date] = pick{
			day: models.WeatherDay{
				Date:              date,
				Condition:         condition,
				Temperature:       entry.Main.Temp,
				PrecipitationProb: entry.Pop,
				Wind:              entry.Wind.Speed,
			},
			distance: distance,
		}
	}

	days := make([]models.WeatherDay, 0, len(picks))
	for _, p := range picks {
		days = append(days, p.day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// MockForecast returns a deterministic seasonal forecast covering every date
// in the range.
func MockForecast(location, startDate, endDate string) ([]models.WeatherDay, error) {
	from, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("weather: invalid start date %q: %w", startDate, err)
	}
	to, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("weather: invalid end date %q: %w", endDate, err)
	}

	var days []models.WeatherDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, seasonalDay(d))
	}
	return days, nil
}

func seasonalDay(d time.Time) models.WeatherDay {
	day := models.WeatherDay{Date: d.Format(dateLayout), Wind: 8}
	switch month := d.Month(); {
	case month == 12 || month <= 2: // Winter
		day.Condition, day.Temperature, day.PrecipitationProb = "light snow", 30, 0.4
	case month <= 5: // Spring
		day.Condition, day.Temperature, day.PrecipitationProb = "scattered clouds", 62, 0.3
	case month <= 8: // Summer
		day.Condition, day.Temperature, day.PrecipitationProb = "clear sky", 82, 0.1
	default: // Autumn
		day.Condition, day.Temperature, day.PrecipitationProb = "light rain", 55, 0.6
	}
	return day
}
