package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Weather provider.
	WeatherAPIKey          string `mapstructure:"WEATHER_API_KEY"`
	WeatherAPIURL          string `mapstructure:"WEATHER_API_URL"`
	WeatherCacheTTLMinutes int    `mapstructure:"WEATHER_CACHE_TTL_MINUTES"`

	// Reservation providers.
	PrimaryBookingURL            string  `mapstructure:"PRIMARY_BOOKING_URL"`
	PrimaryBookingTimeoutSeconds int     `mapstructure:"PRIMARY_BOOKING_TIMEOUT_SECONDS"`
	FallbackTimeoutSeconds       int     `mapstructure:"FALLBACK_TIMEOUT_SECONDS"`
	FallbackSuccessRate          float64 `mapstructure:"FALLBACK_SUCCESS_RATE"`
	FallbackDelayMS              int     `mapstructure:"FALLBACK_DELAY_MS"`
	ReservationParallelism       int     `mapstructure:"RESERVATION_PARALLELISM"`

	// Gemini narration. Empty key disables summaries.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "wayfarer")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("WEATHER_API_KEY", "")
	viper.SetDefault("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/forecast")
	viper.SetDefault("WEATHER_CACHE_TTL_MINUTES", 30)
	viper.SetDefault("PRIMARY_BOOKING_URL", "")
	viper.SetDefault("PRIMARY_BOOKING_TIMEOUT_SECONDS", 3)
	viper.SetDefault("FALLBACK_TIMEOUT_SECONDS", 5)
	viper.SetDefault("FALLBACK_SUCCESS_RATE", 0.85)
	viper.SetDefault("FALLBACK_DELAY_MS", 2000)
	viper.SetDefault("RESERVATION_PARALLELISM", 4)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
