package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server
var (
	ServerPort         = getEnv("PORT", "8080")
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 300)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute)
	BaseURL            = getEnv("BASE_URL", "http://localhost:8080")
)

// Rental API server (owns listings, bookings, pricing, users)
var (
	RentalAPIURL   = getEnv("RENTAL_API_URL", "http://localhost:4000")
	RentalAPIToken = os.Getenv("RENTAL_API_TOKEN")
	FetchTimeout   = getEnvDuration("FETCH_TIMEOUT", 10*time.Second)
	SearchPageSize = getEnvInt("SEARCH_PAGE_SIZE", 40)
)

// Geocoding API (address autocomplete)
var (
	GeocoderAPIURL = getEnv("GEOCODER_API_URL", "https://api.locationiq.com/v1/autocomplete")
	GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	GeocodeTimeout = getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second)
)

// Redis (recent searches)
var (
	RedisAddress  = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
)

// Map and search coordination
var (
	SearchDebounce    = getEnvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond)
	FlyToDuration     = getEnvDuration("FLY_TO_DURATION", 700*time.Millisecond)
	SuppressionMargin = getEnvDuration("SUPPRESSION_MARGIN", 100*time.Millisecond)
	SessionTTL        = getEnvDuration("SESSION_TTL", 30*time.Minute)

	// Zoom level above which map markers are never clustered
	ClusterMaxZoom = getEnvInt("CLUSTER_MAX_ZOOM", 14)

	// Fallback map center when neither the URL nor the results provide one (Paris)
	DefaultCenterLat = getEnvFloat("DEFAULT_CENTER_LAT", 48.8566)
	DefaultCenterLng = getEnvFloat("DEFAULT_CENTER_LNG", 2.3522)
	DefaultZoom      = getEnvFloat("DEFAULT_ZOOM", 11)
)

// Frontend asset URLs
var (
	TailwindCSSURL = getEnv("TAILWIND_CSS_URL", "https://cdn.tailwindcss.com/3.4.3")
	HTMXURL        = getEnv("HTMX_URL", "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js")
	LeafletCSSURL  = getEnv("LEAFLET_CSS_URL", "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css")
	LeafletJSURL   = getEnv("LEAFLET_JS_URL", "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js")
)

// Load reads a .env file if present and re-evaluates all configuration
// variables. Call once at startup, before anything reads config values.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env file")
		reload()
	}
}

func reload() {
	ServerPort = getEnv("PORT", "8080")
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 300)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute)
	BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	RentalAPIURL = getEnv("RENTAL_API_URL", "http://localhost:4000")
	RentalAPIToken = os.Getenv("RENTAL_API_TOKEN")
	FetchTimeout = getEnvDuration("FETCH_TIMEOUT", 10*time.Second)
	SearchPageSize = getEnvInt("SEARCH_PAGE_SIZE", 40)

	GeocoderAPIURL = getEnv("GEOCODER_API_URL", "https://api.locationiq.com/v1/autocomplete")
	GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	GeocodeTimeout = getEnvDuration("GEOCODE_TIMEOUT", 5*time.Second)

	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	SearchDebounce = getEnvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond)
	FlyToDuration = getEnvDuration("FLY_TO_DURATION", 700*time.Millisecond)
	SuppressionMargin = getEnvDuration("SUPPRESSION_MARGIN", 100*time.Millisecond)
	SessionTTL = getEnvDuration("SESSION_TTL", 30*time.Minute)
	ClusterMaxZoom = getEnvInt("CLUSTER_MAX_ZOOM", 14)
	DefaultCenterLat = getEnvFloat("DEFAULT_CENTER_LAT", 48.8566)
	DefaultCenterLng = getEnvFloat("DEFAULT_CENTER_LNG", 2.3522)
	DefaultZoom = getEnvFloat("DEFAULT_ZOOM", 11)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[config] invalid int for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[config] invalid float for %s, using default %g", key, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[config] invalid duration for %s, using default %s", key, fallback)
	}
	return fallback
}
