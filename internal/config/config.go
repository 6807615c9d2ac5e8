// Package config provides configuration management for the application
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/navikt/freerooms/internal/decoder"
)

// DefaultProviderURL is the public timeline page scraped when nothing else is configured
const DefaultProviderURL = "https://industryrinostation.roomzilla.net/"

// DefaultWidthPrefixOffset skips "width: " in a reservation's style attribute
const DefaultWidthPrefixOffset = len("width: ")

// DefaultSnapshotTTL is how long a shared room snapshot is reused when nothing valid is configured
const DefaultSnapshotTTL = time.Minute

// Selectors describes where room and reservation data live in the provider's markup
type Selectors struct {
	Row           string `yaml:"row"`
	Name          string `yaml:"name"`
	Floor         string `yaml:"floor"`
	Size          string `yaml:"size"`
	SortAttribute string `yaml:"sort_attribute"`

	Reservation    string `yaml:"reservation"`
	RoomAttribute  string `yaml:"room_attribute"`
	StartAttribute string `yaml:"start_attribute"`
	StyleAttribute string `yaml:"style_attribute"`
}

// ProviderConfig holds everything needed to scrape one booking provider
type ProviderConfig struct {
	URL       string        `yaml:"url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	// SecondsPerPixel converts a reservation's rendered width into its duration
	SecondsPerPixel float64 `yaml:"seconds_per_pixel"`
	// WidthPrefixOffset is where the number starts inside the style attribute ("width: 58px;")
	WidthPrefixOffset int       `yaml:"width_prefix_offset"`
	Selectors         Selectors `yaml:"selectors"`
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// SnapshotTTL is how long a scraped room list may be reused
	SnapshotTTL time.Duration
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
	// Locale is used to order room names in responses
	Locale string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
}

// LoadDotEnv reads a .env file into the environment if one exists.
// Variables already set are left untouched.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DefaultSelectors returns the selectors for the Roomzilla timeline layout
func DefaultSelectors() Selectors {
	return Selectors{
		Row:            "table#timeline tbody tr",
		Name:           "td.name",
		Floor:          "td.floor",
		Size:           "td.size",
		SortAttribute:  "data-sort",
		Reservation:    "div.reserved",
		RoomAttribute:  "room_name",
		StartAttribute: "seconds",
		StyleAttribute: "style",
	}
}

// GetProviderConfig loads provider configuration from environment variables
func GetProviderConfig() ProviderConfig {
	return ProviderConfig{
		URL:               getEnv("FREEROOMS_PROVIDER_URL", DefaultProviderURL),
		UserAgent:         getEnv("FREEROOMS_USER_AGENT", "freerooms/1.0"),
		Timeout:           getEnvDuration("FREEROOMS_HTTP_TIMEOUT", 30*time.Second),
		SecondsPerPixel:   getEnvFloat("FREEROOMS_SECONDS_PER_PIXEL", decoder.DefaultSecondsPerPixel),
		WidthPrefixOffset: getEnvInt("FREEROOMS_WIDTH_PREFIX_OFFSET", DefaultWidthPrefixOffset),
		Selectors:         DefaultSelectors(),
	}
}

// GetProviderFile returns the path of an optional YAML provider profile
func GetProviderFile() string {
	return getEnv("FREEROOMS_PROVIDER_FILE", "")
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	ttl := time.Duration(getEnvInt("REDIS_SNAPSHOT_TTL_SECONDS", 0)) * time.Second
	// Shared snapshots must always expire
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}

	return RedisConfig{
		Enabled:     getEnvBool("REDIS_ENABLED", false),
		URI:         getEnv("REDIS_URI_FREEROOMS", ""),
		Host:        getEnv("REDIS_HOST_FREEROOMS", getEnv("REDIS_ADDRESS", "localhost")),
		Port:        getEnv("REDIS_PORT_FREEROOMS", "6379"),
		Username:    getEnv("REDIS_USERNAME_FREEROOMS", ""),
		Password:    getEnv("REDIS_PASSWORD_FREEROOMS", getEnv("REDIS_PASSWORD", "")),
		DB:          getEnvInt("REDIS_DB", 0),
		KeyPrefix:   getEnv("REDIS_KEY_PREFIX", "freerooms:"),
		SnapshotTTL: ttl,
	}
}

// GetServerConfig loads HTTP server configuration from environment variables
func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:   getEnv("PORT", "8080"),
		Locale: getEnv("FREEROOMS_LOCALE", "en"),
	}
}

// GetLogConfig loads logger configuration from environment variables
func GetLogConfig() LogConfig {
	return LogConfig{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnvBool("LOG_DEVELOPMENT", false),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvInt(key string, defaultValue int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvFloat(key string, defaultValue float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return f
}

// getEnvDuration accepts Go duration strings such as "10s" or "1m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
