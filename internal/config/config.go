package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Config holds application configuration
type Config struct {
	Port              string   `mapstructure:"PORT"`
	DBPath            string   `mapstructure:"DB_PATH"` // Empty serves the built-in catalog
	DayStart          string   `mapstructure:"DAY_START"`
	DayEnd            string   `mapstructure:"DAY_END"`
	DistanceCacheSize int      `mapstructure:"DISTANCE_CACHE_SIZE"`
	StationRadiusKm   float64  `mapstructure:"STATION_RADIUS_KM"`
	RoutingStrategy   string   `mapstructure:"ROUTING_STRATEGY"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	GinMode           string   `mapstructure:"GIN_MODE"`
}

// Load reads configuration from the environment over the defaults. A value
// that cannot be decoded into its field is an error.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_PATH", "")
	v.SetDefault("DAY_START", "01:00")
	v.SetDefault("DAY_END", "24:00")
	v.SetDefault("DISTANCE_CACHE_SIZE", 1000)
	v.SetDefault("STATION_RADIUS_KM", 25.0)
	v.SetDefault("ROUTING_STRATEGY", "nearest")
	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("CORS_ORIGINS", []string{"*"})
	v.SetDefault("GIN_MODE", "debug")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// DayBounds parses the planning day window into minutes of day
func (c Config) DayBounds() (start, end int, err error) {
	start, err = timeofday.Parse(c.DayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid DAY_START: %w", err)
	}
	end, err = timeofday.Parse(c.DayEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid DAY_END: %w", err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("DAY_END %s must be after DAY_START %s", c.DayEnd, c.DayStart)
	}
	return start, end, nil
}
