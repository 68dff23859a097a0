package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Poster       Poster       `mapstructure:",squash"`
	Choice       Choice       `mapstructure:",squash"`
	Weather      Weather      `mapstructure:",squash"`
	Zones        Zones        `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
	Service      Service      `mapstructure:",squash"`
	Tables       Tables       `mapstructure:",squash"`
	CachePrewarm CachePrewarm `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Poster configures the POS platform account.
type Poster struct {
	AccountName    string        `mapstructure:"poster_account_name"`
	Token          string        `mapstructure:"poster_token"`
	PageSize       int           `mapstructure:"poster_page_size"`
	RequestTimeout time.Duration `mapstructure:"poster_request_timeout"`
}

// Choice configures the booking platform.
type Choice struct {
	URL            string        `mapstructure:"choice_url"`
	Token          string        `mapstructure:"choice_token"`
	PageSize       int           `mapstructure:"choice_page_size"`
	RequestTimeout time.Duration `mapstructure:"choice_request_timeout"`
}

// Weather configures the OpenWeather lookup.
type Weather struct {
	URL            string        `mapstructure:"weather_url"`
	Key            string        `mapstructure:"weather_key"`
	Latitude       string        `mapstructure:"weather_lat"`
	Longitude      string        `mapstructure:"weather_lon"`
	Language       string        `mapstructure:"weather_lang"`
	RequestTimeout time.Duration `mapstructure:"weather_request_timeout"`
}

// Zones holds the static category-id partition. A category id in none
// of the three sets is unclassified and ignored.
type Zones struct {
	HotCategories  []int `mapstructure:"hot_categories"`
	ColdCategories []int `mapstructure:"cold_categories"`
	BarCategories  []int `mapstructure:"bar_categories"`
}

// Cache holds the two TTLs that govern upstream load shedding.
type Cache struct {
	CatalogTTL   time.Duration `mapstructure:"catalog_cache_ttl"`
	AggregateTTL time.Duration `mapstructure:"aggregate_cache_ttl"`
}

// Service holds the aggregation policy knobs.
type Service struct {
	HourFrom             int `mapstructure:"service_hour_from"`
	HourTill             int `mapstructure:"service_hour_till"`
	ComparisonOffsetDays int `mapstructure:"comparison_offset_days"`
	SharePrecision       int `mapstructure:"share_precision"`
}

// Tables holds the fixed floor plan.
type Tables struct {
	Hall    []int `mapstructure:"hall_tables"`
	Terrace []int `mapstructure:"terrace_tables"`
}

// CachePrewarm configures the optional background refresh job. The
// primary model stays request-driven; this only keeps the cache warm
// so the first poll after idle does not pay the refresh.
type CachePrewarm struct {
	CronSchedule string `mapstructure:"cache_prewarm_cron"`
	Enabled      bool   `mapstructure:"cache_prewarm_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("POSTER_ACCOUNT_NAME", "poka-net3")
	viper.SetDefault("POSTER_TOKEN", "")
	viper.SetDefault("POSTER_PAGE_SIZE", 500)
	viper.SetDefault("POSTER_REQUEST_TIMEOUT", "25s")

	viper.SetDefault("CHOICE_URL", "https://api.choice.ua")
	viper.SetDefault("CHOICE_TOKEN", "")
	viper.SetDefault("CHOICE_PAGE_SIZE", 100)
	viper.SetDefault("CHOICE_REQUEST_TIMEOUT", "15s")

	viper.SetDefault("WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather")
	viper.SetDefault("WEATHER_KEY", "")
	viper.SetDefault("WEATHER_LAT", "50.395")
	viper.SetDefault("WEATHER_LON", "30.355")
	viper.SetDefault("WEATHER_LANG", "uk")
	viper.SetDefault("WEATHER_REQUEST_TIMEOUT", "10s")

	// Category ids come from the POS menu setup and change only when
	// the menu is recategorized.
	viper.SetDefault("HOT_CATEGORIES", []int{4, 13, 15, 46, 33})
	viper.SetDefault("COLD_CATEGORIES", []int{7, 8, 11, 16, 18, 19, 29, 32, 36, 44})
	viper.SetDefault("BAR_CATEGORIES", []int{9, 14, 27, 28, 34, 41, 42, 47, 22, 24, 25, 26, 39, 30})

	viper.SetDefault("CATALOG_CACHE_TTL", "1h")
	viper.SetDefault("AGGREGATE_CACHE_TTL", "60s")

	viper.SetDefault("SERVICE_HOUR_FROM", 10)
	viper.SetDefault("SERVICE_HOUR_TILL", 22)
	viper.SetDefault("COMPARISON_OFFSET_DAYS", 7)
	viper.SetDefault("SHARE_PRECISION", 0)

	viper.SetDefault("HALL_TABLES", []int{1, 2, 3, 4, 5, 6, 8})
	viper.SetDefault("TERRACE_TABLES", []int{7, 10, 11, 12, 13})

	viper.SetDefault("CACHE_PREWARM_CRON", "*/5 10-22 * * *")
	viper.SetDefault("CACHE_PREWARM_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads a .env file for local runs; deployed environments
// configure through real environment variables.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}
}
