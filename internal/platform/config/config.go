package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort                  = "8080"
	defaultMigrationsPath        = "file://migrations"
	defaultExchangeRateAPIURL    = "https://api.exchangerate-api.com/v4/latest/"
	defaultExchangeRateTimeout   = 5 * time.Second
	defaultSupportedCurrencyFile = "resources/supported_currencies.txt"
	defaultBoxPriceRateLimit     = "60-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string // empty selects the in-memory repository
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Exchange rate provider; the base currency code is appended to the URL
	ExchangeRateAPIURL  string
	ExchangeRateTimeout time.Duration

	SupportedCurrenciesFile string

	CORSAllowedOrigins []string
	BoxPriceRateLimit  string // ulule/limiter format, e.g. "60-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("EXCHANGE_RATE_API_URL", defaultExchangeRateAPIURL)
	viper.SetDefault("EXCHANGE_RATE_TIMEOUT", defaultExchangeRateTimeout.String())
	viper.SetDefault("SUPPORTED_CURRENCIES_FILE", defaultSupportedCurrencyFile)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("BOX_PRICE_RATE_LIMIT", defaultBoxPriceRateLimit)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using the in-memory catalog.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.ExchangeRateAPIURL = viper.GetString("EXCHANGE_RATE_API_URL")
	if cfg.ExchangeRateAPIURL == "" {
		cfg.ExchangeRateAPIURL = defaultExchangeRateAPIURL
		log.Printf("Warning: EXCHANGE_RATE_API_URL not set. Defaulting to %s\n", cfg.ExchangeRateAPIURL)
	}

	timeoutStr := viper.GetString("EXCHANGE_RATE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultExchangeRateTimeout
		log.Printf("Warning: Invalid value for EXCHANGE_RATE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ExchangeRateTimeout = timeout

	cfg.SupportedCurrenciesFile = viper.GetString("SUPPORTED_CURRENCIES_FILE")
	if cfg.SupportedCurrenciesFile == "" {
		cfg.SupportedCurrenciesFile = defaultSupportedCurrencyFile
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.BoxPriceRateLimit = viper.GetString("BOX_PRICE_RATE_LIMIT")
	if cfg.BoxPriceRateLimit == "" {
		cfg.BoxPriceRateLimit = defaultBoxPriceRateLimit
	}

	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
