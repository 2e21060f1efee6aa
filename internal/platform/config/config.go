package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Messages holds the externalized response message strings.
type Messages struct {
	SystemError          string
	InvalidAmount        string
	InvalidDescription   string
	IDNotFound           string
	ExchangeRateNotFound string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	TreasuryBaseURL string
	TreasuryTimeout time.Duration

	PageLimit              int
	DescriptionLengthLimit int

	Messages Messages
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TREASURY_BASE_URL", "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/v1/accounting/od/rates_of_exchange")
	viper.SetDefault("TREASURY_TIMEOUT", "10s")
	viper.SetDefault("PAGE_LIMIT", 50)
	viper.SetDefault("DESCRIPTION_LENGTH_LIMIT", 50)
	viper.SetDefault("MSG_SYSTEM_ERROR", "internal system error, please contact support")
	viper.SetDefault("MSG_INVALID_AMOUNT", "transaction amount must be a positive number")
	viper.SetDefault("MSG_INVALID_DESCRIPTION", "description must not exceed 50 characters")
	viper.SetDefault("MSG_ID_NOT_FOUND", "transaction id not found")
	viper.SetDefault("MSG_EXCHANGE_RATE_NOT_FOUND", "exchange rate not found")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.TreasuryBaseURL = viper.GetString("TREASURY_BASE_URL")

	timeoutStr := viper.GetString("TREASURY_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for TREASURY_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.TreasuryTimeout = timeout

	cfg.PageLimit = viper.GetInt("PAGE_LIMIT")
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 50
		log.Printf("Warning: PAGE_LIMIT must be positive. Defaulting to %d.\n", cfg.PageLimit)
	}

	cfg.DescriptionLengthLimit = viper.GetInt("DESCRIPTION_LENGTH_LIMIT")
	if cfg.DescriptionLengthLimit <= 0 {
		cfg.DescriptionLengthLimit = 50
		log.Printf("Warning: DESCRIPTION_LENGTH_LIMIT must be positive. Defaulting to %d.\n", cfg.DescriptionLengthLimit)
	}

	cfg.Messages = Messages{
		SystemError:          viper.GetString("MSG_SYSTEM_ERROR"),
		InvalidAmount:        viper.GetString("MSG_INVALID_AMOUNT"),
		InvalidDescription:   viper.GetString("MSG_INVALID_DESCRIPTION"),
		IDNotFound:           viper.GetString("MSG_ID_NOT_FOUND"),
		ExchangeRateNotFound: viper.GetString("MSG_EXCHANGE_RATE_NOT_FOUND"),
	}

	return cfg, nil
}
