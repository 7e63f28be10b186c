package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	MongoURL          string
	MongoDB           string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	UseTransactions   bool
	RateLimit         string
	CORSAllowOrigins  []string
	InvoiceSeries     string
	RecognitionLabels int
	RecognitionLang   string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "Sistema83")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MONGO_USE_TRANSACTIONS", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("INVOICE_SERIES", "001-001")
	viper.SetDefault("RECOGNITION_MAX_LABELS", 3)
	viper.SetDefault("RECOGNITION_TARGET_LANG", "es")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURL = viper.GetString("MONGO_URL")
	if cfg.MongoURL == "" {
		log.Println("Warning: MONGO_URL environment variable not set.")
	}
	cfg.MongoDB = viper.GetString("MONGO_DB")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.UseTransactions = viper.GetBool("MONGO_USE_TRANSACTIONS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")
	cfg.InvoiceSeries = viper.GetString("INVOICE_SERIES")

	cfg.RecognitionLabels = viper.GetInt("RECOGNITION_MAX_LABELS")
	if cfg.RecognitionLabels <= 0 {
		cfg.RecognitionLabels = 3
		log.Printf("Warning: invalid RECOGNITION_MAX_LABELS. Defaulting to %d.\n", cfg.RecognitionLabels)
	}
	cfg.RecognitionLang = viper.GetString("RECOGNITION_TARGET_LANG")
	if cfg.RecognitionLang == "" {
		cfg.RecognitionLang = "es"
		log.Printf("Warning: RECOGNITION_TARGET_LANG not set. Defaulting to %s.\n", cfg.RecognitionLang)
	}

	return cfg, nil
}
