package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Audit log backends.
const (
	AuditBackendPostgres = "postgres"
	AuditBackendMongo    = "mongo"
)

// Receipt storage backends.
const (
	ReceiptBackendMemory = "memory"
	ReceiptBackendGCS    = "gcs"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Bearer tokens are issued by the hosted auth platform; we only verify them.
	JWTSecret string
	JWTIssuer string

	CORSAllowedOrigins []string
	RateLimit          string // limiter formatted rate, e.g. "300-M"

	AuditBackend  string
	MongoURI      string
	MongoDatabase string

	ReceiptBackend string
	GCSBucket      string
	ReceiptURLTTL  time.Duration // Cache lifetime advertised on stored receipts

	PosthogAPIKey   string
	PosthogEndpoint string

	// When set, editing a bank-linked transaction applies only the change
	// in its bank effect instead of the full new amount.
	BankSyncDiffOnUpdate bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("AUDIT_BACKEND", AuditBackendPostgres)
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "lending_ledger")
	v.SetDefault("RECEIPT_BACKEND", ReceiptBackendMemory)
	v.SetDefault("GCS_BUCKET", "")
	v.SetDefault("RECEIPT_URL_TTL", "24h")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("BANK_SYNC_DIFF_ON_UPDATE", false)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:            v.GetString("RATE_LIMIT"),
		AuditBackend:         strings.ToLower(v.GetString("AUDIT_BACKEND")),
		MongoURI:             v.GetString("MONGO_URI"),
		MongoDatabase:        v.GetString("MONGO_DATABASE"),
		ReceiptBackend:       strings.ToLower(v.GetString("RECEIPT_BACKEND")),
		GCSBucket:            v.GetString("GCS_BUCKET"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      v.GetString("POSTHOG_ENDPOINT"),
		BankSyncDiffOnUpdate: v.GetBool("BANK_SYNC_DIFF_ON_UPDATE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Every authenticated request will be rejected.")
	}

	ttlStr := v.GetString("RECEIPT_URL_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour
		log.Printf("Warning: Invalid value for RECEIPT_URL_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ReceiptURLTTL = ttl

	switch cfg.AuditBackend {
	case AuditBackendPostgres:
	case AuditBackendMongo:
		if cfg.MongoURI == "" {
			log.Println("Warning: AUDIT_BACKEND is mongo but MONGO_URI is not set. Falling back to postgres.")
			cfg.AuditBackend = AuditBackendPostgres
		}
	default:
		log.Printf("Warning: Unknown AUDIT_BACKEND ('%s'). Defaulting to %s.\n", cfg.AuditBackend, AuditBackendPostgres)
		cfg.AuditBackend = AuditBackendPostgres
	}

	switch cfg.ReceiptBackend {
	case ReceiptBackendMemory:
	case ReceiptBackendGCS:
		if cfg.GCSBucket == "" {
			log.Println("Warning: RECEIPT_BACKEND is gcs but GCS_BUCKET is not set. Falling back to memory.")
			cfg.ReceiptBackend = ReceiptBackendMemory
		}
	default:
		log.Printf("Warning: Unknown RECEIPT_BACKEND ('%s'). Defaulting to %s.\n", cfg.ReceiptBackend, ReceiptBackendMemory)
		cfg.ReceiptBackend = ReceiptBackendMemory
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
