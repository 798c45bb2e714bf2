package config

import (
	"fmt"
	"os"
	"strconv"
)

// S3Config holds the connection settings for the primary S3-compatible
// object storage (Cloudflare R2 or any other endpoint-addressed provider).
type S3Config struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	Bucket       string
	PublicDomain string
}

// Config holds all application configuration loaded from environment variables
type Config struct {
	Port string

	// Document store
	FirestoreProjectID string
	CredentialsFile    string
	ItemsCollection    string
	LogsCollection     string

	// Object storage
	S3           S3Config
	LegacyBucket string

	// Warranty alerting
	WarrantyAlertDays int

	// Ledger
	LedgerTimezone  string
	LedgerPageLimit int

	// Optional Redis cache for resolved image URLs
	RedisAddr string

	// Base URL used by the report renderer (headless Chrome navigates here)
	BaseURL string
}

// IsConfigured reports whether the primary backend has enough settings to be used
func (s S3Config) IsConfigured() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.SecretKey != "" && s.Bucket != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Load builds the configuration from environment variables.
// FIRESTORE_PROJECT_ID is the only hard requirement; everything else has a
// default or degrades to a disabled feature (S3 backend, legacy bucket, Redis).
func Load() (*Config, error) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		return nil, fmt.Errorf("FIRESTORE_PROJECT_ID environment variable is not set")
	}

	port := getenvDefault("PORT", "8080")
	// Remove leading colon if present (PORT from some hosts doesn't include it)
	if len(port) > 0 && port[0] == ':' {
		port = port[1:]
	}

	cfg := &Config{
		Port:               port,
		FirestoreProjectID: projectID,
		CredentialsFile:    os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		ItemsCollection:    getenvDefault("ITEMS_COLLECTION", "instrument_consumables"),
		LogsCollection:     getenvDefault("LOGS_COLLECTION", "consumables_logs"),
		S3: S3Config{
			Endpoint:     os.Getenv("R2_ENDPOINT"),
			AccessKey:    os.Getenv("R2_ACCESS_KEY"),
			SecretKey:    os.Getenv("R2_SECRET_KEY"),
			Bucket:       os.Getenv("R2_BUCKET"),
			PublicDomain: os.Getenv("R2_PUBLIC_DOMAIN"),
		},
		LegacyBucket:      os.Getenv("LEGACY_BUCKET"),
		WarrantyAlertDays: getenvInt("WARRANTY_ALERT_DAYS", 30),
		LedgerTimezone:    getenvDefault("LEDGER_TIMEZONE", "Asia/Taipei"),
		LedgerPageLimit:   getenvInt("LEDGER_PAGE_LIMIT", 100),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		BaseURL:           getenvDefault("BASE_URL", "http://localhost:"+port),
	}

	return cfg, nil
}
