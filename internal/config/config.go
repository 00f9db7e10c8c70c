package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Required variables are enforced by must() at
// startup; optional ones fall back to sensible defaults.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	DBUser            string // database username
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	JWTSecret         string // secret used to sign admin tokens
	TokenTTLMin       int    // admin token time-to-live in minutes
	AdminPassword     string // plain admin password (fallback)
	AdminPasswordHash string // bcrypt hash of the admin password (preferred)
	WebhookURL        string // automation endpoint notified of new reservations
	MaxPeople         int    // upper bound on the party size of one reservation
	QR                QRConfig
}

// QRConfig identifies the creditor printed on the Swiss QR bill. The
// defaults reproduce the event organiser's account; override them per
// deployment.
type QRConfig struct {
	IBAN             string
	CreditorName     string
	CreditorStreet   string
	CreditorBuilding string
	CreditorZip      string
	CreditorTown     string
	CreditorCountry  string
	Currency         string
	MessagePrefix    string // free-text prefix, completed with the contact name
}

// Load reads configuration values from environment variables and returns a
// Config. Missing required values cause the program to exit with a fatal
// log message; there is no point starting a server that cannot sign tokens
// or reach its database.
func Load() Config {
	cfg := Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		JWTSecret:         must("JWT_SECRET"),
		TokenTTLMin:       envInt("TOKEN_TTL_MIN", 60),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		WebhookURL:        os.Getenv("N8N_ENDPOINT"),
		MaxPeople:         envInt("MAX_PEOPLE", 4),
		QR: QRConfig{
			IBAN:             envStr("QR_IBAN", "CH5400266266100331M2C"),
			CreditorName:     envStr("QR_CREDITOR_NAME", "Böhi Lucien"),
			CreditorStreet:   envStr("QR_CREDITOR_STREET", "Nouvelle Avenue"),
			CreditorBuilding: envStr("QR_CREDITOR_BUILDING", "34"),
			CreditorZip:      envStr("QR_CREDITOR_ZIP", "1907"),
			CreditorTown:     envStr("QR_CREDITOR_TOWN", "Saxon"),
			CreditorCountry:  envStr("QR_CREDITOR_COUNTRY", "CH"),
			Currency:         envStr("QR_CURRENCY", "CHF"),
			MessagePrefix:    envStr("QR_MESSAGE_PREFIX", "PARTY"),
		},
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("set ADMIN_PASSWORD_HASH (or ADMIN_PASSWORD) to enable admin login")
	}
	if cfg.MaxPeople < 1 {
		log.Fatalf("invalid MAX_PEOPLE: %d", cfg.MaxPeople)
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
