package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBStatementTimeout time.Duration
	AuditSchedule      string
	RateLimitRPS       float64
	SeedSampleData     bool
}

// LoadConfig reads the configuration from the environment, after loading
// .env when one is present in the working directory.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	timeout, err := time.ParseDuration(getEnv("DB_STATEMENT_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("DB_STATEMENT_TIMEOUT: %w", err)
	}
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	seed, err := strconv.ParseBool(getEnv("SEED_SAMPLE_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_SAMPLE_DATA: %w", err)
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "loadbook"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		DBStatementTimeout: timeout,
		AuditSchedule:      os.Getenv("AUDIT_SCHEDULE"),
		RateLimitRPS:       rps,
		SeedSampleData:     seed,
	}, nil
}

// DSN renders the key/value connection string understood by both pgx and
// lib/pq. A positive statement timeout is sent as a session parameter.
func (c Config) DSN() string {
	parts := []string{
		"host=" + quoteDSN(c.DBHost),
		"port=" + quoteDSN(c.DBPort),
		"user=" + quoteDSN(c.DBUser),
		"password=" + quoteDSN(c.DBPassword),
		"dbname=" + quoteDSN(c.DBName),
		"sslmode=" + quoteDSN(c.DBSslMode),
	}
	if c.DBStatementTimeout > 0 {
		parts = append(parts, fmt.Sprintf("statement_timeout=%d", c.DBStatementTimeout.Milliseconds()))
	}
	return strings.Join(parts, " ")
}

// URL renders the same connection as a postgres:// URL.
func (c Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.DBSslMode)
	if c.DBStatementTimeout > 0 {
		q.Set("statement_timeout", strconv.FormatInt(c.DBStatementTimeout.Milliseconds(), 10))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func quoteDSN(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}
