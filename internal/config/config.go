package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-registry/internal/platform/logging"
)

// Config stores runtime configuration for the registry command.
type Config struct {
	AppEnv           string
	ServiceName      string
	ServiceVersion   string
	LogLevel         logging.Level
	SeedFile         string
	SeedDemo         bool
	ImportWorkers    int
	ReportTopPlayers int
	UptraceEnabled   bool
	UptraceDSN       string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	seedDemo, err := strconv.ParseBool(getEnv("SEED_DEMO", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO: %w", err)
	}
	seedFile := strings.TrimSpace(getEnv("SEED_FILE", ""))
	if seedDemo && seedFile != "" {
		return Config{}, fmt.Errorf("SEED_FILE and SEED_DEMO=true are mutually exclusive")
	}

	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}
	if importWorkers < 1 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be >= 1")
	}

	reportTopPlayers, err := getEnvAsInt("REPORT_TOP_PLAYERS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_TOP_PLAYERS: %w", err)
	}
	if reportTopPlayers < 0 {
		return Config{}, fmt.Errorf("REPORT_TOP_PLAYERS must be >= 0")
	}

	return Config{
		AppEnv:           appEnv,
		ServiceName:      getEnv("APP_SERVICE_NAME", "team-registry"),
		ServiceVersion:   getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:         logging.ParseLevel(strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_LEVEL", "info")))),
		SeedFile:         seedFile,
		SeedDemo:         seedDemo,
		ImportWorkers:    importWorkers,
		ReportTopPlayers: reportTopPlayers,
		UptraceEnabled:   uptraceEnabled,
		UptraceDSN:       uptraceDSN,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
