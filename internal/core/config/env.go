package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: FNOUTLINE_[SECTION]_[KEY] (e.g., FNOUTLINE_SCAN_WORKERS).
func ApplyEnvOverrides(cfg *Config) {
	setEnvString(&cfg.DefaultDialect, "FNOUTLINE_DEFAULT_DIALECT")

	// Scan
	setEnvInt(&cfg.Scan.Workers, "FNOUTLINE_SCAN_WORKERS")
	setEnvFloat64(&cfg.Scan.FilesPerSecond, "FNOUTLINE_SCAN_FILES_PER_SECOND")
	setEnvInt64(&cfg.Scan.MaxFileBytes, "FNOUTLINE_SCAN_MAX_FILE_BYTES")

	// Output
	setEnvString(&cfg.Output.Format, "FNOUTLINE_OUTPUT_FORMAT")

	// Observability
	setEnvString(&cfg.Observability.MetricsAddr, "FNOUTLINE_OBSERVABILITY_METRICS_ADDR")
	setEnvString(&cfg.Observability.OTLPEndpoint, "FNOUTLINE_OBSERVABILITY_OTLP_ENDPOINT")
	setEnvString(&cfg.Observability.ServiceName, "FNOUTLINE_OBSERVABILITY_SERVICE_NAME")

	normalize(cfg)
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = i
		}
	}
}

func setEnvInt64(target *int64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = i
		}
	}
}

func setEnvFloat64(target *float64, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = f
		}
	}
}
