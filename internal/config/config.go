package config

import (
	"log"
	"os"
	"strconv"

	"controlecompras/internal/money"
)

type Config struct {
	Port string
	// DBPath is the SQLite file holding both tables.
	DBPath string
	// DataDir is where side-effect files (the company logo) live.
	DataDir string
	Env     string
	// MaxValorUnitario caps unit price entry, in centavos.
	MaxValorUnitario money.Amount
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DBPath = getEnv("DB_PATH", "dados.sqlite")
	cfg.DataDir = getEnv("DATA_DIR", ".")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.MaxValorUnitario = money.Amount(getEnvInt64("MAX_VALOR_UNITARIO_CENTAVOS", int64(money.DefaultMax)))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}
