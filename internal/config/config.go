package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	DumpLedgers bool
}

// ProcessEnvironmentVariables reads an optional .env file and then the
// process environment. Unset variables keep their defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	// a missing .env is the normal case outside local development
	_ = godotenv.Load()

	env := Config{
		LogLevel:  "info",
		LogFormat: FormatText,
	}

	if v := os.Getenv("BUDGET_LOG_LEVEL"); len(v) != 0 {
		env.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("BUDGET_LOG_FORMAT"); len(v) != 0 {
		env.LogFormat = strings.ToLower(v)
	}

	if v := os.Getenv("BUDGET_DUMP_LEDGERS"); len(v) != 0 {
		dump, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("BUDGET_DUMP_LEDGERS: %w", err)
		}
		env.DumpLedgers = dump
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) Validate() error {
	var problems []string

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be %s or %s", c.LogFormat, FormatText, FormatJSON))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
