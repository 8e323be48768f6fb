package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dnswd/budget/internal/config"
)

func SetupLogging(cfg *config.Config) *logrus.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, out io.Writer) *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	fieldMap := logrus.FieldMap{
		logrus.FieldKeyLevel: "loglevel",
	}

	var formatter logrus.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		FieldMap:         fieldMap,
	}
	if cfg.LogFormat == config.FormatJSON {
		formatter = &logrus.JSONFormatter{FieldMap: fieldMap}
	}

	return &logrus.Logger{
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Out:       out,
		Level:     level,
	}
}
