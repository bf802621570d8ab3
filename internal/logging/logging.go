package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// Get returns the process-wide logger, creating it on first use.
func Get() *logrus.Logger {
	if logg != nil {
		return logg
	}
	logg = logrus.New()
	logg.SetOutput(os.Stdout)
	logg.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("APP_ENV") == "development" {
		logg.SetFormatter(&logrus.TextFormatter{})
		logg.SetLevel(logrus.DebugLevel)
	}
	return logg
}
