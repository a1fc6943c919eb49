package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigureLogging(t *testing.T) {
	originalLevel := logrus.GetLevel()
	originalFormatter := logrus.StandardLogger().Formatter
	defer func() {
		logrus.SetLevel(originalLevel)
		logrus.SetFormatter(originalFormatter)
	}()

	ConfigureLogging(LoggingConfig{Level: "debug", Format: "json"})
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", logrus.StandardLogger().Formatter)
	}

	ConfigureLogging(LoggingConfig{Level: "verbose", Format: "text"})
	if logrus.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected fallback to info level, got %s", logrus.GetLevel())
	}
	if _, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); !ok {
		t.Errorf("Expected text formatter, got %T", logrus.StandardLogger().Formatter)
	}
}
