package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/trident-energy/riskregister/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	t.Run("console to stdout", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("info", "console", "stdout").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("json to stderr", func(t *testing.T) {
		closer, err := config.NewLoggerForTest("debug", "json", "stderr").Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
		gt.Value(t, err).NotNil()
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := config.NewLoggerForTest("info", "xml", "stdout").Configure()
		gt.Value(t, err).NotNil()
	})
}
