package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/trident-energy/riskregister/pkg/cli"
)

func TestRun_Ping_MemoryBackend(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"riskregister", "ping", "--repository-backend", "memory",
	}, "test")
	gt.NoError(t, err)
}

func TestRun_Ping_InvalidBackend(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"riskregister", "ping", "--repository-backend", "cassandra",
	}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_Ping_WithTaxonomyConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
closed_status_id = 5
open_plan_statuses = ["Open", "In Progress", "Blocked"]
`
	err := os.WriteFile(configPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{
		"riskregister", "ping", "--repository-backend", "memory", "--config", configPath,
	}, "test")
	gt.NoError(t, err)
}

func TestRun_Ping_InvalidTaxonomyConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(configPath, []byte(`open_plan_statuses = ["Open", "Open"]`), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{
		"riskregister", "ping", "--repository-backend", "memory", "--config", configPath,
	}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_Serve_InvalidSentryDSN(t *testing.T) {
	// A malformed DSN fails sentry.Init before the server starts; the
	// command must surface that instead of serving without reporting.
	err := cli.Run(context.Background(), []string{
		"riskregister", "serve",
		"--repository-backend", "memory",
		"--sentry-dsn", "not-a-valid-dsn",
	}, "test")
	gt.Value(t, err).NotNil()
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"riskregister", "--log-level", "verbose", "ping", "--repository-backend", "memory",
	}, "test")
	gt.Value(t, err).NotNil()
}
