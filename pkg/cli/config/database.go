package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/repository/memory"
	"github.com/trident-energy/riskregister/pkg/repository/mysql"
	"github.com/trident-energy/riskregister/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Database holds CLI flags for repository backend configuration
type Database struct {
	backend  string
	host     string
	port     int
	name     string
	user     string
	password string
	charset  string
	timeout  time.Duration
}

// Flags returns CLI flags for database configuration
func (d *Database) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (mysql or memory)",
			Value:       "mysql",
			Sources:     cli.EnvVars("RISKREGISTER_REPOSITORY_BACKEND"),
			Destination: &d.backend,
		},
		&cli.StringFlag{
			Name:        "db-host",
			Usage:       "MySQL server host",
			Value:       "localhost",
			Sources:     cli.EnvVars("RISKREGISTER_DB_HOST"),
			Destination: &d.host,
		},
		&cli.IntFlag{
			Name:        "db-port",
			Usage:       "MySQL server port",
			Value:       3306,
			Sources:     cli.EnvVars("RISKREGISTER_DB_PORT"),
			Destination: &d.port,
		},
		&cli.StringFlag{
			Name:        "db-name",
			Usage:       "MySQL database name",
			Value:       "riskregister",
			Sources:     cli.EnvVars("RISKREGISTER_DB_NAME"),
			Destination: &d.name,
		},
		&cli.StringFlag{
			Name:        "db-user",
			Usage:       "MySQL user",
			Value:       "riskregister",
			Sources:     cli.EnvVars("RISKREGISTER_DB_USER"),
			Destination: &d.user,
		},
		&cli.StringFlag{
			Name:        "db-password",
			Usage:       "MySQL password",
			Sources:     cli.EnvVars("RISKREGISTER_DB_PASSWORD"),
			Destination: &d.password,
		},
		&cli.StringFlag{
			Name:        "db-charset",
			Usage:       "MySQL connection charset",
			Value:       "utf8",
			Sources:     cli.EnvVars("RISKREGISTER_DB_CHARSET"),
			Destination: &d.charset,
		},
		&cli.DurationFlag{
			Name:        "db-timeout",
			Usage:       "MySQL connection timeout",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("RISKREGISTER_DB_TIMEOUT"),
			Destination: &d.timeout,
		},
	}
}

// DSN builds the MySQL connection string
func (d *Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC&timeout=%s",
		d.user, d.password, d.host, d.port, d.name, d.charset, d.timeout)
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (d *Database) Configure(ctx context.Context, tax *domainConfig.Taxonomy) (interfaces.Repository, error) {
	switch d.backend {
	case "mysql":
		repo, err := mysql.New(ctx, d.DSN(), tax)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize mysql repository")
		}
		logging.Default().Info("Using MySQL repository",
			"host", d.host,
			"port", d.port,
			"database", d.name,
		)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(tax), nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "unsupported backend", goerr.V("backend", d.backend))
	}
}

// LogValue implements slog.LogValuer. The password never reaches the log.
func (d Database) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", d.backend),
		slog.String("host", d.host),
		slog.Int("port", d.port),
		slog.String("name", d.name),
		slog.String("user", d.user),
		slog.String("charset", d.charset),
		slog.Duration("timeout", d.timeout),
	)
}
