package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/trident-energy/riskregister/pkg/cli/config"
	"github.com/trident-energy/riskregister/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdPing() *cli.Command {
	var appCfg config.App
	var dbCfg config.Database

	flags := appCfg.Flags()
	flags = append(flags, dbCfg.Flags()...)

	return &cli.Command{
		Name:  "ping",
		Usage: "Verify database connectivity and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			tax, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load taxonomy configuration")
			}

			repo, err := dbCfg.Configure(ctx, tax)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			if err := repo.Ping(ctx); err != nil {
				return goerr.Wrap(err, "database is not reachable")
			}

			logging.Default().Info("Database connection OK", "database", dbCfg)
			return nil
		},
	}
}
