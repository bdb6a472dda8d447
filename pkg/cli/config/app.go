package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
	"github.com/trident-energy/riskregister/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// App holds CLI flags for the optional application configuration file
type App struct {
	path string
}

// taxonomyFile is the TOML shape of the taxonomy overrides
type taxonomyFile struct {
	ClosedStatusID   int64    `toml:"closed_status_id"`
	OpenPlanStatuses []string `toml:"open_plan_statuses"`
}

// Flags returns CLI flags for application configuration
func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to taxonomy configuration file (TOML)",
			Sources:     cli.EnvVars("RISKREGISTER_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure returns the taxonomy, overridden by the TOML file when one is
// given. Without a file the built-in defaults apply.
func (a *App) Configure() (*domainConfig.Taxonomy, error) {
	tax := domainConfig.DefaultTaxonomy()
	if a.path == "" {
		return tax, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", a.path))
	}

	var file taxonomyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", a.path))
	}

	if file.ClosedStatusID != 0 {
		if file.ClosedStatusID < 0 {
			return nil, goerr.Wrap(ErrInvalidTaxonomy, "closed_status_id must be positive",
				goerr.V("path", a.path), goerr.V("closed_status_id", file.ClosedStatusID))
		}
		tax.ClosedStatusID = file.ClosedStatusID
	}

	if len(file.OpenPlanStatuses) > 0 {
		seen := make(map[string]bool)
		statuses := make([]types.PlanStatus, 0, len(file.OpenPlanStatuses))
		for _, s := range file.OpenPlanStatuses {
			if s == "" {
				return nil, goerr.Wrap(ErrInvalidTaxonomy, "empty plan status", goerr.V("path", a.path))
			}
			if seen[s] {
				return nil, goerr.Wrap(ErrInvalidTaxonomy, "duplicate plan status",
					goerr.V("path", a.path), goerr.V("status", s))
			}
			seen[s] = true
			statuses = append(statuses, types.PlanStatus(s))
		}
		tax.OpenPlanStatuses = statuses
	}

	return tax, nil
}
