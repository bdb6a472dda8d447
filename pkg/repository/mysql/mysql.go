package mysql

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	domainConfig "github.com/trident-energy/riskregister/pkg/domain/model/config"
)

// Repository is the MySQL-backed implementation of interfaces.Repository.
// It holds a pooled connection; individual requests borrow from the pool
// instead of opening their own connection, which guarantees release on
// every exit path.
type Repository struct {
	db *gorm.DB

	user       *userRepository
	role       *roleRepository
	country    *countryRepository
	risk       *riskRepository
	actionPlan *actionPlanRepository
	stats      *statsRepository
}

// New opens the MySQL connection pool and verifies reachability. A nil
// taxonomy falls back to the production defaults.
func New(ctx context.Context, dsn string, tax *domainConfig.Taxonomy) (*Repository, error) {
	if tax == nil {
		tax = domainConfig.DefaultTaxonomy()
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open mysql connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get database handle")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "database is unreachable")
	}

	return &Repository{
		db:         db,
		user:       &userRepository{db: db},
		role:       &roleRepository{db: db},
		country:    &countryRepository{db: db},
		risk:       &riskRepository{db: db, tax: tax},
		actionPlan: &actionPlanRepository{db: db},
		stats:      &statsRepository{db: db, tax: tax},
	}, nil
}

func (r *Repository) User() interfaces.UserRepository             { return r.user }
func (r *Repository) Role() interfaces.RoleRepository             { return r.role }
func (r *Repository) Country() interfaces.CountryRepository       { return r.country }
func (r *Repository) Risk() interfaces.RiskRepository             { return r.risk }
func (r *Repository) ActionPlan() interfaces.ActionPlanRepository { return r.actionPlan }
func (r *Repository) Stats() interfaces.StatsRepository           { return r.stats }

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return goerr.Wrap(err, "failed to get database handle")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return goerr.Wrap(err, "database is unreachable")
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return goerr.Wrap(err, "failed to get database handle")
	}
	if err := sqlDB.Close(); err != nil {
		return goerr.Wrap(err, "failed to close database handle")
	}
	return nil
}
