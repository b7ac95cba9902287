package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"roster/config"
	"roster/internal/domain/lifecycle"
	"roster/internal/errors"

	"go.uber.org/fx"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and wires its lifecycle: connectivity is
// probed and schema migrations applied on start, the pool closed on stop.
func New(params Params) (*gorm.DB, error) {
	pgCfg := params.Config.Postgres
	if pgCfg == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn(pgCfg)), newGormConfig(params.Logger, params.Config))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if pgCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pgCfg.MaxOpenConns)
	}
	if pgCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pgCfg.MaxIdleConns)
	}
	if pgCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pgCfg.ConnMaxLifetime)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := migrate(ctx, sqlDB, params.Logger); err != nil {
				return errors.Wrap(err, "failed to run migrations")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// newGormConfig builds the gorm settings shared by every connection.
// TranslateError must stay off: the driver's translation replaces a unique
// violation's *pgconn.PgError with the bare gorm.ErrDuplicatedKey sentinel,
// which strips the constraint name that duplicateKeyField needs to report
// which account field collided.
func newGormConfig(logger *slog.Logger, cfg *config.Config) *gorm.Config {
	return &gorm.Config{
		// Per-statement implicit transactions are disabled; multi-step atomic
		// operations go through the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}
}

func dsn(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.UserName, cfg.Password, cfg.DBName, sslMode,
	)
}
