package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gtasync/internal/bootstrap/config"
	"gtasync/internal/bootstrap/database"
	"gtasync/internal/bootstrap/logging"
	gtaclient "gtasync/internal/infrastructure/gta"
	sqliterepo "gtasync/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "gtasync/internal/infrastructure/persistence/sqlite/uow"
	settingsinfra "gtasync/internal/infrastructure/settings"
	"gtasync/internal/ports"
	syncusecase "gtasync/internal/usecase/sync"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewInterventionRepository,
			fx.As(new(ports.InterventionRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewSyncLogRepository,
			fx.As(new(ports.SyncLogSink)),
		),
	),
	fx.Provide(
		fx.Annotate(
			settingsinfra.NewSQLiteSettings,
			fx.As(new(ports.SettingsStore)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(provideRemoteSource),
	fx.Provide(syncusecase.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideRemoteSource(cfg config.Config) ports.RemoteSource {
	return gtaclient.NewClient(cfg.GTA)
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}
