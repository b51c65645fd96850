package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gtasync/internal/infrastructure/persistence/sqlite/model"
)

func TestNewInitSchemaClose(t *testing.T) {
	dir := t.TempDir()

	configFile := filepath.Join(dir, "config.yaml")
	configBody := "database:\n  dsn: " + filepath.Join(dir, "state", "gtasync.sqlite") + "\n"
	if err := os.WriteFile(configFile, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := context.Background()
	app, err := New(ctx, configFile)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = app.Close(ctx)
	})

	if app.Config.App.Name != "gtasync" {
		t.Fatalf("default app name = %q", app.Config.App.Name)
	}
	if app.Config.GTA.BaseURL == "" {
		t.Fatalf("default gta base_url missing")
	}

	if err := app.InitSchema(ctx); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	for _, table := range []any{&model.Intervention{}, &model.SyncLogEntry{}, &model.Setting{}} {
		if !app.DB.Migrator().HasTable(table) {
			t.Fatalf("missing table for %T", table)
		}
	}
}
