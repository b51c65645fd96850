package settings

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"gtasync/internal/infrastructure/persistence/sqlite/model"
	"gtasync/internal/ports"
)

func setupSettings(t *testing.T) *SQLiteSettings {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "settings.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.Setting{}); err != nil {
		t.Fatalf("auto migrate settings: %v", err)
	}

	return NewSQLiteSettings(db)
}

func TestSettingsSetGet(t *testing.T) {
	store := setupSettings(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, ports.SettingAPIKey); err != nil || found {
		t.Fatalf("Get() before set: found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, ports.SettingAPIKey, "k1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, found, err := store.Get(ctx, ports.SettingAPIKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || value != "k1" {
		t.Fatalf("Get() = %q found=%v", value, found)
	}

	if err := store.Set(ctx, ports.SettingAPIKey, "k2"); err != nil {
		t.Fatalf("Set(update) error = %v", err)
	}
	value, _, err = store.Get(ctx, ports.SettingAPIKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "k2" {
		t.Fatalf("Get() after update = %q", value)
	}
}

func TestSettingsAll(t *testing.T) {
	store := setupSettings(t)
	ctx := context.Background()

	if err := store.Set(ctx, ports.SettingPageSize, "25"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, ports.SettingSyncEnabled, "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if all[ports.SettingPageSize] != "25" || all[ports.SettingSyncEnabled] != "true" {
		t.Fatalf("All() = %v", all)
	}
}
