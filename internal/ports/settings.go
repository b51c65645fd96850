package ports

import "context"

// Well-known settings keys. Values are stored as strings and interpreted by
// the reader.
const (
	SettingAPIKey       = "APIKey"
	SettingPageSize     = "PageSize"
	SettingSyncEnabled  = "SyncEnabled"
	SettingLastSyncDate = "LastSyncDate"
)

// SettingsStore is a key-value configuration table. The sync engine only
// reads it; writes happen through external configuration actions (the
// settings CLI command).
type SettingsStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	All(ctx context.Context) (map[string]string, error)
}
