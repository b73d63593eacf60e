package config

import "time"

// Application identity.
const (
	AppName     = "aulaplan"
	DBFileName  = "aulaplan.db"
	LogFileName = "aulaplan.log"
	EnvPrefix   = "AULAPLAN"
)

// Backend defaults.
const (
	DefaultBaseURL    = "http://localhost:5000/api"
	DefaultAPITimeout = 10 * time.Second
)

// Remembered-selection storage.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"

	// SettingSelectedGroup is the key holding the last selected group id.
	SettingSelectedGroup = "selected_group_id"

	// SettingTheme holds the theme picked in the UI; it overrides ui.theme.
	SettingTheme = "ui_theme"

	// RedisKeyPrefix namespaces keys in a shared redis database.
	RedisKeyPrefix = "aulaplan:"
)

// UI timings.
const (
	ToastDuration = 3 * time.Second
	SyncAgeTick   = 30 * time.Second
)
