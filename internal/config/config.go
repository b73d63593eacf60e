package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/akyairhashvil/aulaplan/internal/util"
	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Export ExportConfig `mapstructure:"export"`
}

// APIConfig locates the lesson-plan backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// StoreConfig selects where the remembered group is kept.
type StoreConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=sqlite redis memory"`
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	File   string `mapstructure:"file"`
}

type UIConfig struct {
	Theme string `mapstructure:"theme" validate:"required"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// Load reads configuration with precedence env > file > defaults. A missing
// file is not an error; an explicitly named one that cannot be read is.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultAPITimeout)
	v.SetDefault("store.backend", StoreSQLite)
	v.SetDefault("store.path", filepath.Join(util.DataDir(AppName), DBFileName))
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", filepath.Join(util.StateDir(AppName), LogFileName))
	v.SetDefault("ui.theme", "default")
	v.SetDefault("export.dir", util.ReportsDir(AppName))

	explicit := path != ""
	if explicit {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Store.Path, &c.Log.File, &c.Export.Dir} {
		if *p == "" || *p == util.StderrLog {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	switch c.Store.Backend {
	case StoreSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("config validation error: store.path is required for the sqlite backend")
		}
	case StoreRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("config validation error: store.redis_addr is required for the redis backend")
		}
	}
	return nil
}
