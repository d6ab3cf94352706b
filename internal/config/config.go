package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Политики коллизий при перетаскивании записи в занятую ячейку
const (
	CollisionPolicyReject        = "reject"
	CollisionPolicyLastWriteWins = "last_write_wins"
)

// Хранилища снимка агенды
const (
	SnapshotBackendRedis = "redis"
	SnapshotBackendFile  = "file"
	SnapshotBackendNone  = "none"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Storage  StorageConfig  `toml:"storage"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig параметры prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AgendaConfig параметры сетки расписания
type AgendaConfig struct {
	DayStart        string   `toml:"day_start"`
	DayEnd          string   `toml:"day_end"`
	SlotMinutes     int      `toml:"slot_minutes"`
	CollisionPolicy string   `toml:"collision_policy"`
	SnapshotBackend string   `toml:"snapshot_backend"`
	SnapshotKey     string   `toml:"snapshot_key"`
	SnapshotPath    string   `toml:"snapshot_path"`
	Professionals   []string `toml:"professionals"`
	Notifications   int      `toml:"notifications_limit"`
}

// StorageConfig параметры объектного хранилища (аватары, фото продуктов)
type StorageConfig struct {
	URL          string `toml:"url"`
	PublicURL    string `toml:"public_url"`
	APIKey       string `toml:"api_key"`
	Timeout      int    `toml:"timeout"`
	MaxImageSize int64  `toml:"max_image_size"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon_agenda"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Agenda.DayStart == "" {
		c.Agenda.DayStart = "08:00"
	}
	if c.Agenda.DayEnd == "" {
		c.Agenda.DayEnd = "19:00"
	}
	if c.Agenda.SlotMinutes == 0 {
		c.Agenda.SlotMinutes = 30
	}
	if c.Agenda.CollisionPolicy == "" {
		c.Agenda.CollisionPolicy = CollisionPolicyReject
	}
	if c.Agenda.SnapshotBackend == "" {
		c.Agenda.SnapshotBackend = SnapshotBackendNone
	}
	if c.Agenda.SnapshotKey == "" {
		c.Agenda.SnapshotKey = "agenda:appointments"
	}
	if c.Agenda.Notifications == 0 {
		c.Agenda.Notifications = 100
	}
	if c.Storage.Timeout == 0 {
		c.Storage.Timeout = 10
	}
	if c.Storage.MaxImageSize == 0 {
		c.Storage.MaxImageSize = 5 << 20
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}

	start, err := types.NewTimeStringFromString(c.Agenda.DayStart)
	if err != nil {
		return fmt.Errorf("%w: agenda.day_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Agenda.DayEnd)
	if err != nil {
		return fmt.Errorf("%w: agenda.day_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: agenda.day_start must be before agenda.day_end", ErrInvalidConfig)
	}
	if c.Agenda.SlotMinutes < 5 || c.Agenda.SlotMinutes > 240 {
		return fmt.Errorf("%w: agenda.slot_minutes must be in [5, 240]", ErrInvalidConfig)
	}

	switch c.Agenda.CollisionPolicy {
	case CollisionPolicyReject, CollisionPolicyLastWriteWins:
	default:
		return fmt.Errorf("%w: unknown agenda.collision_policy %q", ErrInvalidConfig, c.Agenda.CollisionPolicy)
	}

	switch c.Agenda.SnapshotBackend {
	case SnapshotBackendNone:
	case SnapshotBackendRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("%w: redis.addr is required for redis snapshot backend", ErrInvalidConfig)
		}
	case SnapshotBackendFile:
		if strings.TrimSpace(c.Agenda.SnapshotPath) == "" {
			return fmt.Errorf("%w: agenda.snapshot_path is required for file snapshot backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown agenda.snapshot_backend %q", ErrInvalidConfig, c.Agenda.SnapshotBackend)
	}

	return nil
}
