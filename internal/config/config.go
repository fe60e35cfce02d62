package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (SMTP пароль, ключ файлового хранилища) берутся из окружения,
// а не из файла конфигурации.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	UserService UserServiceConfig `toml:"user_service"`
	Mailer      MailerConfig      `toml:"mailer"`
	Filestore   FilestoreConfig   `toml:"filestore"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// UserServiceConfig настройки клиента identity-сервиса
type UserServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// MailerConfig настройки SMTP рассылки.
// Пароль берется из переменной окружения SMTP_PASSWORD.
type MailerConfig struct {
	Enabled     bool     `toml:"enabled"`
	Host        string   `toml:"host"`
	Port        string   `toml:"port"`
	From        string   `toml:"from"`
	AdminEmails []string `toml:"admin_emails"`
	// TestEmailOnly, если задан, перенаправляет все письма на этот адрес
	TestEmailOnly string `toml:"test_email_only"`
}

// Password возвращает SMTP пароль из окружения
func (m MailerConfig) Password() string {
	return os.Getenv("SMTP_PASSWORD")
}

// FilestoreConfig настройки хранилища изображений чеков.
// Ключи берутся из переменных окружения FILESTORE_API_KEY / FILESTORE_API_SECRET.
type FilestoreConfig struct {
	Enabled   bool   `toml:"enabled"`
	CloudName string `toml:"cloud_name"`
	Folder    string `toml:"folder"`
	Timeout   int    `toml:"timeout"`
}

// APIKey возвращает API ключ хранилища из окружения
func (f FilestoreConfig) APIKey() string {
	return os.Getenv("FILESTORE_API_KEY")
}

// APISecret возвращает секрет хранилища из окружения
func (f FilestoreConfig) APISecret() string {
	return os.Getenv("FILESTORE_API_SECRET")
}

// Load загружает конфигурацию из TOML файла и валидирует обязательные поля
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if c.Mailer.Enabled && (c.Mailer.Host == "" || c.Mailer.From == "") {
		return fmt.Errorf("config: mailer host and from are required when mailer is enabled")
	}
	if c.Filestore.Enabled && c.Filestore.CloudName == "" {
		return fmt.Errorf("config: filestore cloud_name is required when filestore is enabled")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "scb-booking-service"
	}
	if c.UserService.Timeout == 0 {
		c.UserService.Timeout = 5
	}
	if c.Mailer.Port == "" {
		c.Mailer.Port = "587"
	}
	if c.Filestore.Timeout == 0 {
		c.Filestore.Timeout = 30
	}
}
