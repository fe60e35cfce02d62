package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "db.local"
port = 5433
user = "scb"
password = "secret"
dbname = "scb_booking"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "scb-test"

[user_service]
url = "http://identity:8081"
timeout = 3

[mailer]
enabled = true
host = "smtp.example.com"
port = "465"
from = "noreply@example.com"
admin_emails = ["a@example.com", "b@example.com"]

[filestore]
enabled = true
cloud_name = "demo"
folder = "receipts"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://identity:8081", cfg.UserService.URL)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Mailer.AdminEmails)
	assert.Equal(t, "demo", cfg.Filestore.CloudName)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "scb_booking"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "scb-booking-service", cfg.Metrics.ServiceName)
	assert.Equal(t, "587", cfg.Mailer.Port)
	assert.Equal(t, 30, cfg.Filestore.Timeout)
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_MailerEnabledWithoutHost(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "scb_booking"

[mailer]
enabled = true
from = "noreply@example.com"
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_FilestoreEnabledWithoutCloudName(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "scb_booking"

[filestore]
enabled = true
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "scb",
		Password: "secret",
		DBName:   "scb_booking",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=scb password=secret dbname=scb_booking sslmode=disable", dsn)
}

func TestMailerConfig_PasswordFromEnv(t *testing.T) {
	t.Setenv("SMTP_PASSWORD", "env-secret")

	assert.Equal(t, "env-secret", MailerConfig{}.Password())
}
