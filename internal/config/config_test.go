package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/talentsift/sift/internal/config"
)

const baseConfig = `shutdown_timeout = "30s"
version = "1.2.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "10m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "sift"
user = "sift"
password = "sift"
ssl_mode = "disable"

[storage]
container_name = "resumes"
connection_string = "DefaultEndpointsProtocol=http;AccountName=siftstore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/siftstore;"

[mailer]
host = "smtp.example.com"
username = "jobs@example.com"
password = "secret"
recipient = "recruiting@example.com"

[evaluation]
model = "claude-sonnet-4-5"
max_tokens = 1024

[extraction]
min_text_length = 300
render_dpi = 300

[api]
base_path = "/api"
max_upload_size = "25MB"

[api.pagination]
default_page_size = 25
max_page_size = 50
`

const overlayConfig = `[server]
port = 9090

[database]
host = "prodhost"
`

// minimalConfig provides the minimum fields required for validation to
// pass (db name, db user, storage connection string).
const minimalConfig = `[database]
name = "sift"
user = "sift"

[storage]
connection_string = "conn"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "sift" {
		t.Errorf("database name: got %q", cfg.Database.Name)
	}
	if cfg.Storage.ContainerName != "resumes" {
		t.Errorf("container name: got %q", cfg.Storage.ContainerName)
	}
	if !cfg.Mailer.Configured() {
		t.Error("mailer should be configured")
	}
	if cfg.API.Pagination.MaxPageSize != 50 {
		t.Errorf("max page size: got %d, want 50", cfg.API.Pagination.MaxPageSize)
	}
	if cfg.Version != "1.2.0" {
		t.Errorf("version: got %q", cfg.Version)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv(config.EnvSiftEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("overlay server port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("overlay database host: got %q", cfg.Database.Host)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("base server host should be preserved, got %q", cfg.Server.Host)
	}
}

func TestLoadMinimalDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("default shutdown timeout: got %q", cfg.ShutdownTimeout)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("default base path: got %q", cfg.API.BasePath)
	}
	if cfg.Extraction.MinTextLength != 300 {
		t.Errorf("default min text length: got %d", cfg.Extraction.MinTextLength)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)
	t.Setenv("SIFT_SERVER_PORT", "3000")
	t.Setenv("SIFT_DB_HOST", "envhost")
	t.Setenv("SIFT_EVALUATOR_API_KEY", "key-from-env")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("env server port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.Database.Host != "envhost" {
		t.Errorf("env database host: got %q", cfg.Database.Host)
	}
	if cfg.Evaluation.APIKey != "key-from-env" {
		t.Errorf("env api key: got %q", cfg.Evaluation.APIKey)
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := cfg.API.MaxUploadSizeBytes(); got != 25*1024*1024 {
		t.Errorf("max upload size: got %d, want %d", got, 25*1024*1024)
	}
}

func TestLoadRejectsInvalidShutdownTimeout(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `shutdown_timeout = "not-a-duration"`)
	chdir(t, dir)

	if _, err := config.Load(); err == nil {
		t.Error("expected error for invalid shutdown_timeout")
	}
}
