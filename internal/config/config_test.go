package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigValue(t *testing.T) {
	t.Setenv("HUB_TEST_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "HUB_TEST_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "HUB_TEST_KEY", "default"))
	assert.Equal(t, "default", getConfigValue("", "HUB_TEST_MISSING", "default"))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("", "HUB_TEST_DURATION_MISSING", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	_, err = parseDurationValue("not-a-duration", "HUB_TEST_DURATION_MISSING", "15s")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	abs, err := expandPath("some/relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	expanded, err := expandPath("~/hub-data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "hub-data"), expanded)
}

func TestLoadEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")

	content := "# comment\nHUB_TEST_ENVFILE=hello\nHUB_TEST_QUOTED=\"world\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0644))

	t.Setenv("HUB_TEST_ENVFILE", "")
	t.Setenv("HUB_TEST_QUOTED", "")
	os.Unsetenv("HUB_TEST_ENVFILE")
	os.Unsetenv("HUB_TEST_QUOTED")

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "hello", os.Getenv("HUB_TEST_ENVFILE"))
	assert.Equal(t, "world", os.Getenv("HUB_TEST_QUOTED"))
}

func TestLoadEnvFileInvalidLine(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("NOT A PAIR\n"), 0644))

	assert.Error(t, loadEnvFile(envPath))
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		App:     AppConfig{Environment: "development"},
		Logger:  LoggerConfig{Level: "info"},
		Admin:   AdminConfig{Username: "admin", Password: "secret"},
		Storage: StorageConfig{DataPath: "/tmp/data", UploadsPath: "/tmp/uploads"},
	}
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.App.Environment = "qa"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Logger.Level = "verbose"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Admin.Password = ""
	assert.Error(t, bad.Validate())
}
