package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stacker/parameter"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", cfg.SettingsPath)
	assert.Equal(t, parameter.FrameUpdateInterval, cfg.TickRate)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadConfig_EnvThenFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STACKER_SETTINGS", "/etc/stacker.yaml")
	t.Setenv("STACKER_TICK_RATE", "20ms")
	t.Setenv("STACKER_DEBUG", "true")

	cfg, err := loadConfig([]string{"-tick", "33ms", "-metrics", ":9100"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/stacker.yaml", cfg.SettingsPath)
	assert.Equal(t, 33*time.Millisecond, cfg.TickRate, "flags win over environment")
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoadConfig_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := loadConfig([]string{"-tick", "0s"})
	assert.Error(t, err)

	_, err = loadConfig([]string{"-unknown"})
	assert.Error(t, err)

	t.Setenv("STACKER_TICK_RATE", "fast")
	_, err = loadConfig(nil)
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
