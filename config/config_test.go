package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestSetupDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Setup("")

	require.NoError(t, err)
	require.Equal(t, 3, cfg.Depth)
	require.Equal(t, 4, cfg.Playouts)
	require.Equal(t, 10, cfg.Games)
	require.Equal(t, 1.0, cfg.MaterialWeight)
	require.Equal(t, 1.0, cfg.MobilityWeight)
	require.Equal(t, uint64(0), cfg.Seed)
	require.Equal(t, "experiments", cfg.ResultDir)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestSetupFileOverridesDefaults(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "SEARCH_DEPTH: 5\nTOURNAMENT_GAMES: 2\nSEED: 42\nLOG_LEVEL: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Setup(path)

	require.NoError(t, err)
	require.Equal(t, 5, cfg.Depth)
	require.Equal(t, 2, cfg.Games)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 4, cfg.Playouts, "untouched keys keep their defaults")
}

func TestSetupMissingFile(t *testing.T) {
	viper.Reset()

	_, err := Setup(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}
