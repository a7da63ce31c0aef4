package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/award/parkscout/cmd/parkscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("help prints usage without error", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		err := m.Run(context.Background(), []string{"--help"}, bytes.NewReader(nil), stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "explore")
		assert.Contains(t, stdout.String(), "states")
	})

	t.Run("explore requires an API key", func(t *testing.T) {
		t.Setenv("MAPQUEST_API_KEY", "")
		t.Setenv("PARKSCOUT_CACHE_DIR", t.TempDir())

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		m.ConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		err := m.Run(context.Background(), []string{"explore"}, bytes.NewReader(nil), stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
		assert.Contains(t, stderr.String(), "MAPQUEST_API_KEY")
	})

	t.Run("invalid config timeout is an error", func(t *testing.T) {
		t.Setenv("PARKSCOUT_CACHE_DIR", t.TempDir())

		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("timeout: soon\n"), 0644))

		m := main.NewMain()
		m.ConfigPath = configPath

		err := m.Run(context.Background(), []string{"states"}, bytes.NewReader(nil), &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})
}
