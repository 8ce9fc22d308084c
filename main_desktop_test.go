//go:build !android && !ios

package main

import (
	"os"
	"path/filepath"
	"testing"

	"match3/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfile(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("AppData", filepath.Join(dir, "AppData"))
	for _, k := range []string{"MATCH3_ENGINE_DIRS", "MATCH3_DIAG_URL", "MATCH3_PROFILE", "MATCH3_DIAG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	path := config.ConfigPath("dev", config.FileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("engine_dirs: [/from-yaml]\ndiag_url: ws://yaml/diag\n"), 0o644))
}

func execute(t *testing.T, args ...string) config.Config {
	t.Helper()
	var got config.Config
	ran := false
	cmd := newRootCmd(func(c config.Config) error {
		got = c
		ran = true
		return nil
	})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	require.True(t, ran)
	return got
}

func TestProfileFlagSelectsProfileFile(t *testing.T) {
	setupProfile(t)

	c := execute(t, "--profile", "dev")
	assert.Equal(t, "dev", c.Profile)
	assert.Equal(t, []string{"/from-yaml"}, c.EngineDirs)
	assert.Equal(t, "ws://yaml/diag", c.DiagURL)
}

func TestFlagsOverrideProfileFile(t *testing.T) {
	setupProfile(t)

	c := execute(t, "--profile", "dev", "--engine-dir", "/a", "--engine-dir", "/b", "--diag-url", "ws://flag/diag")
	assert.Equal(t, "dev", c.Profile)
	assert.Equal(t, []string{"/a", "/b"}, c.EngineDirs)
	assert.Equal(t, "ws://flag/diag", c.DiagURL)
}

func TestNoProfileIgnoresOtherProfiles(t *testing.T) {
	setupProfile(t)

	c := execute(t)
	assert.Empty(t, c.EngineDirs)
	assert.Empty(t, c.DiagURL)
}
