// Package config resolves the shell's settings from defaults, a .env file,
// a YAML file in the profile config dir and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const FileName = "shell.yaml"

type Config struct {
	// EngineDirs are searched for the engine library before the system
	// loader path.
	EngineDirs []string `yaml:"engine_dirs"`
	// DiagURL is a developer console websocket; empty disables it.
	DiagURL  string `yaml:"diag_url"`
	DiagFile bool   `yaml:"diag_file"`
	Profile  string `yaml:"profile"`
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

func Default() Config {
	return Config{
		// Android has no writable user config dir outside the app sandbox.
		DiagFile: runtime.GOOS != "android",
		Title:    "Match-3 Game",
		Width:    800,
		Height:   600,
	}
}

// Load builds the effective config for this process. profile, when set,
// wins over MATCH3_PROFILE and selects which profile's shell.yaml is read.
func Load(profile string) (Config, error) {
	return load(".env", profile, os.Getenv)
}

// load reads dotenv first so it can supply MATCH3_* variables (the profile
// included), then overlays the profile's YAML file, then the environment.
// Variables from dotenv never replace ones already set.
func load(dotenv, profile string, getenv func(string) string) (Config, error) {
	if err := LoadDotEnv(dotenv); err != nil {
		return Config{}, err
	}
	chosen := strings.TrimSpace(profile)
	if chosen == "" {
		chosen = strings.TrimSpace(getenv("MATCH3_PROFILE"))
	}
	c := Default()
	c.Profile = chosen
	c, err := LoadFile(c, ConfigPath(chosen, FileName))
	if err != nil {
		return Config{}, err
	}
	c = ApplyEnv(c, getenv)
	c.Profile = chosen
	return c, nil
}

// LoadDotEnv exports the variables of a .env file into the environment
// without overriding ones already set. A missing file is fine.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: %s: %w", path, err)
}

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their base value; a missing file returns base unchanged.
func LoadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	c := base
	if err := yaml.Unmarshal(data, &c); err != nil {
		return base, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overlays MATCH3_* variables read through getenv.
func ApplyEnv(c Config, getenv func(string) string) Config {
	if v := getenv("MATCH3_ENGINE_DIRS"); v != "" {
		c.EngineDirs = nil
		for _, d := range filepath.SplitList(v) {
			if d = strings.TrimSpace(d); d != "" {
				c.EngineDirs = append(c.EngineDirs, d)
			}
		}
	}
	if v := getenv("MATCH3_DIAG_URL"); v != "" {
		c.DiagURL = v
	}
	if v := getenv("MATCH3_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := getenv("MATCH3_DIAG_FILE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DiagFile = b
		}
	}
	return c
}
