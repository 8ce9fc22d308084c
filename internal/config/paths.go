package config

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

// sanitize turns a profile name into a safe directory name.
func sanitize(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "_")
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "default"
	}
	return s
}

// ProfileID names the directory holding a profile's settings. Without an
// explicit profile every installed copy of the binary gets its own, keyed
// by its path.
func ProfileID(profile string) string {
	if p := strings.TrimSpace(profile); p != "" {
		return sanitize(p)
	}
	exe, _ := os.Executable()
	name := strings.TrimSuffix(filepath.Base(exe), filepath.Ext(exe))
	sum := sha1.Sum([]byte(exe))
	return sanitize(name) + "-" + hex.EncodeToString(sum[:4])
}

// ConfigDir is <user config dir>/Match3/<profile id>, with ~/.config
// standing in when the OS reports no config dir.
func ConfigDir(profile string) string {
	root, err := os.UserConfigDir()
	if err != nil || root == "" {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, ".config")
	}
	return filepath.Join(root, "Match3", ProfileID(profile))
}

func ConfigPath(profile, name string) string {
	return filepath.Join(ConfigDir(profile), name)
}
