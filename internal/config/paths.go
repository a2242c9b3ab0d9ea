package config

import (
	"path/filepath"
)

const (
	appName   = "cellgrid"
	storeFile = "layouts.db"
)

// ProjectConfigPath returns the project-level configuration file
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ".cellgrid", "cellgrid.yaml")
}

// ConfigDir is the per-user configuration directory, or "" when the
// environment does not name one:
//
//	windows  %APPDATA%\cellgrid
//	darwin   ~/Library/Application Support/cellgrid
//	other    $XDG_CONFIG_HOME/cellgrid or ~/.config/cellgrid
func (e Env) ConfigDir() string {
	switch e.GOOS {
	case "windows":
		if appData := e.get("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return ""
	case "darwin":
		if e.Home == "" {
			return ""
		}
		return filepath.Join(e.Home, "Library", "Application Support", appName)
	}
	if xdg := e.get("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if e.Home == "" {
		return ""
	}
	return filepath.Join(e.Home, ".config", appName)
}

// CacheDir is where the layout database lives by default. Without a home
// directory the path is relative to the working directory.
func (e Env) CacheDir() string {
	switch e.GOOS {
	case "windows":
		if local := e.get("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, appName)
		}
		return filepath.Join(e.Home, "."+appName)
	case "darwin":
		return filepath.Join(e.Home, "Library", "Caches", appName)
	}
	return filepath.Join(e.Home, ".cache", appName)
}

// StorePath is the default layout database file
func (e Env) StorePath() string {
	return filepath.Join(e.CacheDir(), storeFile)
}

// DefaultStorePath returns the layout database path of the current user
func DefaultStorePath() string {
	return HostEnv().StorePath()
}
