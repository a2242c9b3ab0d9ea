package config

import (
	"os"
	"runtime"
)

// envVars are the variables that move cellgrid's directories
var envVars = []string{"APPDATA", "LOCALAPPDATA", "XDG_CONFIG_HOME"}

// Env is the part of the host environment that decides where cellgrid keeps
// its configuration and its layout database. Tests build one by hand for
// each operating system.
type Env struct {
	GOOS string
	Vars map[string]string
	Home string // empty when the home directory is unknown
}

// HostEnv snapshots the running process
func HostEnv() Env {
	env := Env{GOOS: runtime.GOOS, Vars: make(map[string]string, len(envVars))}
	for _, key := range envVars {
		if v, ok := os.LookupEnv(key); ok {
			env.Vars[key] = v
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		env.Home = home
	}
	return env
}

func (e Env) get(key string) string {
	return e.Vars[key]
}
