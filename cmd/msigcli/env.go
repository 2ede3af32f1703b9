package main

import (
	"os"
	"path/filepath"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// homeDir returns the default location of the database.
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return env("MSIGCLI_HOME", filepath.Join(home, ".msigcli"))
	}
	return env("MSIGCLI_HOME", ".msigcli")
}
