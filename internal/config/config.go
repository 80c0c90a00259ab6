package config

import (
	"runtime"
)

type Config struct {
	DBPath       string
	Workers      int
	Verbose      bool
	ImportRoot   string
	ContactsDir  string
	SettingsPath string
	HistoryLimit int

	// APIToken, when set, gates the HTTP surface behind a bearer token
	APIToken string
}

func DefaultConfig() *Config {
	return &Config{
		DBPath:       "qrscan.db",
		Workers:      runtime.NumCPU() * 2, // import is I/O bound, oversubscribe
		ContactsDir:  "contacts",
		SettingsPath: "settings.json",
		HistoryLimit: 500,
	}
}
