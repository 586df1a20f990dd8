// ABOUTME: Filesystem locations of the cellar configuration files
// ABOUTME: ~/.cellar/config.yaml is global, ./.cellar.yaml is local; CELLAR_CONFIG overrides the global path

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".cellar"
	globalFileName = "config.yaml"
	localFileName  = ".cellar.yaml"
	logFileName    = "cellar.log"
	configEnvVar   = "CELLAR_CONFIG"
)

// GlobalDir returns the user-global config directory (~/.cellar/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the global config path, honouring CELLAR_CONFIG.
func GlobalConfigFile() string {
	if p := os.Getenv(configEnvVar); p != "" {
		return p
	}
	return filepath.Join(GlobalDir(), globalFileName)
}

// LocalConfigFile returns the project-local config path under root.
func LocalConfigFile(root string) string {
	return filepath.Join(root, localFileName)
}

// LogFile is where logs go while a full-screen front-end owns the terminal.
func LogFile() string {
	return filepath.Join(GlobalDir(), logFileName)
}
