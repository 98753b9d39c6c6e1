// ABOUTME: Standard filesystem paths for termflow configuration
// ABOUTME: Resolves the user config dir for global and .termflow.yaml for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName   = "termflow"
	projectFileName = ".termflow.yaml"
)

// GlobalDir returns the user-global config directory
// ($XDG_CONFIG_HOME/termflow or the platform equivalent).
func GlobalDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+globalDirName)
	}
	return filepath.Join(base, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
