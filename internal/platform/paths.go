package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// SettingsPath returns the settings file location beside the running
// executable. When the executable cannot be resolved the user config
// directory is used instead.
func SettingsPath(appName, fileName string) (string, error) {
	executable, err := os.Executable()
	if err == nil {
		if resolved, resolveErr := filepath.EvalSymlinks(executable); resolveErr == nil {
			executable = resolved
		}
		return filepath.Join(filepath.Dir(executable), fileName), nil
	}

	configDir, configErr := os.UserConfigDir()
	if configErr != nil {
		return "", fmt.Errorf("resolve settings path: %w", configErr)
	}
	return filepath.Join(configDir, appName, fileName), nil
}
