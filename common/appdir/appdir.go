package appdir

import (
	"os"
	"path/filepath"
)

const configDir = ".rtxcli"

// Dir returns the per-user directory holding CLI state (credential, telemetry
// timestamps).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDir), nil
}

// Setup creates the state directory if it does not exist yet.
func Setup() error {
	fullDir, err := Dir()
	if err != nil {
		return err
	}

	return os.MkdirAll(fullDir, 0755)
}
