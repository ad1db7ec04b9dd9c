package config

import (
	"os"
	"path/filepath"
)

const (
	appDir       = "taskpad"
	textDataFile = "tasks.txt"
	sqliteFile   = "tasks.db"
)

func defaultBaseDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, appDir), nil
}

func dataFilename(base, backend string) string {
	if backend == "sqlite" {
		return filepath.Join(base, sqliteFile)
	}
	return filepath.Join(base, textDataFile)
}
