package importer

import (
	"errors"
	"path/filepath"
	"strings"
)

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if ext != ".csv" {
		return errors.New("only .csv files are allowed")
	}

	return nil
}
