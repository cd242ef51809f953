package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SaveFile writes the report as JSON into dir (or the working directory when
// dir is empty) and returns the path. Filenames carry a timestamp and a short
// random suffix so repeated runs never clobber each other.
func (r Report) SaveFile(dir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	random := uuid.New().String()[:8]
	filename := fmt.Sprintf("report_%s_%s.json", timestamp, random)
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", filename, err)
	}

	return filename, nil
}
