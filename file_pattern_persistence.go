package router

import (
	"encoding/json"
	"fmt"
	"os"
)

// FilePatternPersistence implements PatternPersistence using a JSON file.
type FilePatternPersistence struct {
	filepath string
}

// NewFilePatternPersistence creates a file-based persistence handler.
func NewFilePatternPersistence(filepath string) *FilePatternPersistence {
	return &FilePatternPersistence{
		filepath: filepath,
	}
}

// Load reads the learned patterns from the file. A missing file is not an
// error; it means nothing has been learned yet.
func (f *FilePatternPersistence) Load() ([]LearnedPattern, error) {
	if _, err := os.Stat(f.filepath); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read patterns from file %s: %w", f.filepath, err)
	}

	var patterns []LearnedPattern
	if err := json.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patterns from file %s: %w", f.filepath, err)
	}

	return patterns, nil
}

// Save writes the learned patterns to the file.
func (f *FilePatternPersistence) Save(patterns []LearnedPattern) error {
	data, err := json.Marshal(patterns)
	if err != nil {
		return fmt.Errorf("failed to marshal patterns: %w", err)
	}

	if err := os.WriteFile(f.filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write patterns to file %s: %w", f.filepath, err)
	}

	return nil
}
