package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encode serializes the report in the persisted JSON shape.
func Encode(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// Decode parses a persisted report.
func Decode(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}

// Save writes the report to path. An empty path picks DefaultFilename in
// the working directory.
func Save(r *Report, path string) (string, error) {
	if path == "" {
		path = DefaultFilename(r.Name)
	}
	data, err := Encode(r)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

// DefaultFilename builds report_<Name>_<timestamp>.json.
func DefaultFilename(name string) string {
	safe := strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("report_%s_%s.json", safe, time.Now().Format("20060102_150405"))
}
