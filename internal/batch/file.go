// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// File is the on-disk list of equations to solve.
type File struct {
	Equations []string `yaml:"equations"`
}

// ResultFile is the on-disk representation of a finished batch.
type ResultFile struct {
	Source    string    `yaml:"source,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
	Summary   `yaml:",inline"`
}

// ReadFile loads a batch file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(f.Equations) == 0 {
		return nil, fmt.Errorf("batch file %s lists no equations", path)
	}
	return &f, nil
}

// WriteResults saves summary to path as YAML.
func WriteResults(path, source string, summary Summary) error {
	rf := ResultFile{
		Source:    source,
		Timestamp: time.Now().UTC(),
		Summary:   summary,
	}
	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResults loads a previously written results file.
func ReadResults(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return &rf, nil
}

// ResultsPath returns the default output path for input:
// "eqs.yaml" becomes "eqs-results.yaml" in the same directory.
func ResultsPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-results.yaml"
}
