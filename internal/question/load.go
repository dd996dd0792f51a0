package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSet reads, parses, and validates a benchmark set file. The format
// is chosen by extension: ".json" parses as JSON, everything else as
// YAML. Unknown fields and multiple documents are rejected.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read benchmark set: %w", err)
	}
	set, err := parseSet(data, path)
	if err != nil {
		return Set{}, err
	}
	normalized, err := NormalizeSet(set)
	if err != nil {
		return Set{}, err
	}
	return normalized, nil
}

func parseSet(data []byte, path string) (Set, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONSet(data)
	}
	return parseYAMLSet(data)
}

func parseJSONSet(data []byte) (Set, error) {
	var set Set
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse json: %w", err)
	}
	return set, nil
}

func parseYAMLSet(data []byte) (Set, error) {
	var set Set
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Set{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Set{}, fmt.Errorf("parse yaml: %w", err)
	}
	return set, nil
}
