// Package yamlio reads and writes the pipeline's structured key-value files
// (schema descriptor, drift report).
package yamlio

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"netsentry/internal/errors"
)

// ReadFile decodes a YAML file into out. Unknown fields are rejected when out
// is a struct, so shape mismatches fail at load time instead of deep inside
// the pipeline.
func ReadFile(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}
	return nil
}

// WriteFile encodes content as YAML at path, creating parent directories.
func WriteFile(path string, content interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Persistence("failed to create report directory", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Persistence("failed to create "+path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(content); err != nil {
		return errors.Persistence("failed to encode "+path, err)
	}
	return nil
}
