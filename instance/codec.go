// SPDX-License-Identifier: MIT

package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/voyage/market"
	"gopkg.in/yaml.v3"
)

// Decode reads one YAML document and validates the instance it holds.
func Decode(r io.Reader) (*market.Instance, error) {
	var in market.Instance
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("instance: decode: %w", err)
	}
	if err := market.Validate(&in); err != nil {
		return nil, fmt.Errorf("instance: decode: %w", err)
	}

	return &in, nil
}

// Encode writes in as one YAML document.
func Encode(w io.Writer, in *market.Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}

	return enc.Close()
}

// Load reads and validates the instance stored at path.
func Load(path string) (*market.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", path, err)
	}
	in, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Save writes in to path, replacing any existing file.
func Save(path string, in *market.Instance) error {
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("instance: save %s: %w", path, err)
	}

	return nil
}
