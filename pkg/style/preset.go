package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseOverrides decodes a style preset. YAML is a superset of JSON, so both
// formats are accepted. Unknown keys are rejected.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Overrides{}, errors.Join(ErrInvalidPreset, err)
	}
	return o, nil
}

// LoadOverrides reads and decodes a preset file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %s: %v", ErrReadPreset, path, err)
	}
	return ParseOverrides(data)
}
