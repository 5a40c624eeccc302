// Package yamlutil is the YAML codec for configuration files: strict
// field checking and a size cap on decode, plain encode for writing
// starter configs.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps decoded documents. Config files are tiny; anything
// near this cap is not a config file.
const MaxDocumentSize = 1 << 20

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds size cap")
	ErrNilTarget        = errors.New("yamlutil: nil decode target")
)

// DecodeStrict decodes data into v, rejecting unknown fields so typos in
// config keys surface as errors instead of silently vanishing.
func DecodeStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyDocument
	case len(data) > MaxDocumentSize:
		return fmt.Errorf("%w: %d bytes (cap %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	case v == nil:
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode renders v as a YAML document.
func Encode(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return data, nil
}
