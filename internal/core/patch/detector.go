package patch

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// Detector decides whether the plugin entry is already registered in a
// configuration file. It exists to keep patching idempotent: a file is never
// patched twice.
type Detector struct{}

// NewDetector creates a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Present reports whether the plugin entry already exists in the file.
//
// For the structured format the plugins list is inspected: a bare identifier
// string matches, and so does an array whose first element is the identifier,
// whatever its options say. For the code formats this is a plain substring
// search over the raw text, so an identifier mentioned in a comment or an
// unrelated string also counts as present.
func (d *Detector) Present(file domain.ConfigFile) (bool, error) {
	if file.Format.Structured() {
		return d.structuredPresent(file)
	}
	return bytes.Contains(file.Content, []byte(domain.PluginIdentifier)), nil
}

func (d *Detector) structuredPresent(file domain.ConfigFile) (bool, error) {
	doc := orderedmap.New()
	if err := json.Unmarshal(file.Content, doc); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", file.Path, err)
	}

	raw, ok := doc.Get("expo")
	if !ok {
		return false, nil
	}
	expo, ok := raw.(orderedmap.OrderedMap)
	if !ok {
		return false, nil
	}

	raw, ok = expo.Get("plugins")
	if !ok {
		return false, nil
	}
	plugins, ok := raw.([]interface{})
	if !ok {
		return false, nil
	}

	for _, element := range plugins {
		switch v := element.(type) {
		case string:
			if v == domain.PluginIdentifier {
				return true, nil
			}
		case []interface{}:
			if len(v) > 0 {
				if name, ok := v[0].(string); ok && name == domain.PluginIdentifier {
					return true, nil
				}
			}
		}
	}

	return false, nil
}
