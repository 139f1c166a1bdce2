package patch

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// Structured patches the JSON config format by parsing, mutating and
// re-serializing the whole document. Key order is preserved as parsed;
// output uses 2-space indentation and ends with a newline.
type Structured struct{}

// NewStructured creates the structured-format patcher.
func NewStructured() *Structured {
	return &Structured{}
}

// Apply appends the plugin entry to the expo.plugins list, creating the expo
// object and the plugins array when absent. The full new content is computed
// in memory; nothing is written here.
func (p *Structured) Apply(content []byte, entry domain.PluginEntry) (Result, error) {
	doc := orderedmap.New()
	if err := json.Unmarshal(content, doc); err != nil {
		return Result{}, fmt.Errorf("failed to parse config as JSON: %w", err)
	}

	expo := orderedmap.New()
	if raw, ok := doc.Get("expo"); ok {
		existing, ok := raw.(orderedmap.OrderedMap)
		if !ok {
			return Result{}, fmt.Errorf(`"expo" exists but is not an object`)
		}
		expo = &existing
	}

	var plugins []interface{}
	if raw, ok := expo.Get("plugins"); ok {
		existing, ok := raw.([]interface{})
		if !ok {
			return Result{}, fmt.Errorf(`"expo"."plugins" exists but is not an array`)
		}
		plugins = existing
	}

	plugins = append(plugins, entry.StructuredElement())
	expo.Set("plugins", plugins)
	doc.Set("expo", *expo)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("failed to serialize config: %w", err)
	}

	return Result{Status: ChangePatched, Content: append(out, '\n')}, nil
}
