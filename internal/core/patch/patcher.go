package patch

import "github.com/expocolorspace/colorspace-cli/internal/core/domain"

// Patcher produces new config file content containing the plugin entry.
type Patcher interface {
	Apply(content []byte, entry domain.PluginEntry) (Result, error)
}

// ForFormat selects the patcher for a config file format: structured parsing
// for JSON, anchored text insertion for the code formats.
func ForFormat(format domain.ConfigFormat) Patcher {
	if format.Structured() {
		return NewStructured()
	}
	return NewText()
}
