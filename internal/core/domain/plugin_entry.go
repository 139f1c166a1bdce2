package domain

import "fmt"

// PluginIdentifier is the package name registered in the plugins list.
const PluginIdentifier = "expo-color-space-plugin"

// PluginEntry is the single plugins-list entry this tool manages: the plugin
// identifier paired with a one-field options record.
type PluginEntry struct {
	colorSpace ColorSpace
}

// NewPluginEntry creates a PluginEntry for the chosen color space.
func NewPluginEntry(colorSpace ColorSpace) PluginEntry {
	return PluginEntry{colorSpace: colorSpace}
}

// ColorSpace returns the color space carried in the entry's options.
func (e PluginEntry) ColorSpace() ColorSpace {
	return e.colorSpace
}

// StructuredElement returns the entry as the array element appended to a JSON
// plugins list: [identifier, {"colorSpace": value}].
func (e PluginEntry) StructuredElement() []interface{} {
	return []interface{}{
		PluginIdentifier,
		map[string]interface{}{"colorSpace": e.colorSpace.String()},
	}
}

// TextFragment returns the literal text inserted into code-format config
// files. The trailing comma is the list separator; spacing is fixed so the
// inserted fragment is byte-identical for a given color space.
func (e PluginEntry) TextFragment() string {
	return fmt.Sprintf(`["%s", { "colorSpace": "%s" }],`, PluginIdentifier, e.colorSpace)
}

// PluginsDeclaration returns a full plugins-list declaration containing only
// this entry, used when a code-format file has no plugins list to extend.
func (e PluginEntry) PluginsDeclaration() string {
	return fmt.Sprintf(`plugins: [["%s", { "colorSpace": "%s" }]],`, PluginIdentifier, e.colorSpace)
}
