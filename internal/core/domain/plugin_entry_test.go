package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPluginEntry_TextFragment_FixedTemplate tests the literal fragment
// inserted into code-format config files
func TestPluginEntry_TextFragment_FixedTemplate(t *testing.T) {
	assert.Equal(t,
		`["expo-color-space-plugin", { "colorSpace": "displayP3" }],`,
		NewPluginEntry(ColorSpaceDisplayP3).TextFragment())

	assert.Equal(t,
		`["expo-color-space-plugin", { "colorSpace": "SRGB" }],`,
		NewPluginEntry(ColorSpaceSRGB).TextFragment())
}

// TestPluginEntry_PluginsDeclaration_FixedTemplate tests the full declaration
// inserted when a code-format file has no plugins list
func TestPluginEntry_PluginsDeclaration_FixedTemplate(t *testing.T) {
	assert.Equal(t,
		`plugins: [["expo-color-space-plugin", { "colorSpace": "SRGB" }]],`,
		NewPluginEntry(ColorSpaceSRGB).PluginsDeclaration())
}

// TestPluginEntry_StructuredElement_Shape tests the array element appended to
// a JSON plugins list
func TestPluginEntry_StructuredElement_Shape(t *testing.T) {
	element := NewPluginEntry(ColorSpaceSRGB).StructuredElement()

	require.Len(t, element, 2)
	assert.Equal(t, PluginIdentifier, element[0])

	options, ok := element[1].(map[string]interface{})
	require.True(t, ok, "Second element should be the options object")
	assert.Equal(t, "SRGB", options["colorSpace"])
	assert.Len(t, options, 1, "Options should carry exactly one field")
}
