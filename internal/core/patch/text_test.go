package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// TestText_Apply_UnquotedPluginsAnchor tests that the entry is inserted as
// the first element right after the plugins opening token
func TestText_Apply_UnquotedPluginsAnchor(t *testing.T) {
	patcher := NewText()
	entry := domain.NewPluginEntry(domain.ColorSpaceDisplayP3)

	result, err := patcher.Apply([]byte(`module.exports = { expo: { plugins: [] } };`), entry)

	require.NoError(t, err)
	require.Equal(t, ChangePatched, result.Status)
	assert.Equal(t,
		`module.exports = { expo: { plugins: [["expo-color-space-plugin", { "colorSpace": "displayP3" }],] } };`,
		string(result.Content))
}

// TestText_Apply_QuotedPluginsAnchor tests the quoted-key form of the anchor
func TestText_Apply_QuotedPluginsAnchor(t *testing.T) {
	patcher := NewText()
	entry := domain.NewPluginEntry(domain.ColorSpaceSRGB)

	result, err := patcher.Apply([]byte(`module.exports = { expo: { "plugins": ["expo-camera"] } };`), entry)

	require.NoError(t, err)
	require.Equal(t, ChangePatched, result.Status)
	assert.Equal(t,
		`module.exports = { expo: { "plugins": [["expo-color-space-plugin", { "colorSpace": "SRGB" }],"expo-camera"] } };`,
		string(result.Content))
}

// TestText_Apply_ExpoObjectAnchor tests the fallback: a brand-new plugins
// declaration is inserted right after the expo object opens
func TestText_Apply_ExpoObjectAnchor(t *testing.T) {
	patcher := NewText()
	entry := domain.NewPluginEntry(domain.ColorSpaceSRGB)

	result, err := patcher.Apply([]byte(`module.exports = { expo: { name: "X" } };`), entry)

	require.NoError(t, err)
	require.Equal(t, ChangePatched, result.Status)
	assert.Equal(t,
		`module.exports = { expo: {plugins: [["expo-color-space-plugin", { "colorSpace": "SRGB" }]], name: "X" } };`,
		string(result.Content))
}

// TestText_Apply_NoAnchor tests the graceful-degradation path: no mutation,
// no content, no error
func TestText_Apply_NoAnchor(t *testing.T) {
	patcher := NewText()
	entry := domain.NewPluginEntry(domain.ColorSpaceDisplayP3)

	result, err := patcher.Apply([]byte(`export default {};`), entry)

	require.NoError(t, err)
	assert.Equal(t, ChangeNoAnchor, result.Status)
	assert.Nil(t, result.Content)
}

// TestText_Apply_FirstAnchorWins tests the rule ordering: an existing plugins
// list is extended even when the expo-object anchor would also match
func TestText_Apply_FirstAnchorWins(t *testing.T) {
	patcher := NewText()
	entry := domain.NewPluginEntry(domain.ColorSpaceDisplayP3)

	result, err := patcher.Apply([]byte(`module.exports = { expo: { plugins: [], name: "X" } };`), entry)

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(result.Content), "plugins"),
		"No second plugins declaration may be introduced")
	assert.Contains(t, string(result.Content), `plugins: [["expo-color-space-plugin"`)
}

// TestText_PropertyBased_BytePreservation tests that removing the inserted
// fragment always restores the original content byte-for-byte
func TestText_PropertyBased_BytePreservation(t *testing.T) {
	hosts := []string{
		`module.exports = { expo: { plugins: [] } };`,
		`module.exports = { expo: { plugins: ["expo-camera", ["expo-font", {}]] } };`,
		"import { ExpoConfig } from 'expo/config';\n\nconst config: ExpoConfig = {\n  name: 'demo',\n  plugins: [\n    'expo-camera',\n  ],\n};\n\nexport default config;\n",
		`module.exports = { expo: { "plugins": [] } };`,
		`module.exports = { expo: { name: "X", version: "1.0.0" } };`,
	}

	patcher := NewText()

	rapid.Check(t, func(t *rapid.T) {
		host := rapid.SampledFrom(hosts).Draw(t, "host")
		colorSpace := rapid.SampledFrom([]domain.ColorSpace{
			domain.ColorSpaceDisplayP3, domain.ColorSpaceSRGB,
		}).Draw(t, "colorSpace")
		entry := domain.NewPluginEntry(colorSpace)

		result, err := patcher.Apply([]byte(host), entry)
		require.NoError(t, err)
		require.Equal(t, ChangePatched, result.Status)

		inserted := entry.TextFragment()
		if !strings.Contains(string(result.Content), inserted) {
			inserted = entry.PluginsDeclaration()
		}
		restored := strings.Replace(string(result.Content), inserted, "", 1)
		assert.Equal(t, host, restored,
			"Everything outside the inserted fragment must be untouched")
	})
}
