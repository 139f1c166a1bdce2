package patch

import (
	"regexp"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// anchorRule pairs a pattern locating an insertion point with the text to
// insert immediately after the match. Rules are evaluated in order and the
// first match wins.
type anchorRule struct {
	name    string
	pattern *regexp.Regexp
	insert  func(entry domain.PluginEntry) string
}

// Text patches the code config formats by pattern-anchored insertion into the
// raw text. The host file is never parsed as JavaScript or TypeScript, so the
// anchors are deliberately narrow: when none of them match, the file is left
// untouched and the caller must surface manual instructions.
type Text struct {
	rules []anchorRule
}

// NewText creates the code-format patcher with its fixed anchor rules.
func NewText() *Text {
	entryFragment := func(entry domain.PluginEntry) string {
		return entry.TextFragment()
	}

	return &Text{
		rules: []anchorRule{
			{
				name:    "plugins-list",
				pattern: regexp.MustCompile(`plugins\s*:\s*\[`),
				insert:  entryFragment,
			},
			{
				name:    "quoted-plugins-list",
				pattern: regexp.MustCompile(`["']plugins["']\s*:\s*\[`),
				insert:  entryFragment,
			},
			{
				name:    "expo-object",
				pattern: regexp.MustCompile(`["']?expo["']?\s*:\s*\{`),
				insert: func(entry domain.PluginEntry) string {
					return entry.PluginsDeclaration()
				},
			},
		},
	}
}

// Apply inserts the entry after the first matching anchor. Everything outside
// the inserted fragment is preserved byte-for-byte. When no anchor matches the
// result is ChangeNoAnchor and no content is produced.
func (p *Text) Apply(content []byte, entry domain.PluginEntry) (Result, error) {
	for _, rule := range p.rules {
		loc := rule.pattern.FindIndex(content)
		if loc == nil {
			continue
		}

		fragment := []byte(rule.insert(entry))
		patched := make([]byte, 0, len(content)+len(fragment))
		patched = append(patched, content[:loc[1]]...)
		patched = append(patched, fragment...)
		patched = append(patched, content[loc[1]:]...)

		return Result{Status: ChangePatched, Content: patched}, nil
	}

	return Result{Status: ChangeNoAnchor}, nil
}
