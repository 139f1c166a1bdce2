package domain

import (
	"fmt"
	"path/filepath"
)

// ConfigFormat tags the shape of a project configuration file.
type ConfigFormat string

const (
	// FormatJSON is the structured data format (app.json).
	FormatJSON ConfigFormat = "json"
	// FormatJS is a JavaScript config file patched as raw text (app.config.js).
	FormatJS ConfigFormat = "js"
	// FormatTS is a TypeScript config file patched as raw text (app.config.ts).
	FormatTS ConfigFormat = "ts"
)

// Structured reports whether the format is parsed as data rather than patched
// as text.
func (f ConfigFormat) Structured() bool {
	return f == FormatJSON
}

// ConfigFile is a project configuration file at read time: its path, its
// detected format, and its raw content. Content is read once at the start of
// a run and written back at most once.
type ConfigFile struct {
	Path    string
	Format  ConfigFormat
	Content []byte
}

// FormatForPath derives the ConfigFormat from a candidate filename.
func FormatForPath(path string) (ConfigFormat, error) {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON, nil
	case ".js":
		return FormatJS, nil
	case ".ts":
		return FormatTS, nil
	default:
		return "", fmt.Errorf("unrecognized config file extension: %s", filepath.Base(path))
	}
}
