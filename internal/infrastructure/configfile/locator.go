package configfile

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// ErrNoConfigFile is returned when the project directory contains none of the
// recognized configuration files.
var ErrNoConfigFile = errors.New("no app.json, app.config.js or app.config.ts found")

// candidateNames is the fixed priority order: the data format wins over the
// code formats when several candidates exist side by side.
var candidateNames = []string{"app.json", "app.config.js", "app.config.ts"}

// Selection is the outcome of locating a project's config file. Ignored lists
// lower-priority candidates that also exist but are never touched.
type Selection struct {
	Path    string
	Format  domain.ConfigFormat
	Ignored []string
}

// Locator finds the single configuration file governing a project.
type Locator struct{}

// NewLocator creates a Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the first candidate that exists as a regular file in dir.
// Candidates are never merged; at most one file is ever selected.
func (l *Locator) Locate(dir string) (Selection, error) {
	var selection Selection

	for _, name := range candidateNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		if selection.Path == "" {
			format, err := domain.FormatForPath(path)
			if err != nil {
				return Selection{}, err
			}
			selection.Path = path
			selection.Format = format
		} else {
			selection.Ignored = append(selection.Ignored, name)
		}
	}

	if selection.Path == "" {
		return Selection{}, ErrNoConfigFile
	}
	return selection, nil
}
