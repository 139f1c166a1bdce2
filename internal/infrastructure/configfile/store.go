package configfile

import (
	"fmt"
	"os"

	"github.com/expocolorspace/colorspace-cli/internal/core/domain"
)

// Store performs the file access for one run: the config file is read fully
// once up front and written back at most once with its complete new content.
// There is no locking and no retry; a failure anywhere leaves the file as it
// was, because nothing is written until the new content exists in memory.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the located config file into memory.
func (s *Store) Read(selection Selection) (domain.ConfigFile, error) {
	content, err := os.ReadFile(selection.Path)
	if err != nil {
		return domain.ConfigFile{}, fmt.Errorf("failed to read %s: %w", selection.Path, err)
	}

	return domain.ConfigFile{
		Path:    selection.Path,
		Format:  selection.Format,
		Content: content,
	}, nil
}

// Write overwrites the config file with its complete new content.
func (s *Store) Write(file domain.ConfigFile, content []byte) error {
	if err := os.WriteFile(file.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", file.Path, err)
	}
	return nil
}
