package reference

import (
	"encoding/json"
	"fmt"
	"os"
)

// IsAllowed reports whether name is one of the managed reference
// files. Lookups and saves on any other name are rejected.
func IsAllowed(name string) bool {
	switch name {
	case RoutesFile, PokemonNamesFile, LevelCapsFile:
		return true
	}
	return false
}

// ReadFile returns the raw contents of a managed reference file.
func (c *Cache) ReadFile(name string) ([]byte, error) {
	if !IsAllowed(name) {
		return nil, ErrUnknownFile
	}
	return os.ReadFile(c.dir(name))
}

// SaveFile validates content against the file's expected shape and
// writes it. The cache is not reloaded here; callers decide when.
func (c *Cache) SaveFile(name string, content []byte) error {
	if !IsAllowed(name) {
		return ErrUnknownFile
	}
	if err := validateShape(name, content); err != nil {
		return err
	}
	return os.WriteFile(c.dir(name), content, 0o644)
}

func validateShape(name string, content []byte) error {
	var err error
	switch name {
	case LevelCapsFile:
		var entries []fileLevelCap
		err = json.Unmarshal(content, &entries)
	default:
		var entries []namedEntry
		err = json.Unmarshal(content, &entries)
	}
	if err != nil {
		return fmt.Errorf("%w for %s: %v", ErrInvalidContent, name, err)
	}
	return nil
}
