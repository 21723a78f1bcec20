package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Packs   []packSchema `toml:"packs"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported registry schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type packSchema struct {
	ID        string `toml:"id"`
	Path      string `toml:"path"`
	AddedAt   string `toml:"added_at"`
	Resources int    `toml:"resources"`
}
