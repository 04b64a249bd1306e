package levelfmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Level is one named, hand-authored or generated puzzle in a level pack.
type Level struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LevelPack is a named corpus of levels, loaded from a YAML file. This
// replaces the teacher's JSON PuzzleFile format: YAML is the serialization
// idiom the pack's server repo (lawnchairsociety-OpenTowerMUD) uses for its
// own config and data files, and suits a small hand-authored corpus better
// than the teacher's compact per-difficulty JSON arrays.
type LevelPack struct {
	Version int     `yaml:"version"`
	Levels  []Level `yaml:"levels"`
}

// LoadLevelPack reads and parses a YAML level pack from path.
func LoadLevelPack(path string) (*LevelPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levelfmt: reading level pack %s: %w", path, err)
	}
	var pack LevelPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("levelfmt: parsing level pack %s: %w", path, err)
	}
	return &pack, nil
}

// Save writes pack to path as YAML.
func (p *LevelPack) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("levelfmt: marshaling level pack: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("levelfmt: writing level pack %s: %w", path, err)
	}
	return nil
}

// Find returns the level with the given name, or false if absent.
func (p *LevelPack) Find(name string) (Level, bool) {
	for _, lvl := range p.Levels {
		if lvl.Name == name {
			return lvl, true
		}
	}
	return Level{}, false
}
