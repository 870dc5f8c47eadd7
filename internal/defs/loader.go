// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of a defs override. Every section is
// optional; listed entries replace the matching built-in definition.
type overrideFile struct {
	Towers   []TowerDefinition   `yaml:"towers"`
	Monsters []MonsterDefinition `yaml:"monsters"`
	Bosses   []BossDefinition    `yaml:"bosses"`
	Items    []ItemDefinition    `yaml:"items"`
	Balance  *yaml.Node          `yaml:"balance"`
}

// LoadLibrary builds the default library and, when path is non-empty,
// applies overrides from the YAML file at path.
func LoadLibrary(path string) (*Library, error) {
	lib := DefaultLibrary()
	if path == "" {
		return lib, nil
	}
	if err := lib.ApplyOverrides(path); err != nil {
		return nil, err
	}
	return lib, nil
}

// ApplyOverrides merges definitions from a YAML file into the library.
// Balance overrides are partial: unspecified keys keep current values.
func (l *Library) ApplyOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read defs overrides: %w", err)
	}

	var of overrideFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return fmt.Errorf("parse defs overrides %s: %w", path, err)
	}

	for _, def := range of.Towers {
		if def.ID == "" {
			return fmt.Errorf("defs overrides %s: tower entry without id", path)
		}
		l.Towers[def.ID] = def
	}
	for _, def := range of.Monsters {
		if def.ID == "" {
			return fmt.Errorf("defs overrides %s: monster entry without id", path)
		}
		l.Monsters[def.ID] = def
	}
	for _, def := range of.Bosses {
		if def.ID == "" {
			return fmt.Errorf("defs overrides %s: boss entry without id", path)
		}
		l.Bosses[def.ID] = def
	}
	for _, def := range of.Items {
		if def.ID == "" {
			return fmt.Errorf("defs overrides %s: item entry without id", path)
		}
		l.Items[def.ID] = def
	}

	// Декодируем поверх текущих значений, чтобы частичный override
	// не обнулял остальные поля.
	if of.Balance != nil {
		b := *l.Balance
		if err := of.Balance.Decode(&b); err != nil {
			return fmt.Errorf("parse balance overrides %s: %w", path, err)
		}
		*l.Balance = b
	}

	if err := l.validate(); err != nil {
		return fmt.Errorf("defs overrides %s: %w", path, err)
	}
	return nil
}

func (l *Library) validate() error {
	for kind, def := range l.Towers {
		if def.AttackSpeed <= 0 {
			return fmt.Errorf("tower %s: attack_speed must be positive", kind)
		}
		if def.Range <= 0 {
			return fmt.Errorf("tower %s: range must be positive", kind)
		}
	}
	for kind, def := range l.Monsters {
		if def.Health <= 0 || def.Speed <= 0 {
			return fmt.Errorf("monster %s: health and speed must be positive", kind)
		}
	}
	for kind, def := range l.Bosses {
		if def.Health <= 0 || def.Speed <= 0 {
			return fmt.Errorf("boss %s: health and speed must be positive", kind)
		}
	}
	if l.Balance.SpawnInterval <= 0 {
		return fmt.Errorf("balance: spawn_interval must be positive")
	}
	if l.Balance.DifficultyGrowth <= 0 {
		return fmt.Errorf("balance: difficulty_growth must be positive")
	}
	return nil
}
