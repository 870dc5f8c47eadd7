// internal/defs/library.go
package defs

// Library bundles every gameplay definition. One instance is built at
// startup and shared read-only, except Balance which stays mutable for
// runtime tuning.
type Library struct {
	Towers   map[TowerKind]TowerDefinition
	Monsters map[MonsterKind]MonsterDefinition
	Bosses   map[BossKind]BossDefinition
	Items    map[string]ItemDefinition

	// Порядок боссов: каждая 10-я волна берёт следующего по кругу.
	BossCycle []BossKind

	Balance *Balance
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() *Library {
	return &Library{
		Towers:    defaultTowers(),
		Monsters:  defaultMonsters(),
		Bosses:    defaultBosses(),
		Items:     defaultItems(),
		BossCycle: []BossKind{BossForce, BossSpirit, BossMagic, BossVoid},
		Balance:   defaultBalance(),
	}
}

// Tower returns the definition for kind or ErrUnknownTower.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, error) {
	def, ok := l.Towers[kind]
	if !ok {
		return TowerDefinition{}, ErrUnknownTower
	}
	return def, nil
}

// Monster returns the definition for kind or ErrUnknownMonster.
func (l *Library) Monster(kind MonsterKind) (MonsterDefinition, error) {
	def, ok := l.Monsters[kind]
	if !ok {
		return MonsterDefinition{}, ErrUnknownMonster
	}
	return def, nil
}

// Boss returns the definition for kind or ErrUnknownMonster.
func (l *Library) Boss(kind BossKind) (BossDefinition, error) {
	def, ok := l.Bosses[kind]
	if !ok {
		return BossDefinition{}, ErrUnknownMonster
	}
	return def, nil
}

// Item returns the definition for id or ErrUnknownItem.
func (l *Library) Item(id string) (ItemDefinition, error) {
	def, ok := l.Items[id]
	if !ok {
		return ItemDefinition{}, ErrUnknownItem
	}
	return def, nil
}
