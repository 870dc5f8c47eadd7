// internal/event/types.go
package event

const (
	WaveStarted          EventType = "WaveStarted"          // Волна началась
	WaveCompleted        EventType = "WaveCompleted"        // Волна закончилась
	MonsterKilled        EventType = "MonsterKilled"        // Монстр уничтожен башней
	MonsterReachedCastle EventType = "MonsterReachedCastle" // Монстр дошёл до замка
	CastleDestroyed      EventType = "CastleDestroyed"
	TowerPlaced          EventType = "TowerPlaced" // Башня построена
	ItemCrafted          EventType = "ItemCrafted"
	ResourceProduced     EventType = "ResourceProduced" // Шахта выдала ресурс
)
