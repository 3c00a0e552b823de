package survivor

// EventKind classifies simulation events.
type EventKind int

const (
	EventShotFired EventKind = iota
	EventEnemyHit
	EventEnemyDied
	EventItemPickedUp
	EventPlayerDamaged
	EventBossPatternChanged
	EventRoundStarted
	EventRoundCleared
	EventWorldCompleted
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "shot-fired"
	case EventEnemyHit:
		return "enemy-hit"
	case EventEnemyDied:
		return "enemy-died"
	case EventItemPickedUp:
		return "item-picked-up"
	case EventPlayerDamaged:
		return "player-damaged"
	case EventBossPatternChanged:
		return "boss-pattern-changed"
	case EventRoundStarted:
		return "round-started"
	case EventRoundCleared:
		return "round-cleared"
	case EventWorldCompleted:
		return "world-completed"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event records something that happened during a simulation step.
// The progression modules signal round and world transitions through
// these instead of reaching into the entity store or the platform.
type Event struct {
	Kind   EventKind
	Entity EntityID   // subject entity, when applicable
	Class  EnemyClass // for enemy events
	Drop   *Drop      // for pickups
	Amount int        // damage dealt, healing received, coins gained
	Phase  BossPhase  // for boss pattern changes
	World  int        // for round/world events
	Round  int
}
