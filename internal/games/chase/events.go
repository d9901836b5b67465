package chase

// Event is a discrete gameplay notification for audio/visual collaborators.
// Events are fire-and-forget: the handler runs synchronously but must not
// mutate core state, and the core never waits on it.
type Event int

const (
	EventJump Event = iota
	EventWeaponPickup
	EventHit
	EventPursuerSpawned
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventWeaponPickup:
		return "weapon_pickup"
	case EventHit:
		return "hit"
	case EventPursuerSpawned:
		return "pursuer_spawned"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SetEventHandler installs an optional callback invoked on each event.
// Pass nil to remove it.
func (g *Game) SetEventHandler(fn func(Event)) {
	g.events = fn
}

func (g *Game) emit(e Event) {
	if g.events != nil {
		g.events(e)
	}
}
