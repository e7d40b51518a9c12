package game

// Event is a notable occurrence during a simulation tick. The presentation
// layer uses events to trigger sounds; the core never plays audio itself.
type Event int

const (
	// EventSwoosh fires when a new playing session starts.
	EventSwoosh Event = iota
	// EventWing fires on each flap.
	EventWing
	// EventPoint fires when a pipe pair is passed and scored.
	EventPoint
	// EventHit fires on any fatal collision.
	EventHit
	// EventDie fires in addition to EventHit when the bird hits the ground.
	EventDie
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventSwoosh:
		return "swoosh"
	case EventWing:
		return "wing"
	case EventPoint:
		return "point"
	case EventHit:
		return "hit"
	case EventDie:
		return "die"
	default:
		return "unknown"
	}
}
