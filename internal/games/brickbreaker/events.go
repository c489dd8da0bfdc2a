package brickbreaker

// EventKind identifies something that happened during a round.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventPaddleHit
	EventBrickHit
	EventBrickDestroyed
	EventLifeLost
	EventPause
	EventResume
	EventWin
	EventLoss
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventWin:
		return "win"
	case EventLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Event is published to the session observer. Observers must not mutate
// the session.
type Event struct {
	Kind  EventKind
	Score int
	Lives int
}
