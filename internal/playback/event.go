package playback

import "github.com/mabhi256/dsaviz/internal/trace"

type EventKind int

const (
	EventLoaded EventKind = iota
	EventPlaying
	EventTick
	EventPaused
	EventStopped
	EventSeek
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventPlaying:
		return "playing"
	case EventTick:
		return "tick"
	case EventPaused:
		return "paused"
	case EventStopped:
		return "stopped"
	case EventSeek:
		return "seek"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is what observers receive: the state after the change and the step
// now under the cursor.
type Event struct {
	Kind  EventKind
	State State
	Step  trace.Step
}

// Observer is called once per event, never with the controller lock held.
type Observer func(Event)
