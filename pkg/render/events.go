package render

import "uhtml/pkg/html"

type EventType int

const (
	EventNone EventType = iota
	EventQuit
	// EventReload hands a freshly parsed document to the render loop, which
	// takes ownership of it.
	EventReload
)

type Event struct {
	Type EventType
	Doc  *html.Document // set for EventReload
}

// EventSource is polled once per frame by the render loop. Poll must not
// block.
type EventSource interface {
	Poll() Event
}

// FrameLimit asks the loop to quit after a fixed number of frames. It is
// the event source for headless rendering.
type FrameLimit struct {
	remaining int
}

func NewFrameLimit(frames int) *FrameLimit {
	return &FrameLimit{remaining: frames}
}

func (f *FrameLimit) Poll() Event {
	if f.remaining <= 0 {
		return Event{Type: EventQuit}
	}
	f.remaining--
	return Event{Type: EventNone}
}

// ChannelEvents delivers events sent on a channel. A closed channel reads
// as a quit request.
type ChannelEvents struct {
	ch <-chan Event
}

func NewChannelEvents(ch <-chan Event) *ChannelEvents {
	return &ChannelEvents{ch: ch}
}

func (c *ChannelEvents) Poll() Event {
	select {
	case ev, ok := <-c.ch:
		if !ok {
			return Event{Type: EventQuit}
		}
		return ev
	default:
		return Event{Type: EventNone}
	}
}

// Merge polls sources in order and returns the first event that is not
// EventNone.
func Merge(sources ...EventSource) EventSource {
	return merged(sources)
}

type merged []EventSource

func (m merged) Poll() Event {
	for _, s := range m {
		if ev := s.Poll(); ev.Type != EventNone {
			return ev
		}
	}
	return Event{Type: EventNone}
}
