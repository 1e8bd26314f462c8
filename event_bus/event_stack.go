package event_bus

import (
	"sync"

	"github.com/bassbeaver/gevent/event_bus/event"
)

type eventStackEntry struct {
	eventObj event.Event
}

// eventStack holds events being dispatched, the innermost last.
// Every dispatch removes its own entry, so overlapping dispatches from several goroutines
// do not remove each other's events.
type eventStack struct {
	entries []*eventStackEntry
	mutex   sync.Mutex
}

func (s *eventStack) push(eventObj event.Event) *eventStackEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry := &eventStackEntry{eventObj: eventObj}
	s.entries = append(s.entries, entry)

	return entry
}

func (s *eventStack) pop(entry *eventStackEntry) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i] != entry {
			continue
		}

		copy(s.entries[i:], s.entries[i+1:])
		s.entries[len(s.entries)-1] = nil
		s.entries = s.entries[:len(s.entries)-1]

		return
	}
}

func (s *eventStack) top() event.Event {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if 0 == len(s.entries) {
		return nil
	}

	return s.entries[len(s.entries)-1].eventObj
}

//--------------------

func newEventStack() *eventStack {
	return &eventStack{
		entries: make([]*eventStackEntry, 0),
	}
}
