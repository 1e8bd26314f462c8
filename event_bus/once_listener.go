package event_bus

import (
	"sync/atomic"

	"github.com/bassbeaver/gevent/event_bus/event"
)

// onceListener removes itself from the event it was registered for before the wrapped listener is called,
// so a reentrant trigger of the same event from the wrapped listener does not call it again
type onceListener struct {
	target    Listener
	eventName string
	manager   *EventManager
	consumed  atomic.Bool
}

func (l *onceListener) OnEvent(eventName string, eventObj event.Event, manager Dispatcher, arguments ...interface{}) {
	if !l.consumed.CompareAndSwap(false, true) {
		return
	}

	l.manager.removeExactListener(l, l.eventName)
	l.target.OnEvent(eventName, eventObj, manager, arguments...)
}

func (l *onceListener) WrappedListener() interface{} {
	return l.target
}

func (l *onceListener) IsConsumed() bool {
	return l.consumed.Load()
}

//--------------------

func newOnceListener(target Listener, eventName string, manager *EventManager) *onceListener {
	return &onceListener{
		target:    target,
		eventName: eventName,
		manager:   manager,
	}
}
