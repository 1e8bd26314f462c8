package event_bus_test

import (
	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
)

type triggerMarker struct {
	name      string
	counter   *int
	index     int
	calls     int
	arguments []interface{}
}

func (m *triggerMarker) OnEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) {
	m.arguments = append([]interface{}{eventName, eventObj, manager}, arguments...)
	m.index = *m.counter
	*m.counter++
	m.calls++
}

func newMarker(name string, counter *int) *triggerMarker {
	return &triggerMarker{
		name:    name,
		counter: counter,
		index:   -1,
	}
}

func listenerNames(listeners []event_bus.Listener) []string {
	names := make([]string, 0, len(listeners))
	for _, listenerObj := range listeners {
		names = append(names, listenerObj.(*triggerMarker).name)
	}

	return names
}

func stopPropagation(_ string, eventObj event.Event, _ event_bus.Dispatcher, _ ...interface{}) {
	eventObj.StopPropagation()
}

type awareMarker struct {
	triggerMarker
	eventName    string
	hasEventName bool
	priority     int
	hasPriority  bool
}

func (m *awareMarker) EventName() (string, bool) {
	return m.eventName, m.hasEventName
}

func (m *awareMarker) Priority() (int, bool) {
	return m.priority, m.hasPriority
}
