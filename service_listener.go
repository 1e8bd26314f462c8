package gevent

import (
	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
)

// serviceListener is a configured "alias:method" listener.
// Method values obtained through reflection can not be told apart by code pointer,
// so configured listeners are identified by the serviceListener pointer.
type serviceListener struct {
	alias  string
	method string
	target event_bus.Listener
}

func (l *serviceListener) OnEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) {
	l.target.OnEvent(eventName, eventObj, manager, arguments...)
}

func (l *serviceListener) String() string {
	return l.alias + ":" + l.method
}

//--------------------

func newServiceListener(alias, method string, target event_bus.Listener) *serviceListener {
	return &serviceListener{
		alias:  alias,
		method: method,
		target: target,
	}
}
