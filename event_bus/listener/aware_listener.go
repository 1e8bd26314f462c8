package listener

import (
	"reflect"

	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
)

type listenerMethod = func(string, event.Event, event_bus.Dispatcher, ...interface{})

// Acceptor decides whether it handles an event. If it does, it returns name of own method
// with event_bus.ListenerFunc signature that should receive the event.
type Acceptor interface {
	AcceptEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) (string, bool)
}

// AwareListener forwards accepted events to a method of its acceptor.
// It declares itself as global listener, so it is offered every event of a manager with global listeners enabled.
type AwareListener struct {
	acceptor Acceptor
}

func (l *AwareListener) OnEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) {
	if method, isAccepted := l.acceptedMethod(eventName, eventObj, manager, arguments); isAccepted {
		method(eventName, eventObj, manager, arguments...)
	}
}

func (l *AwareListener) EventName() (string, bool) {
	return event_bus.GlobalEventName, true
}

func (l *AwareListener) Priority() (int, bool) {
	return 0, false
}

func (l *AwareListener) GetAcceptor() Acceptor {
	return l.acceptor
}

func (l *AwareListener) acceptedMethod(
	eventName string,
	eventObj event.Event,
	manager event_bus.Dispatcher,
	arguments []interface{},
) (listenerMethod, bool) {
	methodName, isAccepted := l.acceptor.AcceptEvent(eventName, eventObj, manager, arguments...)
	if !isAccepted {
		return nil, false
	}

	methodValue := reflect.ValueOf(l.acceptor).MethodByName(methodName)
	if !methodValue.IsValid() {
		return nil, false
	}

	method, isListenerMethod := methodValue.Interface().(listenerMethod)

	return method, isListenerMethod
}

//--------------------

func NewAwareListener(acceptor Acceptor) *AwareListener {
	return &AwareListener{
		acceptor: acceptor,
	}
}
