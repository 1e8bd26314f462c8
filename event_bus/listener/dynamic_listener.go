package listener

import (
	"sync"
	"sync/atomic"

	"github.com/bassbeaver/gevent/event_bus"
	"github.com/bassbeaver/gevent/event_bus/event"
)

// Initializer is implemented by acceptors of DynamicListener having expensive setup
type Initializer interface {
	Initialize()
}

// DynamicListener is an AwareListener that initializes its acceptor only when the first event is accepted
type DynamicListener struct {
	AwareListener
	initOnce    sync.Once
	initialized atomic.Bool
}

func (l *DynamicListener) OnEvent(eventName string, eventObj event.Event, manager event_bus.Dispatcher, arguments ...interface{}) {
	method, isAccepted := l.acceptedMethod(eventName, eventObj, manager, arguments)
	if !isAccepted {
		return
	}

	l.initOnce.Do(func() {
		if initializer, isInitializer := l.acceptor.(Initializer); isInitializer {
			initializer.Initialize()
		}
		l.initialized.Store(true)
	})

	method(eventName, eventObj, manager, arguments...)
}

func (l *DynamicListener) IsInitialized() bool {
	return l.initialized.Load()
}

//--------------------

func NewDynamicListener(acceptor Acceptor) *DynamicListener {
	return &DynamicListener{
		AwareListener: AwareListener{
			acceptor: acceptor,
		},
	}
}
