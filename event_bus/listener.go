package event_bus

import (
	"reflect"
	"unsafe"

	"github.com/bassbeaver/gevent/event_bus/event"
	geventError "github.com/bassbeaver/gevent/error"
)

type Listener interface {
	OnEvent(eventName string, eventObj event.Event, manager Dispatcher, arguments ...interface{})
}

type ListenerFunc func(eventName string, eventObj event.Event, manager Dispatcher, arguments ...interface{})

func (f ListenerFunc) OnEvent(eventName string, eventObj event.Event, manager Dispatcher, arguments ...interface{}) {
	f(eventName, eventObj, manager, arguments...)
}

// EventNameAware is implemented by listeners that know which event they listen to.
// Declared values win over the ones passed on registration, second return value false means "not declared".
type EventNameAware interface {
	EventName() (string, bool)
	Priority() (int, bool)
}

// ListenerWrapper is implemented by listeners decorating another listener or callable.
// Removing the wrapped value also removes the wrapper.
type ListenerWrapper interface {
	WrappedListener() interface{}
}

//--------------------

type eventOnlyListener struct {
	callable func(event.Event)
}

func (l *eventOnlyListener) OnEvent(_ string, eventObj event.Event, _ Dispatcher, _ ...interface{}) {
	l.callable(eventObj)
}

func (l *eventOnlyListener) WrappedListener() interface{} {
	return l.callable
}

//--------------------

type noArgumentsListener struct {
	callable func()
}

func (l *noArgumentsListener) OnEvent(_ string, _ event.Event, _ Dispatcher, _ ...interface{}) {
	l.callable()
}

func (l *noArgumentsListener) WrappedListener() interface{} {
	return l.callable
}

//--------------------

// AdaptListener converts callable to Listener.
// Accepted are Listener implementations, functions with ListenerFunc signature, func(event.Event) and func().
func AdaptListener(callable interface{}) (Listener, error) {
	if isNilCallable(callable) {
		return nil, geventError.NewInvalidListenerError(typeName(callable), "listener is nil")
	}

	switch typedCallable := callable.(type) {
	case Listener:
		return typedCallable, nil
	case func(string, event.Event, Dispatcher, ...interface{}):
		return ListenerFunc(typedCallable), nil
	case func(event.Event):
		return &eventOnlyListener{callable: typedCallable}, nil
	case func():
		return &noArgumentsListener{callable: typedCallable}, nil
	}

	return nil, geventError.NewInvalidListenerError(typeName(callable), "unsupported listener signature")
}

func isNilCallable(callable interface{}) bool {
	if nil == callable {
		return true
	}

	callableValue := reflect.ValueOf(callable)
	switch callableValue.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan:
		return callableValue.IsNil()
	}

	return false
}

func typeName(value interface{}) string {
	if nil == value {
		return ""
	}

	return reflect.TypeOf(value).String()
}

func unwrapCallable(callable interface{}) interface{} {
	for {
		switch typedCallable := callable.(type) {
		case ListenerWrapper:
			callable = typedCallable.WrappedListener()
		case func(string, event.Event, Dispatcher, ...interface{}):
			return ListenerFunc(typedCallable)
		default:
			return callable
		}
	}
}

// sameCallable reports whether a and b are the same listener.
// Functions are the same if they share the closure object: copies of one func value match,
// two closures built from one literal do not. Other values are compared with ==,
// values holding something uncomparable are never equal.
func sameCallable(a, b interface{}) bool {
	a, b = unwrapCallable(a), unwrapCallable(b)
	if nil == a || nil == b {
		return nil == a && nil == b
	}

	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) {
		return false
	}

	if reflect.Func == typeA.Kind() {
		return closureOf(a) == closureOf(b)
	}

	if !typeA.Comparable() {
		return false
	}

	return safeEqual(a, b)
}

// closureOf returns the data word of fn, for func values it points to the closure object
func closureOf(fn interface{}) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1]
}

// safeEqual compares a and b with ==, comparable types may still hold uncomparable dynamic values
func safeEqual(a, b interface{}) (equal bool) {
	defer func() {
		if nil != recover() {
			equal = false
		}
	}()

	return a == b
}
