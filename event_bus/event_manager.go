package event_bus

import (
	"sort"
	"sync"

	"github.com/bassbeaver/gevent/event_bus/collection"
	"github.com/bassbeaver/gevent/event_bus/event"
	geventError "github.com/bassbeaver/gevent/error"
)

// GlobalEventName is the name global listeners are registered under.
// Global listeners are called for every triggered event if manager has global listeners enabled.
const GlobalEventName = ""

type Dispatcher interface {
	AddListener(eventName string, listenerObj Listener, priority int) error
	AddOnce(eventName string, listenerObj Listener, priority int) error
	RemoveListener(listenerObj interface{})
	RemoveListenerFrom(listenerObj interface{}, eventName string)
	GetListeners(eventName string) []Listener
	Trigger(eventName string, eventObj event.Event, arguments ...interface{}) event.Event
	TriggerReferences(eventName string, eventObj event.Event, references []interface{}) event.Event
}

//--------------------

// EventManager calls listeners of an event ordered by priority, the lowest priority is called first.
// Listeners with equal priority are called in registration order.
//
// Registry changes made while an event is dispatched (for example by a listener) take effect
// starting from the next trigger: dispatch works on a snapshot of listeners taken when trigger starts.
type EventManager struct {
	listeners              map[string]*collection.PriorityCollection[Listener]
	listenersMutex         sync.RWMutex
	globalListenersEnabled bool
	eventStack             *eventStack
	// self is the dispatcher passed to listeners, it is the embedding manager when EventManager is embedded
	self Dispatcher
}

func (m *EventManager) AddListener(eventName string, listenerObj Listener, priority int) error {
	if isNilCallable(listenerObj) {
		return geventError.NewInvalidListenerError(typeName(listenerObj), "listener is nil")
	}

	eventName, priority = resolveNameAndPriority(listenerObj, eventName, priority)

	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	bucket, bucketExists := m.listeners[eventName]
	if !bucketExists {
		bucket = collection.NewPriorityCollection[Listener](listenersEqual)
		m.listeners[eventName] = bucket
	}
	bucket.Add(priority, listenerObj)

	return nil
}

// AddCallable registers anything AdaptListener can convert to Listener
func (m *EventManager) AddCallable(eventName string, callable interface{}, priority int) error {
	listenerObj, adaptError := AdaptListener(callable)
	if nil != adaptError {
		return adaptError
	}

	return m.self.AddListener(eventName, listenerObj, priority)
}

// AddOnce registers listener that is called at most once, after the first call it is removed from eventName
func (m *EventManager) AddOnce(eventName string, listenerObj Listener, priority int) error {
	if isNilCallable(listenerObj) {
		return geventError.NewInvalidListenerError(typeName(listenerObj), "listener is nil")
	}

	eventName, priority = resolveNameAndPriority(listenerObj, eventName, priority)

	return m.AddListener(eventName, newOnceListener(listenerObj, eventName, m), priority)
}

// RemoveListener removes listener from all events
func (m *EventManager) RemoveListener(listenerObj interface{}) {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	for eventName := range m.listeners {
		m.removeFromBucket(eventName, func(registered Listener) bool {
			return sameCallable(registered, listenerObj)
		})
	}
}

// RemoveListenerFrom removes listener only from eventName
func (m *EventManager) RemoveListenerFrom(listenerObj interface{}, eventName string) {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	m.removeFromBucket(eventName, func(registered Listener) bool {
		return sameCallable(registered, listenerObj)
	})
}

func (m *EventManager) RemoveAllListeners() {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	m.listeners = make(map[string]*collection.PriorityCollection[Listener])
}

func (m *EventManager) RemoveAllListenersFrom(eventName string) {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	delete(m.listeners, eventName)
}

// GetListeners returns listeners of eventName in calling order, empty slice for unknown event
func (m *EventManager) GetListeners(eventName string) []Listener {
	m.listenersMutex.RLock()
	defer m.listenersMutex.RUnlock()

	bucket, bucketExists := m.listeners[eventName]
	if !bucketExists {
		return make([]Listener, 0)
	}

	return bucket.OrderedElements()
}

func (m *EventManager) HasListeners(eventName string) bool {
	m.listenersMutex.RLock()
	defer m.listenersMutex.RUnlock()

	bucket, bucketExists := m.listeners[eventName]

	return bucketExists && bucket.Count() > 0
}

// GetEventNames returns sorted names of events having at least one listener
func (m *EventManager) GetEventNames() []string {
	m.listenersMutex.RLock()
	defer m.listenersMutex.RUnlock()

	eventNames := make([]string, 0, len(m.listeners))
	for eventName, bucket := range m.listeners {
		if bucket.Count() > 0 {
			eventNames = append(eventNames, eventName)
		}
	}
	sort.Strings(eventNames)

	return eventNames
}

func (m *EventManager) SetGlobalListenersEnabled(enabled bool) {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	m.globalListenersEnabled = enabled
}

func (m *EventManager) GlobalListenersEnabled() bool {
	m.listenersMutex.RLock()
	defer m.listenersMutex.RUnlock()

	return m.globalListenersEnabled
}

// GetCurrentEvent returns the innermost event being dispatched by this manager, nil if no event is dispatched.
// With dispatches running in several goroutines it is the latest started dispatch that has not finished yet.
func (m *EventManager) GetCurrentEvent() event.Event {
	return m.eventStack.top()
}

// Trigger calls listeners of eventName. Every listener receives its own copy of arguments,
// so changing an argument in a listener is not visible to the caller nor to other listeners.
// If eventObj is nil a new event.Generic is created. Returns the dispatched event.
func (m *EventManager) Trigger(eventName string, eventObj event.Event, arguments ...interface{}) event.Event {
	return m.dispatch(eventName, eventObj, arguments, false)
}

// TriggerReferences calls listeners of eventName passing elements of references as arguments.
// Listeners receive references itself, a value written by a listener to arguments[i]
// is visible to the following listeners and to the caller after TriggerReferences returns.
func (m *EventManager) TriggerReferences(eventName string, eventObj event.Event, references []interface{}) event.Event {
	return m.dispatch(eventName, eventObj, references, true)
}

func (m *EventManager) dispatch(eventName string, eventObj event.Event, arguments []interface{}, byReference bool) event.Event {
	if nil == eventObj {
		eventObj = event.NewGeneric()
	}

	stackEntry := m.eventStack.push(eventObj)
	defer m.eventStack.pop(stackEntry)

	for _, listenerObj := range m.listenersForDispatch(eventName) {
		if byReference {
			listenerObj.OnEvent(eventName, eventObj, m.self, arguments...)
		} else {
			listenerObj.OnEvent(eventName, eventObj, m.self, copyArguments(arguments)...)
		}

		if eventObj.IsPropagationStopped() {
			break
		}
	}

	return eventObj
}

func (m *EventManager) listenersForDispatch(eventName string) []Listener {
	m.listenersMutex.RLock()
	defer m.listenersMutex.RUnlock()

	result := make([]Listener, 0)

	if m.globalListenersEnabled && GlobalEventName != eventName {
		if globalBucket, globalExists := m.listeners[GlobalEventName]; globalExists {
			result = append(result, globalBucket.OrderedElements()...)
		}
	}

	if bucket, bucketExists := m.listeners[eventName]; bucketExists {
		result = append(result, bucket.OrderedElements()...)
	}

	return result
}

func (m *EventManager) removeExactListener(listenerObj Listener, eventName string) {
	m.listenersMutex.Lock()
	defer m.listenersMutex.Unlock()

	m.removeFromBucket(eventName, func(registered Listener) bool {
		return registered == listenerObj
	})
}

// removeFromBucket must be called with listenersMutex locked
func (m *EventManager) removeFromBucket(eventName string, match func(Listener) bool) {
	bucket, bucketExists := m.listeners[eventName]
	if !bucketExists {
		return
	}

	bucket.RemoveFunc(match)
	if 0 == bucket.Count() {
		delete(m.listeners, eventName)
	}
}

//--------------------

func NewEventManager() *EventManager {
	m := &EventManager{
		listeners:  make(map[string]*collection.PriorityCollection[Listener]),
		eventStack: newEventStack(),
	}
	m.self = m

	return m
}

//--------------------

func resolveNameAndPriority(listenerObj Listener, eventName string, priority int) (string, int) {
	awareListener, isAware := listenerObj.(EventNameAware)
	if !isAware {
		return eventName, priority
	}

	if declaredName, nameDeclared := awareListener.EventName(); nameDeclared {
		eventName = declaredName
	}
	if declaredPriority, priorityDeclared := awareListener.Priority(); priorityDeclared {
		priority = declaredPriority
	}

	return eventName, priority
}

func listenersEqual(a, b Listener) bool {
	return sameCallable(a, b)
}

func copyArguments(arguments []interface{}) []interface{} {
	argumentsCopy := make([]interface{}, len(arguments))
	copy(argumentsCopy, arguments)

	return argumentsCopy
}
