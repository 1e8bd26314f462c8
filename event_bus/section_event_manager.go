package event_bus

import (
	"strings"
	"sync"

	"github.com/bassbeaver/gevent/event_bus/event"
)

const SectionSeparator = "."

// SectionEventManager forwards events named SECTION.EVENT to the manager registered for SECTION,
// which receives EVENT as event name. Nested section managers route the rest of the name further,
// so "a.b.c" may pass through section "a", then section "b" and be triggered as "c".
// Events without registered section are dispatched to own listeners under the full name.
type SectionEventManager struct {
	*EventManager
	sections      map[string]Dispatcher
	sectionsMutex sync.RWMutex
}

func (m *SectionEventManager) AddSectionEventManager(sectionName string, manager Dispatcher) {
	m.sectionsMutex.Lock()
	defer m.sectionsMutex.Unlock()

	m.sections[sectionName] = manager
}

func (m *SectionEventManager) RemoveSection(sectionName string) {
	m.sectionsMutex.Lock()
	defer m.sectionsMutex.Unlock()

	delete(m.sections, sectionName)
}

func (m *SectionEventManager) SectionExists(sectionName string) bool {
	m.sectionsMutex.RLock()
	defer m.sectionsMutex.RUnlock()

	_, sectionExists := m.sections[sectionName]

	return sectionExists
}

// GetEventManager returns manager of the section, nil if section is not registered
func (m *SectionEventManager) GetEventManager(sectionName string) Dispatcher {
	m.sectionsMutex.RLock()
	defer m.sectionsMutex.RUnlock()

	return m.sections[sectionName]
}

func (m *SectionEventManager) Trigger(eventName string, eventObj event.Event, arguments ...interface{}) event.Event {
	if sectionManager, sectionEventName, isRouted := m.route(eventName); isRouted {
		return sectionManager.Trigger(sectionEventName, eventObj, arguments...)
	}

	return m.EventManager.dispatch(eventName, eventObj, arguments, false)
}

func (m *SectionEventManager) TriggerReferences(eventName string, eventObj event.Event, references []interface{}) event.Event {
	if sectionManager, sectionEventName, isRouted := m.route(eventName); isRouted {
		return sectionManager.TriggerReferences(sectionEventName, eventObj, references)
	}

	return m.EventManager.dispatch(eventName, eventObj, references, true)
}

func (m *SectionEventManager) TriggerSection(sectionName, eventName string, eventObj event.Event, arguments ...interface{}) event.Event {
	return m.Trigger(sectionName+SectionSeparator+eventName, eventObj, arguments...)
}

func (m *SectionEventManager) TriggerSectionReferences(sectionName, eventName string, eventObj event.Event, references []interface{}) event.Event {
	return m.TriggerReferences(sectionName+SectionSeparator+eventName, eventObj, references)
}

func (m *SectionEventManager) route(eventName string) (Dispatcher, string, bool) {
	parts := strings.SplitN(eventName, SectionSeparator, 2)
	if len(parts) < 2 {
		return nil, "", false
	}

	sectionManager := m.GetEventManager(parts[0])
	if nil == sectionManager {
		return nil, "", false
	}

	return sectionManager, parts[1], true
}

//--------------------

func NewSectionEventManager() *SectionEventManager {
	m := &SectionEventManager{
		EventManager: NewEventManager(),
		sections:     make(map[string]Dispatcher),
	}
	m.EventManager.self = m

	return m
}
