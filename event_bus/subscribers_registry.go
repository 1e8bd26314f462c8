package event_bus

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// SubscribersRegistry maps class names to subscriber objects, so subscribers can be referenced by name
type SubscribersRegistry struct {
	registry      map[string]interface{}
	registryMutex sync.RWMutex
}

func (r *SubscribersRegistry) Register(className string, subscriberObj interface{}) {
	r.registryMutex.Lock()
	defer r.registryMutex.Unlock()

	r.registry[className] = subscriberObj
}

func (r *SubscribersRegistry) GetSubscriberByName(className string) (interface{}, error) {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	if subscriberObj, subscriberMapped := r.registry[className]; subscriberMapped {
		return subscriberObj, nil
	}

	return nil, errors.Errorf("unknown subscriber class %s", className)
}

func (r *SubscribersRegistry) Names() []string {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	names := make([]string, 0, len(r.registry))
	for className := range r.registry {
		names = append(names, className)
	}
	sort.Strings(names)

	return names
}

//--------------------

func NewSubscribersRegistry() *SubscribersRegistry {
	return &SubscribersRegistry{
		registry: make(map[string]interface{}),
	}
}
