package event_bus

// SubscribableEventManager is an EventManager whose listeners may be declared by subscribers
type SubscribableEventManager struct {
	*EventManager
	*SubscriberResolver
}

//--------------------

func NewSubscribableEventManager() *SubscribableEventManager {
	m := &SubscribableEventManager{
		EventManager: NewEventManager(),
	}
	m.EventManager.self = m
	m.SubscriberResolver = NewSubscriberResolver(m)

	return m
}
